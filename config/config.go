package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

const DefaultJWTSecret = "jimmy-secret-2024"

type DBConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	QueryTimeout time.Duration
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
}

func (c RedisConfig) Enabled() bool { return c.Host != "" }

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
}

func (c KafkaConfig) Enabled() bool { return c.Broker != "" }

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

type HTTPConfig struct {
	Port           int
	AllowedOrigins []string
	PublicBaseURL  string
}

type BackupConfig struct {
	Dir        string
	PgDumpPath string
	PsqlPath   string
}

type SeedConfig struct {
	OnStart       bool
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

type TelegramConfig struct {
	Token  string
	ChatID int64
}

func (c TelegramConfig) Enabled() bool { return c.Token != "" && c.ChatID != 0 }

// Config is built once at process start and handed to every component.
type Config struct {
	DB          DBConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Auth        AuthConfig
	HTTP        HTTPConfig
	Backup      BackupConfig
	Seed        SeedConfig
	Telegram    TelegramConfig
	LogLevel    string
	Environment string
}

func (c Config) String() string {
	return fmt.Sprintf(
		"DB: %s@%s:%d/%s | Redis: %q | Kafka: %q/%s | Port: %d | Env: %s | LogLevel: %s",
		c.DB.User, c.DB.Host, c.DB.Port, c.DB.Name,
		c.Redis.Host, c.Kafka.Broker, c.Kafka.Topic,
		c.HTTP.Port, c.Environment, c.LogLevel,
	)
}

func (c Config) UsesDefaultSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "jimmys_tapas_bar")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.query.timeout", "5s")

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")

	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.topic", "cms-events")
	v.SetDefault("kafka.group.id", "notify-svc")

	v.SetDefault("jwt.secret.key", DefaultJWTSecret)
	v.SetDefault("jwt.expiry", "60m")

	v.SetDefault("port", 8001)
	v.SetDefault("allowed.origins", "*")
	v.SetDefault("public.base.url", "http://localhost:3000")

	v.SetDefault("backup.dir", "./backups")
	v.SetDefault("pg.dump.path", "pg_dump")
	v.SetDefault("psql.path", "psql")

	v.SetDefault("seed.on.start", true)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.email", "admin@jimmys-tapasbar.de")
	v.SetDefault("admin.password", "jimmy2024")

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.chat.id", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("environment", "development")
}

// Load reads an optional .env file and resolves every setting from the
// environment, falling back to the defaults above. Keys map to variables by
// upper-casing and replacing dots with underscores (db.host -> DB_HOST).
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return nil, errors.Wrapf(err, "failed to load env file %s", f)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	queryTimeout, err := time.ParseDuration(v.GetString("db.query.timeout"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid DB_QUERY_TIMEOUT")
	}
	tokenExpiry, err := time.ParseDuration(v.GetString("jwt.expiry"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid JWT_EXPIRY")
	}
	if tokenExpiry <= 0 {
		return nil, errors.Errorf("JWT_EXPIRY must be positive, got %s", tokenExpiry)
	}

	cfg := &Config{
		DB: DBConfig{
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			Name:         v.GetString("db.name"),
			SSLMode:      v.GetString("db.sslmode"),
			QueryTimeout: queryTimeout,
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
		},
		Kafka: KafkaConfig{
			Broker:  v.GetString("kafka.broker"),
			Topic:   v.GetString("kafka.topic"),
			GroupID: v.GetString("kafka.group.id"),
		},
		Auth: AuthConfig{
			JWTSecret:   v.GetString("jwt.secret.key"),
			TokenExpiry: tokenExpiry,
		},
		HTTP: HTTPConfig{
			Port:           v.GetInt("port"),
			AllowedOrigins: splitList(v.GetString("allowed.origins")),
			PublicBaseURL:  strings.TrimRight(v.GetString("public.base.url"), "/"),
		},
		Backup: BackupConfig{
			Dir:        v.GetString("backup.dir"),
			PgDumpPath: v.GetString("pg.dump.path"),
			PsqlPath:   v.GetString("psql.path"),
		},
		Seed: SeedConfig{
			OnStart:       v.GetBool("seed.on.start"),
			AdminUsername: v.GetString("admin.username"),
			AdminEmail:    v.GetString("admin.email"),
			AdminPassword: v.GetString("admin.password"),
		},
		Telegram: TelegramConfig{
			Token:  v.GetString("telegram.token"),
			ChatID: v.GetInt64("telegram.chat.id"),
		},
		LogLevel:    v.GetString("log.level"),
		Environment: v.GetString("environment"),
	}

	return cfg, nil
}

func isNotExist(err error) bool {
	return os.IsNotExist(errors.Cause(err))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func InitPostgres(cfg DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// InitRedis returns nil when no Redis host is configured.
func InitRedis(cfg RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	return client, nil
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

// kafkaBatchTimeout bounds how long a synchronous publish waits for a batch
// to fill; events are written one at a time from request handlers.
const kafkaBatchTimeout = 10 * time.Millisecond

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Broker),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}
