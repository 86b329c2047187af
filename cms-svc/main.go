package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	httpapi "tapasbar-cms/cms-svc/internal/api/http"
	"tapasbar-cms/cms-svc/internal/seed"
	"tapasbar-cms/cms-svc/internal/service"
	"tapasbar-cms/cms-svc/internal/storage"
	"tapasbar-cms/config"
	"tapasbar-cms/logger"

	"github.com/segmentio/kafka-go"
)

const usage = `usage: cms-svc [command]

commands:
  serve                 run the HTTP API (default)
  seed                  fill empty tables with default content, menu and admin user
  import-menu [catalog] replace all menu items with a built-in catalog (complete|detailed)
  restore-menu          replace all menu items with the detailed catalog`

type command struct {
	name    string
	catalog string
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{name: "serve"}, nil
	}
	switch args[0] {
	case "serve", "seed":
		if len(args) > 1 {
			return command{}, fmt.Errorf("%s takes no arguments", args[0])
		}
		return command{name: args[0]}, nil
	case "import-menu":
		cmd := command{name: "import-menu", catalog: seed.CatalogComplete}
		if len(args) > 2 {
			return command{}, fmt.Errorf("import-menu takes at most one catalog")
		}
		if len(args) == 2 {
			cmd.catalog = args[1]
		}
		if cmd.catalog != seed.CatalogComplete && cmd.catalog != seed.CatalogDetailed {
			return command{}, fmt.Errorf("unknown catalog %q", cmd.catalog)
		}
		return cmd, nil
	case "restore-menu":
		return command{name: "import-menu", catalog: seed.CatalogDetailed}, nil
	case "help", "-h", "--help":
		return command{name: "help"}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q", args[0])
	}
}

func main() {
	cmd, err := parseCommand(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if cmd.name == "help" {
		fmt.Println(usage)
		return
	}

	if err := run(cmd); err != nil {
		logger.GetLogger().Errorw("cms-svc failed", "command", cmd.name, "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cmd command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		return err
	}
	log := logger.GetLogger()
	log.Infow("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitPostgres(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPostgresRepository(db, cfg.DB.QueryTimeout)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	seeder := seed.NewSeeder(repo, service.NewBcryptHasher(), seed.Admin{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	})

	switch cmd.name {
	case "seed":
		report, err := seeder.Repair(ctx)
		if err != nil {
			return err
		}
		log.Infow("seed finished", "inserted", report.Inserted, "skipped", report.Skipped)
		return nil
	case "import-menu":
		n, err := seeder.ImportMenu(ctx, cmd.catalog)
		if err != nil {
			return err
		}
		log.Infow("menu import finished", "catalog", cmd.catalog, "items", n)
		return nil
	}

	if cfg.Seed.OnStart {
		if _, err := seeder.Repair(ctx); err != nil {
			log.Warnw("startup seed incomplete", "error", err)
		}
	}
	return serve(ctx, cfg, db, repo)
}

func serve(ctx context.Context, cfg *config.Config, db *sql.DB, repo *storage.PostgresRepository) error {
	log := logger.GetLogger()
	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET_KEY is the built-in default; set a real secret outside development")
	}

	var publisher service.EventPublisher
	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer closeWriter(writer)
		publisher = storage.NewKafkaPublisher(writer)
		log.Infow("event publishing enabled", "broker", cfg.Kafka.Broker, "topic", cfg.Kafka.Topic)
	}

	var (
		throttle service.LoginThrottle
		cache    service.StatsCache
	)
	rdb, err := config.InitRedis(cfg.Redis)
	if err != nil {
		log.Warnw("redis unavailable, login throttling and stats cache disabled", "error", err)
	} else if rdb != nil {
		defer rdb.Close()
		throttle = storage.NewRedisThrottle(rdb)
		cache = storage.NewRedisStatsCache(rdb)
	}

	hasher := service.NewBcryptHasher()
	tokens := service.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	reviews := service.NewReviewService(repo, publisher, service.DefaultQRGenerator{BaseURL: cfg.HTTP.PublicBaseURL})
	reviews.Cache = cache

	handler := &httpapi.Handler{
		Menu:     service.NewMenuService(repo, publisher),
		Reviews:  reviews,
		Auth:     service.NewAuthService(repo, tokens, hasher, throttle, publisher),
		Users:    service.NewUserService(repo, hasher, publisher),
		Messages: service.NewMessageService(repo, publisher),
		Content:  service.NewContentService(repo, publisher),
		Admin:    service.NewAdminService(repo, service.ExecRunner{}, publisher, cfg.DB, cfg.Backup),
		Health:   repo.Ping,
	}

	router := httpapi.NewRouter(handler, cfg.HTTP.AllowedOrigins)
	return httpapi.StartServer(ctx, ":"+strconv.Itoa(cfg.HTTP.Port), router)
}

func closeWriter(w *kafka.Writer) {
	if err := w.Close(); err != nil {
		logger.GetLogger().Warnw("kafka writer close failed", "error", err)
	}
}
