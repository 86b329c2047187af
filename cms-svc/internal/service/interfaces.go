package service

import (
	"context"
	"encoding/json"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/cms-svc/internal/storage"
)

type MenuRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, includeInactive bool) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *domain.Review) error
	ListReviews(ctx context.Context, approvedOnly bool, limit int) ([]domain.Review, error)
	SetReviewApproval(ctx context.Context, id string, approved bool) (*domain.Review, error)
	DeleteReview(ctx context.Context, id string) error
	ReviewStats(ctx context.Context) (*domain.ReviewStats, error)
}

// StatsCache is optional; a nil cache always reads from the repository.
type StatsCache interface {
	GetStats(ctx context.Context) (*domain.ReviewStats, error)
	SetStats(ctx context.Context, stats *domain.ReviewStats) error
	InvalidateStats(ctx context.Context) error
}

type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) error
	UpdateUser(ctx context.Context, u *domain.User, newHash *string) error
	DeleteUser(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type MessageRepository interface {
	CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id string) error
	CreateNewsletterSubscriber(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	ListNewsletterSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error)
}

type ContentRepository interface {
	GetContent(ctx context.Context, key string) (*domain.ContentBlock, error)
	PutContent(ctx context.Context, key string, data json.RawMessage, updatedBy string) (*domain.ContentBlock, error)
}

type AdminRepository interface {
	Ping(ctx context.Context) error
	ListActions(ctx context.Context, limit int) ([]domain.ActionLogEntry, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, ev domain.ContentEvent) error
}

type LoginThrottle interface {
	Wait(ctx context.Context, username string) (time.Duration, error)
	RecordFailure(ctx context.Context, username string) (time.Duration, error)
	Reset(ctx context.Context, username string) error
}

type TokenIssuer interface {
	Issue(username string) (string, time.Time, error)
	Parse(token string) (string, error)
	TTL() time.Duration
}

type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, env []string) ([]byte, error)
}

type QRGenerator interface {
	Generate(location string) ([]byte, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context, includeInactive bool) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, actor string, item *domain.MenuItem) error
	Update(ctx context.Context, actor string, item *domain.MenuItem) error
	Delete(ctx context.Context, actor, id string) error
}

type ReviewServiceInterface interface {
	Submit(ctx context.Context, review *domain.Review) error
	List(ctx context.Context, approvedOnly bool, limit int) ([]domain.Review, error)
	SetApproval(ctx context.Context, actor, id string, approved bool) (*domain.Review, error)
	Delete(ctx context.Context, actor, id string) error
	Stats(ctx context.Context) (*domain.ReviewStats, error)
	QRCode(location string) ([]byte, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*domain.Token, error)
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

type UserServiceInterface interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, actor string, in domain.UserInput) (*domain.User, error)
	Update(ctx context.Context, actor, id string, in domain.UserInput) (*domain.User, error)
	Delete(ctx context.Context, actor, id string) error
}

type MessageServiceInterface interface {
	SubmitContact(ctx context.Context, msg *domain.ContactMessage) error
	ListContact(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Subscribe(ctx context.Context, email string) (alreadySubscribed bool, err error)
	ListSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error)
}

type ContentServiceInterface interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, actor, key string, data json.RawMessage) (*domain.ContentBlock, error)
}

type AdminServiceInterface interface {
	ListBackups(ctx context.Context) ([]domain.BackupFile, error)
	CreateBackup(ctx context.Context, actor string) (*domain.BackupFile, error)
	RestoreBackup(ctx context.Context, actor, filename string) error
	SystemInfo(ctx context.Context) domain.SystemInfo
	DatabaseConfig() domain.DatabaseConfig
	AuditLog(ctx context.Context, limit int) ([]domain.ActionLogEntry, error)
}

var (
	_ MenuRepository    = (*storage.PostgresRepository)(nil)
	_ ReviewRepository  = (*storage.PostgresRepository)(nil)
	_ UserRepository    = (*storage.PostgresRepository)(nil)
	_ MessageRepository = (*storage.PostgresRepository)(nil)
	_ ContentRepository = (*storage.PostgresRepository)(nil)
	_ AdminRepository   = (*storage.PostgresRepository)(nil)
	_ EventPublisher    = (*storage.KafkaPublisher)(nil)
	_ LoginThrottle     = (*storage.RedisThrottle)(nil)
	_ StatsCache        = (*storage.RedisStatsCache)(nil)

	_ MenuServiceInterface    = (*MenuService)(nil)
	_ ReviewServiceInterface  = (*ReviewService)(nil)
	_ AuthServiceInterface    = (*AuthService)(nil)
	_ UserServiceInterface    = (*UserService)(nil)
	_ MessageServiceInterface = (*MessageService)(nil)
	_ ContentServiceInterface = (*ContentService)(nil)
	_ AdminServiceInterface   = (*AdminService)(nil)
	_ TokenIssuer             = (*JWTIssuer)(nil)
	_ PasswordHasher          = BcryptHasher{}
	_ QRGenerator             = DefaultQRGenerator{}
	_ CommandRunner           = ExecRunner{}
)
