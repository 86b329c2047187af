package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/logger"
)

type AuthService struct {
	users     UserRepository
	tokens    TokenIssuer
	hasher    PasswordHasher
	throttle  LoginThrottle
	publisher EventPublisher
	now       func() time.Time
}

func NewAuthService(users UserRepository, tokens TokenIssuer, hasher PasswordHasher, throttle LoginThrottle, publisher EventPublisher) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		hasher:    hasher,
		throttle:  throttle,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		wait, err := s.throttle.Wait(ctx, username)
		if err != nil {
			logger.GetLogger().Warnw("login throttle unavailable", "error", err)
		} else if wait > 0 {
			return nil, fmt.Errorf("%w: retry in %ds", domain.ErrTooManyAttempts, int(wait.Round(time.Second).Seconds()))
		}
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	signed, _, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	if err := s.users.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		logger.GetLogger().Warnw("failed to record last login", "user", user.Username, "error", err)
	}
	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			logger.GetLogger().Warnw("failed to reset login throttle", "user", username, "error", err)
		}
	}
	publish(ctx, s.publisher, domain.EventLoginSucceeded, user.ID, user.Username, nil)

	return &domain.Token{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
	}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	publish(ctx, s.publisher, domain.EventLoginFailed, "", username, nil)
	if s.throttle == nil {
		return
	}
	if _, err := s.throttle.RecordFailure(ctx, username); err != nil {
		logger.GetLogger().Warnw("failed to record login failure", "user", username, "error", err)
	}
}

// Authenticate resolves a bearer token to the caller's identity.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	username, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve token subject: %w", err)
	}

	identity := user.Identity()
	return &identity, nil
}
