package service

import (
	"context"
	"fmt"
	"strings"

	"tapasbar-cms/cms-svc/internal/domain"
)

type UserService struct {
	repo      UserRepository
	hasher    PasswordHasher
	publisher EventPublisher
}

func NewUserService(repo UserRepository, hasher PasswordHasher, publisher EventPublisher) *UserService {
	return &UserService{repo: repo, hasher: hasher, publisher: publisher}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) Create(ctx context.Context, actor string, in domain.UserInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Role == "" {
		in.Role = domain.RoleViewer
	}
	if err := in.Validate(true); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		IsActive:     in.IsActive == nil || *in.IsActive,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user %s: %w", in.Username, err)
	}

	publish(ctx, s.publisher, domain.EventUserCreated, user.ID, actor, map[string]string{
		"username": user.Username,
		"role":     string(user.Role),
	})
	return user, nil
}

// Update rewrites username, email, role and active flag. The password is
// replaced only when a new one is supplied.
func (s *UserService) Update(ctx context.Context, actor, id string, in domain.UserInput) (*domain.User, error) {
	current, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Username = strings.TrimSpace(in.Username)
	if in.Role == "" {
		in.Role = current.Role
	}
	if err := in.Validate(false); err != nil {
		return nil, err
	}

	var newHash *string
	if in.Password != "" {
		if len(in.Password) < 8 {
			return nil, domain.Invalid("password", "must be at least 8 characters")
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		newHash = &hash
	}

	current.Username = in.Username
	current.Email = in.Email
	current.Role = in.Role
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}
	if err := s.repo.UpdateUser(ctx, current, newHash); err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}

	publish(ctx, s.publisher, domain.EventUserUpdated, id, actor, map[string]any{
		"username":         current.Username,
		"role":             string(current.Role),
		"password_changed": newHash != nil,
	})
	return current, nil
}

func (s *UserService) Delete(ctx context.Context, actor, id string) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	publish(ctx, s.publisher, domain.EventUserDeleted, id, actor, nil)
	return nil
}
