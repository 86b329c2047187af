package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tapasbar-cms/cms-svc/internal/domain"
)

type MessageService struct {
	repo      MessageRepository
	publisher EventPublisher
}

func NewMessageService(repo MessageRepository, publisher EventPublisher) *MessageService {
	return &MessageService{repo: repo, publisher: publisher}
}

func (s *MessageService) SubmitContact(ctx context.Context, msg *domain.ContactMessage) error {
	msg.Email = strings.TrimSpace(msg.Email)
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := s.repo.CreateContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("save contact message: %w", err)
	}
	publish(ctx, s.publisher, domain.EventContactReceived, msg.ID, msg.Email, msg)
	return nil
}

func (s *MessageService) ListContact(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.ListContactMessages(ctx)
}

func (s *MessageService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkContactMessageRead(ctx, id)
}

// Subscribe adds an address to the newsletter. An address that is already
// subscribed is reported through the boolean, not as an error.
func (s *MessageService) Subscribe(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if !domain.ValidEmail(email) {
		return false, domain.Invalid("email", "is not a valid address")
	}

	sub, err := s.repo.CreateNewsletterSubscriber(ctx, email)
	if errors.Is(err, domain.ErrDuplicateKey) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("subscribe %s: %w", email, err)
	}
	publish(ctx, s.publisher, domain.EventNewsletterSubscribe, sub.ID, sub.Email, nil)
	return false, nil
}

func (s *MessageService) ListSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	return s.repo.ListNewsletterSubscribers(ctx)
}
