package storage

import (
	"context"
	"strings"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/google/uuid"
)

func (r *PostgresRepository) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	msg.ID = uuid.NewString()
	msg.IsRead = false
	if msg.Date.IsZero() {
		msg.Date = time.Now().UTC()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, date, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		msg.ID, msg.Name, msg.Email, nullString(msg.Phone), msg.Subject, msg.Message, msg.Date, msg.IsRead)
	return classify(err)
}

func (r *PostgresRepository) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, COALESCE(phone, ''), subject, message, date, is_read
		FROM contact_messages
		ORDER BY date DESC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	messages := make([]domain.ContactMessage, 0)
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Date, &m.IsRead); err != nil {
			return nil, classify(err)
		}
		messages = append(messages, m)
	}
	return messages, classify(rows.Err())
}

func (r *PostgresRepository) MarkContactMessageRead(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return rowsAffected(r.DB.ExecContext(ctx, `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id))
}

// CreateNewsletterSubscriber returns ErrDuplicateKey when the address is
// already on the list. Addresses are compared lower-cased.
func (r *PostgresRepository) CreateNewsletterSubscriber(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sub := &domain.NewsletterSubscriber{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		IsActive: true,
	}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO newsletter_subscribers (id, email, is_active)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		sub.ID, sub.Email, sub.IsActive,
	).Scan(&sub.CreatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return sub, nil
}

func (r *PostgresRepository) ListNewsletterSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, email, created_at, is_active
		FROM newsletter_subscribers
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	subs := make([]domain.NewsletterSubscriber, 0)
	for rows.Next() {
		var s domain.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt, &s.IsActive); err != nil {
			return nil, classify(err)
		}
		subs = append(subs, s)
	}
	return subs, classify(rows.Err())
}
