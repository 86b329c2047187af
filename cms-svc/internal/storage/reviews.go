package storage

import (
	"context"
	"fmt"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/google/uuid"
)

const MaxReviewLimit = 1000

func (r *PostgresRepository) CreateReview(ctx context.Context, review *domain.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	review.ID = uuid.NewString()
	review.IsApproved = false
	if review.Date.IsZero() {
		review.Date = time.Now().UTC()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reviews (id, customer_name, rating, comment, date, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		review.ID, review.CustomerName, review.Rating, review.Comment, review.Date, review.IsApproved)
	return classify(err)
}

// ListReviews returns the newest reviews first. limit is clamped to 1..MaxReviewLimit.
func (r *PostgresRepository) ListReviews(ctx context.Context, approvedOnly bool, limit int) ([]domain.Review, error) {
	if limit <= 0 || limit > MaxReviewLimit {
		limit = MaxReviewLimit
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, customer_name, rating, comment, date, is_approved FROM reviews`
	if approvedOnly {
		query += ` WHERE is_approved = TRUE`
	}
	query += ` ORDER BY date DESC LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.CustomerName, &rev.Rating, &rev.Comment, &rev.Date, &rev.IsApproved); err != nil {
			return nil, classify(err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, classify(rows.Err())
}

func (r *PostgresRepository) SetReviewApproval(ctx context.Context, id string, approved bool) (*domain.Review, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rev domain.Review
	err := r.DB.QueryRowContext(ctx, `
		UPDATE reviews SET is_approved = $1 WHERE id = $2
		RETURNING id, customer_name, rating, comment, date, is_approved`,
		approved, id,
	).Scan(&rev.ID, &rev.CustomerName, &rev.Rating, &rev.Comment, &rev.Date, &rev.IsApproved)
	if err != nil {
		return nil, classify(err)
	}
	return &rev, nil
}

func (r *PostgresRepository) DeleteReview(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return rowsAffected(r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id))
}

// ReviewStats aggregates approved reviews only.
func (r *PostgresRepository) ReviewStats(ctx context.Context) (*domain.ReviewStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT rating, COUNT(*) AS count
		FROM reviews
		WHERE is_approved = TRUE
		GROUP BY rating
		ORDER BY rating`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	stats := &domain.ReviewStats{
		Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
	}
	sum := 0
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, classify(err)
		}
		stats.Distribution[fmt.Sprintf("%d", rating)] = count
		stats.Total += count
		sum += rating * count
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	if stats.Total > 0 {
		stats.Average = float64(sum) / float64(stats.Total)
	}
	return stats, nil
}
