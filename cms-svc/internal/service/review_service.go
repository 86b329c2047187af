package service

import (
	"context"
	"fmt"
	"strings"

	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/logger"
)

type ReviewService struct {
	repository ReviewRepository
	publisher  EventPublisher
	qr         QRGenerator
	Cache      StatsCache
}

func NewReviewService(repository ReviewRepository, publisher EventPublisher, qr QRGenerator) *ReviewService {
	return &ReviewService{
		repository: repository,
		publisher:  publisher,
		qr:         qr,
	}
}

// Submit stores a new review awaiting moderation.
func (s *ReviewService) Submit(ctx context.Context, review *domain.Review) error {
	review.CustomerName = strings.TrimSpace(review.CustomerName)
	if err := review.Validate(); err != nil {
		return err
	}
	if err := s.repository.CreateReview(ctx, review); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}

	publish(ctx, s.publisher, domain.EventReviewSubmitted, review.ID, review.CustomerName, review)
	return nil
}

func (s *ReviewService) List(ctx context.Context, approvedOnly bool, limit int) ([]domain.Review, error) {
	return s.repository.ListReviews(ctx, approvedOnly, limit)
}

func (s *ReviewService) SetApproval(ctx context.Context, actor, id string, approved bool) (*domain.Review, error) {
	review, err := s.repository.SetReviewApproval(ctx, id, approved)
	if err != nil {
		return nil, fmt.Errorf("failed to moderate review %s: %w", id, err)
	}
	s.invalidateStats(ctx)
	publish(ctx, s.publisher, domain.EventReviewModerated, id, actor, map[string]bool{"is_approved": approved})
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, actor, id string) error {
	if err := s.repository.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	s.invalidateStats(ctx)
	publish(ctx, s.publisher, domain.EventReviewDeleted, id, actor, nil)
	return nil
}

// Stats serves the cached snapshot when one exists. Cache errors fall back to
// the repository.
func (s *ReviewService) Stats(ctx context.Context) (*domain.ReviewStats, error) {
	log := logger.GetLogger()
	if s.Cache != nil {
		cached, err := s.Cache.GetStats(ctx)
		if err != nil {
			log.Warnw("review stats cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repository.ReviewStats(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.SetStats(ctx, stats); err != nil {
			log.Warnw("review stats cache write failed", "error", err)
		}
	}
	return stats, nil
}

func (s *ReviewService) invalidateStats(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateStats(ctx); err != nil {
		logger.GetLogger().Warnw("review stats cache invalidation failed", "error", err)
	}
}

func (s *ReviewService) QRCode(location string) ([]byte, error) {
	return s.qr.Generate(location)
}
