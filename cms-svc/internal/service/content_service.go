package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tapasbar-cms/cms-svc/internal/content"
	"tapasbar-cms/cms-svc/internal/domain"
)

type ContentService struct {
	repo      ContentRepository
	publisher EventPublisher
}

func NewContentService(repo ContentRepository, publisher EventPublisher) *ContentService {
	return &ContentService{repo: repo, publisher: publisher}
}

// Get returns the stored document for key, falling back to the built-in
// default. Keys with neither yield domain.ErrNotFound.
func (s *ContentService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	block, err := s.repo.GetContent(ctx, key)
	if err == nil {
		return block.Data, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("load content %s: %w", key, err)
	}

	if def, ok := content.Default(key); ok {
		return def, nil
	}
	return nil, domain.ErrNotFound
}

func (s *ContentService) Put(ctx context.Context, actor, key string, data json.RawMessage) (*domain.ContentBlock, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return nil, domain.Invalid("body", "must be a JSON object")
	}

	block, err := s.repo.PutContent(ctx, key, data, actor)
	if err != nil {
		return nil, fmt.Errorf("store content %s: %w", key, err)
	}
	publish(ctx, s.publisher, domain.EventContentUpdated, key, actor, nil)
	return block, nil
}
