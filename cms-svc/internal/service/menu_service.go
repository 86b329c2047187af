package service

import (
	"context"
	"fmt"

	"tapasbar-cms/cms-svc/internal/domain"
)

type MenuService struct {
	repo      MenuRepository
	publisher EventPublisher
}

func NewMenuService(repo MenuRepository, publisher EventPublisher) *MenuService {
	return &MenuService{repo: repo, publisher: publisher}
}

func (s *MenuService) List(ctx context.Context, includeInactive bool) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, includeInactive)
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, actor string, item *domain.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return fmt.Errorf("create menu item: %w", err)
	}
	publish(ctx, s.publisher, domain.EventMenuItemCreated, item.ID, actor, item)
	return nil
}

// Update replaces the stored item. A missing id yields domain.ErrNotFound.
func (s *MenuService) Update(ctx context.Context, actor string, item *domain.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return fmt.Errorf("update menu item %s: %w", item.ID, err)
	}
	publish(ctx, s.publisher, domain.EventMenuItemUpdated, item.ID, actor, item)
	return nil
}

func (s *MenuService) Delete(ctx context.Context, actor, id string) error {
	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		return fmt.Errorf("delete menu item %s: %w", id, err)
	}
	publish(ctx, s.publisher, domain.EventMenuItemDeleted, id, actor, nil)
	return nil
}
