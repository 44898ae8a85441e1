package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.store.Categories().List(ctx)
}

// CreateCategory adds a category name to the maintained set. Startup
// writes do not validate against this set; it feeds the client's
// pickers only.
func (s *Service) CreateCategory(ctx context.Context, name, actorID string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidOperation)
	}
	if _, err := s.store.Categories().ByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: category already exists", domain.ErrInvalidOperation)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	c := &domain.Category{Name: name, CreatedAt: s.now()}
	if err := s.store.Categories().Create(ctx, c); err != nil {
		return nil, err
	}
	s.RecordAudit(ctx, actorID, "create_category", "category", strconv.FormatUint(uint64(c.ID), 10), map[string]any{"name": name})
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id uint, actorID string) error {
	if err := s.store.Categories().Delete(ctx, id); err != nil {
		return err
	}
	s.RecordAudit(ctx, actorID, "delete_category", "category", strconv.FormatUint(uint64(id), 10), nil)
	return nil
}

// SeedCategories installs the default category set when the table is
// empty. Used by cmd/seed.
func (s *Service) SeedCategories(ctx context.Context) (int, error) {
	existing, err := s.store.Categories().List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	var n int
	for _, name := range domain.DefaultCategories {
		c := &domain.Category{Name: name, CreatedAt: s.now()}
		if err := s.store.Categories().Create(ctx, c); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
