package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/pkg/utils"
)

// CreateTask adds a board task under an existing startup. The assignee
// name is snapshot at creation.
func (s *Service) CreateTask(ctx context.Context, in *domain.Task) (*domain.Task, error) {
	if strings.TrimSpace(in.Title) == "" || in.StartupID == "" {
		return nil, fmt.Errorf("%w: title and startup_id are required", domain.ErrInvalidOperation)
	}
	if _, err := s.store.Startups().ByID(ctx, in.StartupID); err != nil {
		return nil, err
	}
	if in.ID == "" {
		in.ID = utils.NewID()
	}
	if in.Status == "" {
		in.Status = domain.TaskTodo
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = s.now()
	}
	if in.AssignedToName == "" && in.AssignedToID != "" {
		if u, err := s.store.Users().ByID(ctx, in.AssignedToID); err == nil {
			in.AssignedToName = u.Name
		}
	}
	if err := s.store.Tasks().Create(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *Service) TasksForStartup(ctx context.Context, startupID string) ([]domain.Task, error) {
	return s.store.Tasks().ListByStartup(ctx, startupID)
}

// SetTaskStatus moves a task across the board columns.
func (s *Service) SetTaskStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	switch status {
	case domain.TaskTodo, domain.TaskInProgress, domain.TaskDone:
	default:
		return nil, fmt.Errorf("%w: illegal task status %q", domain.ErrInvalidOperation, status)
	}
	t, err := s.store.Tasks().ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Status = status
	if err := s.store.Tasks().Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	return s.store.Tasks().Delete(ctx, id)
}
