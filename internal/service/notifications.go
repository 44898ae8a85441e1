package service

import (
	"context"
	"fmt"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/pkg/utils"
)

func (s *Service) newNotification(userID, title, text, kind string) *domain.Notification {
	return &domain.Notification{
		ID:        utils.NewID(),
		UserID:    userID,
		Title:     title,
		Text:      text,
		Type:      kind,
		CreatedAt: s.now(),
	}
}

// CreateNotification stores a direct notification (admin broadcasts use
// the sentinel recipient "admin").
func (s *Service) CreateNotification(ctx context.Context, userID, title, text, kind string) (*domain.Notification, error) {
	if userID == "" || title == "" {
		return nil, fmt.Errorf("%w: user_id and title are required", domain.ErrInvalidOperation)
	}
	if kind == "" {
		kind = domain.NotifyInfo
	}
	n := s.newNotification(userID, title, text, kind)
	if err := s.store.Notifications().Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Notifications lists a user's feed, newest first, merged with the
// admin-sentinel broadcasts when the viewer holds the admin role.
func (s *Service) Notifications(ctx context.Context, userID string, viewerIsAdmin bool) ([]domain.Notification, error) {
	if userID == "" || userID == "all" {
		return s.store.Notifications().ListAll(ctx)
	}
	return s.store.Notifications().ListForUser(ctx, userID, viewerIsAdmin)
}

// MarkNotificationRead flips is_read, the only recipient-driven
// mutation a notification allows.
func (s *Service) MarkNotificationRead(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.store.Notifications().ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.IsRead = true
	if err := s.store.Notifications().Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", domain.ErrInvalidOperation)
	}
	return s.store.Notifications().MarkAllRead(ctx, userID)
}
