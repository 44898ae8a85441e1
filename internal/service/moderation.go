package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

// Moderate drives the startup approval state machine. The only legal
// targets are approved and rejected; there is no way back to
// pending_admin. A rejection requires a non-empty reason, an approval
// clears any previous reason, so rejection_reason is set exactly when
// status is rejected. The owner is notified either way.
//
// Role checks belong to the transport layer; the workflow accepts any
// actor id it is given.
func (s *Service) Moderate(ctx context.Context, startupID, status, reason, actorID string) (*domain.Startup, error) {
	switch status {
	case domain.StatusApproved:
		reason = ""
	case domain.StatusRejected:
		if strings.TrimSpace(reason) == "" {
			return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrInvalidOperation)
		}
	default:
		return nil, fmt.Errorf("%w: illegal status target %q", domain.ErrInvalidOperation, status)
	}

	unlock := s.locks.lock(startupKey(startupID))
	defer unlock()

	var st *domain.Startup
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		var err error
		st, err = tx.Startups().ByID(ctx, startupID)
		if err != nil {
			return err
		}
		st.Status = status
		st.RejectionReason = reason
		if err := tx.Startups().Update(ctx, st); err != nil {
			return err
		}
		title, text, kind := moderationNotice(st)
		return tx.Notifications().Create(ctx, s.newNotification(st.OwnerID, title, text, kind))
	})
	if err != nil {
		return nil, err
	}
	s.RecordAudit(ctx, actorID, "update_startup_status", "startup", startupID, map[string]any{
		"status":           status,
		"rejection_reason": reason,
	})
	s.log.Info("startup moderated",
		zap.String("startup_id", startupID),
		zap.String("status", status),
	)
	return st, nil
}

func moderationNotice(st *domain.Startup) (title, text, kind string) {
	text = fmt.Sprintf("%q loyihasi moderatsiyadan o'tdi.", st.Name)
	if st.Status == domain.StatusApproved {
		return "Loyiha tasdiqlandi", text, domain.NotifySuccess
	}
	return "Loyiha rad etildi", text, domain.NotifyError
}
