package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/pkg/utils"
)

// RecordAudit appends an audit entry. Anonymous actions (empty actor)
// are skipped. Best-effort: a failed write is logged and never fails
// the triggering operation.
func (s *Service) RecordAudit(ctx context.Context, actorID, action, entityType, entityID string, meta map[string]any) {
	if actorID == "" {
		return
	}
	e := &domain.AuditLog{
		ID:         utils.NewID(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Meta:       meta,
		CreatedAt:  s.now(),
	}
	if err := s.store.Audit().Append(ctx, e); err != nil {
		s.log.Warn("audit append failed",
			zap.String("action", action),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
	}
}

// AuditLogs returns the newest entries, capped at 200.
func (s *Service) AuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return s.store.Audit().List(ctx, limit)
}
