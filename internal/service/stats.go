package service

import (
	"context"
	"time"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/cache"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

// Stats is the admin dashboard counter set.
type Stats struct {
	Users           int64 `json:"users"`
	Startups        int64 `json:"startups"`
	PendingStartups int64 `json:"pending_startups"`
	JoinRequests    int64 `json:"join_requests"`
	Notifications   int64 `json:"notifications"`
}

const statsCacheTTL = 30 * time.Second

// GetStats aggregates the counters, read-through cached when redis is
// configured.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	if s.cache == nil {
		return s.loadStats(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, "garajhub:stats", statsCacheTTL, s.loadStats)
}

func (s *Service) loadStats(ctx context.Context) (*Stats, error) {
	var out Stats
	var err error
	if out.Users, err = s.store.Users().Count(ctx); err != nil {
		return nil, err
	}
	if out.Startups, err = s.store.Startups().Count(ctx, ""); err != nil {
		return nil, err
	}
	if out.PendingStartups, err = s.store.Startups().Count(ctx, domain.StatusPendingAdmin); err != nil {
		return nil, err
	}
	if out.JoinRequests, err = s.store.JoinRequests().Count(ctx, domain.RequestPending); err != nil {
		return nil, err
	}
	if out.Notifications, err = s.store.Notifications().Count(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}
