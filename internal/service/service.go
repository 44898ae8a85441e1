// Package service is the consistency layer: every operation that
// mutates more than one entity kind, or that must keep the denormalized
// rosters, statuses and notifications coherent, lives here as a single
// named operation.
package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/cache"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

type Service struct {
	store domain.Store
	log   *zap.Logger
	cache *cache.Cache // optional, stats only
	locks keyedLocks
	now   func() time.Time
}

// New builds the service layer. cache may be nil; stats then hit the
// store on every call.
func New(store domain.Store, log *zap.Logger, c *cache.Cache) *Service {
	return &Service{
		store: store,
		log:   log,
		cache: c,
		now:   time.Now,
	}
}

func startupKey(id string) string { return "startup:" + id }
func userKey(id string) string    { return "user:" + id }
