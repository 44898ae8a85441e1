package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/pkg/utils"
)

// CreateStartup stores a new listing in pending_admin state. The owner
// is seeded onto the roster as founder when the client sent no roster.
func (s *Service) CreateStartup(ctx context.Context, in *domain.Startup) (*domain.Startup, error) {
	if strings.TrimSpace(in.Name) == "" || in.OwnerID == "" {
		return nil, fmt.Errorf("%w: nomi and egasi_id are required", domain.ErrInvalidOperation)
	}
	if in.ID == "" {
		in.ID = utils.NewID()
	}
	in.Status = domain.StatusPendingAdmin
	in.RejectionReason = ""
	if in.CreatedAt.IsZero() {
		in.CreatedAt = s.now()
	}
	if in.OwnerName == "" {
		if owner, err := s.store.Users().ByID(ctx, in.OwnerID); err == nil {
			in.OwnerName = owner.Name
		}
	}
	if len(in.Team) == 0 {
		in.Team = domain.Roster{{
			UserID:   in.OwnerID,
			Name:     in.OwnerName,
			Role:     "Asoschi",
			JoinedAt: s.now(),
		}}
	} else {
		in.Team = dedupeRoster(in.Team)
	}
	if err := s.store.Startups().Create(ctx, in); err != nil {
		return nil, err
	}
	s.log.Info("startup created", zap.String("startup_id", in.ID), zap.String("owner_id", in.OwnerID))
	return in, nil
}

// dedupeRoster drops repeated user ids from a client-supplied roster,
// keeping the first occurrence. A roster never holds two entries for
// one user, whatever the mutation path.
func dedupeRoster(team domain.Roster) domain.Roster {
	out := make(domain.Roster, 0, len(team))
	for _, m := range team {
		if !out.Contains(m.UserID) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Service) Startup(ctx context.Context, id string) (*domain.Startup, error) {
	return s.store.Startups().ByID(ctx, id)
}

// ListStartups applies the read-side discovery rule: callers without a
// viewer context see only approved startups; a viewer additionally sees
// everything they own. Admin viewers see all.
func (s *Service) ListStartups(ctx context.Context, viewerID string, viewerIsAdmin bool) ([]domain.Startup, error) {
	all, err := s.store.Startups().List(ctx, domain.StartupFilter{})
	if err != nil {
		return nil, err
	}
	if viewerIsAdmin {
		return all, nil
	}
	out := make([]domain.Startup, 0, len(all))
	for _, st := range all {
		if st.Status == domain.StatusApproved || st.OwnerID == viewerID || (viewerID != "" && st.Team.Contains(viewerID)) {
			out = append(out, st)
		}
	}
	return out, nil
}

// UpdateStartupInput is a partial edit of the owner-mutable fields.
// Status and rejection_reason move only through Moderate; the roster
// only through the join workflow and DeleteUser.
type UpdateStartupInput struct {
	Name        *string
	Description *string
	Category    *string
	WantedRoles []string
	Logo        *string
	GithubURL   *string
	WebsiteURL  *string
	Views       *int
}

func (s *Service) UpdateStartup(ctx context.Context, id string, in UpdateStartupInput) (*domain.Startup, error) {
	unlock := s.locks.lock(startupKey(id))
	defer unlock()

	st, err := s.store.Startups().ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: nomi cannot be empty", domain.ErrInvalidOperation)
		}
		st.Name = *in.Name
	}
	if in.Description != nil {
		st.Description = *in.Description
	}
	if in.Category != nil {
		st.Category = *in.Category
	}
	if in.WantedRoles != nil {
		st.WantedRoles = in.WantedRoles
	}
	if in.Logo != nil {
		st.Logo = *in.Logo
	}
	if in.GithubURL != nil {
		st.GithubURL = *in.GithubURL
	}
	if in.WebsiteURL != nil {
		st.WebsiteURL = *in.WebsiteURL
	}
	if in.Views != nil {
		st.Views = *in.Views
	}
	if err := s.store.Startups().Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteStartup removes the startup together with its tasks and join
// requests, leaving no orphaned child records.
func (s *Service) DeleteStartup(ctx context.Context, id, actorID string) error {
	unlock := s.locks.lock(startupKey(id))
	defer unlock()

	if _, err := s.store.Startups().ByID(ctx, id); err != nil {
		return err
	}
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		if err := tx.Tasks().DeleteByStartup(ctx, id); err != nil {
			return err
		}
		if err := tx.JoinRequests().DeleteByStartup(ctx, id); err != nil {
			return err
		}
		return tx.Startups().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.RecordAudit(ctx, actorID, "delete_startup", "startup", id, nil)
	s.log.Info("startup deleted", zap.String("startup_id", id))
	return nil
}
