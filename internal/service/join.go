package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/pkg/utils"
)

// CreateJoinRequestInput is a request to join a startup's team. The
// user snapshot fields are filled from the user record when empty.
type CreateJoinRequestInput struct {
	ID        string
	StartupID string
	UserID    string
	Specialty string
	Comment   string
}

// CreateJoinRequest opens a pending request. Preconditions: the startup
// exists, the requester is not its owner, and the requester is not
// already on the roster. The owner gets an info notification.
func (s *Service) CreateJoinRequest(ctx context.Context, in CreateJoinRequestInput) (*domain.JoinRequest, error) {
	if in.StartupID == "" || in.UserID == "" || in.Specialty == "" {
		return nil, fmt.Errorf("%w: startup_id, user_id and specialty are required", domain.ErrInvalidOperation)
	}

	unlock := s.locks.lock(startupKey(in.StartupID))
	defer unlock()

	st, err := s.store.Startups().ByID(ctx, in.StartupID)
	if err != nil {
		return nil, err
	}
	if st.OwnerID == in.UserID {
		return nil, fmt.Errorf("%w: cannot join your own startup", domain.ErrInvalidOperation)
	}
	if st.Team.Contains(in.UserID) {
		return nil, fmt.Errorf("%w: already a team member", domain.ErrInvalidOperation)
	}
	u, err := s.store.Users().ByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	req := &domain.JoinRequest{
		ID:          in.ID,
		StartupID:   st.ID,
		StartupName: st.Name,
		UserID:      u.ID,
		UserName:    u.Name,
		UserPhone:   u.Phone,
		Specialty:   in.Specialty,
		Comment:     in.Comment,
		Status:      domain.RequestPending,
		CreatedAt:   s.now(),
	}
	if req.ID == "" {
		req.ID = utils.NewID()
	}
	err = s.store.Transaction(ctx, func(tx domain.Store) error {
		if err := tx.JoinRequests().Create(ctx, req); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, s.newNotification(
			st.OwnerID,
			"Yangi ariza",
			fmt.Sprintf("%q jamoangizga qo'shilmoqchi.", u.Name),
			domain.NotifyInfo,
		))
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("join request created",
		zap.String("request_id", req.ID),
		zap.String("startup_id", st.ID),
		zap.String("user_id", u.ID),
	)
	return req, nil
}

func (s *Service) JoinRequest(ctx context.Context, id string) (*domain.JoinRequest, error) {
	return s.store.JoinRequests().ByID(ctx, id)
}

func (s *Service) ListJoinRequests(ctx context.Context, f domain.RequestFilter) ([]domain.JoinRequest, error) {
	return s.store.JoinRequests().List(ctx, f)
}

// AcceptJoinRequest resolves a pending request and appends the
// requester to the roster as one unit: the roster gains at most one
// entry per user id, and if the roster write fails the request stays
// pending. The requester gets a success notification.
func (s *Service) AcceptJoinRequest(ctx context.Context, requestID string) (*domain.JoinRequest, error) {
	req, err := s.store.JoinRequests().ByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(startupKey(req.StartupID))
	defer unlock()

	err = s.store.Transaction(ctx, func(tx domain.Store) error {
		req, err = tx.JoinRequests().ByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Resolved() {
			return fmt.Errorf("%w: request already %s", domain.ErrConflict, req.Status)
		}
		// The requester may have been deleted after the request was
		// loaded; appending them now would leave a roster entry with no
		// backing user. Re-verify inside the transaction.
		if _, err := tx.Users().ByID(ctx, req.UserID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: requester no longer exists", domain.ErrConflict)
			}
			return err
		}
		st, err := tx.Startups().ByID(ctx, req.StartupID)
		if err != nil {
			return err
		}
		// A member who slipped onto the roster some other way still
		// resolves the request, just without a duplicate entry.
		if !st.Team.Contains(req.UserID) {
			st.Team = append(st.Team, domain.TeamMember{
				UserID:   req.UserID,
				Name:     req.UserName,
				Role:     req.Specialty,
				JoinedAt: s.now(),
			})
			if err := tx.Startups().Update(ctx, st); err != nil {
				return err
			}
		}
		req.Status = domain.RequestAccepted
		if err := tx.JoinRequests().Update(ctx, req); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, s.newNotification(
			req.UserID,
			"Tabriklaymiz!",
			fmt.Sprintf("Siz %q jamoasiga qabul qilindingiz.", req.StartupName),
			domain.NotifySuccess,
		))
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("join request accepted",
		zap.String("request_id", req.ID),
		zap.String("startup_id", req.StartupID),
	)
	return req, nil
}

// DeclineJoinRequest resolves a pending request without touching the
// roster. No notification is sent; the source behaves the same way.
func (s *Service) DeclineJoinRequest(ctx context.Context, requestID string) (*domain.JoinRequest, error) {
	req, err := s.store.JoinRequests().ByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(startupKey(req.StartupID))
	defer unlock()

	err = s.store.Transaction(ctx, func(tx domain.Store) error {
		req, err = tx.JoinRequests().ByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Resolved() {
			return fmt.Errorf("%w: request already %s", domain.ErrConflict, req.Status)
		}
		req.Status = domain.RequestDeclined
		return tx.JoinRequests().Update(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// DeleteJoinRequest removes a request outright (client-initiated
// withdrawal).
func (s *Service) DeleteJoinRequest(ctx context.Context, id string) error {
	return s.store.JoinRequests().Delete(ctx, id)
}

// PurgeResolvedRequests is the optional cleanup counterpart to the
// retain-with-status policy: it drops every accepted/declined request.
func (s *Service) PurgeResolvedRequests(ctx context.Context, actorID string) (int64, error) {
	n, err := s.store.JoinRequests().DeleteResolved(ctx)
	if err != nil {
		return 0, err
	}
	s.RecordAudit(ctx, actorID, "purge_resolved_requests", "join_request", "", map[string]any{"deleted": n})
	return n, nil
}
