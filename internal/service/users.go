package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/pkg/utils"
)

// RegisterInput carries the self-registration fields.
type RegisterInput struct {
	ID           string
	Email        string
	Password     string
	Name         string
	Phone        string
	Bio          string
	Avatar       string
	PortfolioURL string
	Skills       []string
	Languages    []string
	Tools        []string
}

// Register creates a user with role "user". The credential is stored as
// given; there is no hashing anywhere in this system.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: email and name are required", domain.ErrInvalidOperation)
	}
	if _, err := s.store.Users().ByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrInvalidOperation)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	u := &domain.User{
		ID:           in.ID,
		Email:        email,
		Password:     in.Password,
		Name:         strings.TrimSpace(in.Name),
		Phone:        in.Phone,
		Role:         domain.RoleUser,
		Bio:          in.Bio,
		Avatar:       in.Avatar,
		PortfolioURL: in.PortfolioURL,
		Skills:       in.Skills,
		Languages:    in.Languages,
		Tools:        in.Tools,
		CreatedAt:    s.now(),
	}
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	if err := s.store.Users().Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

// Login compares the credential verbatim. The banned flag is not
// consulted here; it gates nothing but its own mutation path.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.store.Users().ByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if u.Password != password {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrInvalidOperation)
	}
	return u, nil
}

func (s *Service) User(ctx context.Context, id string) (*domain.User, error) {
	return s.store.Users().ByID(ctx, id)
}

func (s *Service) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.store.Users().ByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.Users().List(ctx)
}

// UpdateProfileInput applies a partial profile edit; nil pointers leave
// the field untouched. Role, ban state and the email key are excluded:
// those move only through their dedicated operations.
type UpdateProfileInput struct {
	Name         *string
	Phone        *string
	Password     *string
	Bio          *string
	Avatar       *string
	PortfolioURL *string
	Skills       []string
	Languages    []string
	Tools        []string
}

// UpdateProfile edits profile fields. Startups, join requests and tasks
// keep their denormalized name snapshots; a rename here is intentionally
// not propagated.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error) {
	unlock := s.locks.lock(userKey(userID))
	defer unlock()

	u, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Password != nil {
		u.Password = *in.Password
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if in.PortfolioURL != nil {
		u.PortfolioURL = *in.PortfolioURL
	}
	if in.Skills != nil {
		u.Skills = in.Skills
	}
	if in.Languages != nil {
		u.Languages = in.Languages
	}
	if in.Tools != nil {
		u.Tools = in.Tools
	}
	if err := s.store.Users().Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetUserRole is a single-field transition, audited when an actor is
// supplied.
func (s *Service) SetUserRole(ctx context.Context, userID, role, actorID string) (*domain.User, error) {
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidOperation, role)
	}
	unlock := s.locks.lock(userKey(userID))
	defer unlock()

	u, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Role = role
	if err := s.store.Users().Update(ctx, u); err != nil {
		return nil, err
	}
	s.RecordAudit(ctx, actorID, "update_role", "user", userID, map[string]any{"role": role})
	return u, nil
}

// SetUserBanned flips the 0/1 flag. Repeating the same state still
// writes the flag and a fresh audit entry.
func (s *Service) SetUserBanned(ctx context.Context, userID string, banned bool, actorID string) (*domain.User, error) {
	unlock := s.locks.lock(userKey(userID))
	defer unlock()

	u, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Banned = banned
	if err := s.store.Users().Update(ctx, u); err != nil {
		return nil, err
	}
	action := "ban_user"
	if !banned {
		action = "unban_user"
	}
	s.RecordAudit(ctx, actorID, action, "user", userID, nil)
	return u, nil
}

// DeleteUser removes the user plus every reference to them: outstanding
// join requests, notifications, and roster entries on every startup.
// After it returns no entity anywhere references userID.
func (s *Service) DeleteUser(ctx context.Context, userID, actorID string) error {
	unlock := s.locks.lock(userKey(userID))
	defer unlock()

	if _, err := s.store.Users().ByID(ctx, userID); err != nil {
		return err
	}
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		if err := tx.JoinRequests().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := tx.Notifications().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		startups, err := tx.Startups().List(ctx, domain.StartupFilter{})
		if err != nil {
			return err
		}
		for i := range startups {
			if team, dropped := startups[i].Team.Remove(userID); dropped {
				startups[i].Team = team
				if err := tx.Startups().Update(ctx, &startups[i]); err != nil {
					return err
				}
			}
		}
		return tx.Users().Delete(ctx, userID)
	})
	if err != nil {
		return err
	}
	s.RecordAudit(ctx, actorID, "delete_user", "user", userID, nil)
	s.log.Info("user deleted", zap.String("user_id", userID))
	return nil
}
