package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

func TestMemoryUsersUniqueEmail(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "u1", Email: "a@b.uz"}))
	err := s.Users().Create(ctx, &domain.User{ID: "u2", Email: "a@b.uz"})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestMemoryTransactionIsAtomicForReads(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "u1", Email: "a@b.uz"}))
	err := s.Transaction(ctx, func(tx domain.Store) error {
		if err := tx.Users().Delete(ctx, "u1"); err != nil {
			return err
		}
		_, err := tx.Users().ByID(ctx, "u1")
		require.ErrorIs(t, err, domain.ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryRosterCopiedOnRead(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	st := &domain.Startup{ID: "s1", Name: "X", Team: domain.Roster{{UserID: "u1"}}}
	require.NoError(t, s.Startups().Create(ctx, st))

	got, err := s.Startups().ByID(ctx, "s1")
	require.NoError(t, err)
	got.Team = append(got.Team, domain.TeamMember{UserID: "u2"})

	again, err := s.Startups().ByID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, again.Team, 1) // caller mutation must not leak in
}

func TestMemoryNotFoundMapping(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Startups().ByID(ctx, "yoq")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.True(t, errors.Is(s.Tasks().Delete(ctx, "yoq"), domain.ErrNotFound))
	require.True(t, errors.Is(s.JoinRequests().Delete(ctx, "yoq"), domain.ErrNotFound))
}
