package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/repo"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
)

func newTestService(t *testing.T) (*service.Service, domain.Store) {
	t.Helper()
	store := repo.NewMemoryStore()
	return service.New(store, zap.NewNop(), nil), store
}

func mustRegister(t *testing.T, svc *service.Service, email, name string) *domain.User {
	t.Helper()
	u, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    email,
		Password: "sirli-parol",
		Name:     name,
		Phone:    "+998901234567",
	})
	require.NoError(t, err)
	return u
}

func mustCreateStartup(t *testing.T, svc *service.Service, owner *domain.User, name string) *domain.Startup {
	t.Helper()
	st, err := svc.CreateStartup(context.Background(), &domain.Startup{
		Name:        name,
		Description: "test loyiha",
		Category:    "Fintech",
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
	})
	require.NoError(t, err)
	return st
}

func mustJoinRequest(t *testing.T, svc *service.Service, st *domain.Startup, u *domain.User, specialty string) *domain.JoinRequest {
	t.Helper()
	jr, err := svc.CreateJoinRequest(context.Background(), service.CreateJoinRequestInput{
		StartupID: st.ID,
		UserID:    u.ID,
		Specialty: specialty,
	})
	require.NoError(t, err)
	return jr
}

func notificationsFor(t *testing.T, store domain.Store, userID string) []domain.Notification {
	t.Helper()
	list, err := store.Notifications().ListForUser(context.Background(), userID, false)
	require.NoError(t, err)
	return list
}

func auditActions(t *testing.T, store domain.Store) []string {
	t.Helper()
	entries, err := store.Audit().List(context.Background(), 200)
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Action)
	}
	return out
}
