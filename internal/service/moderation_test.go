package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

func TestModerateApprove(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	st := mustCreateStartup(t, svc, owner, "Tasdiq")

	got, err := svc.Moderate(ctx, st.ID, domain.StatusApproved, "ignored", "admin-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, got.Status)
	require.Empty(t, got.RejectionReason) // approve always clears it

	notes := notificationsFor(t, store, owner.ID)
	require.Len(t, notes, 1)
	require.Equal(t, "Loyiha tasdiqlandi", notes[0].Title)
	require.Equal(t, domain.NotifySuccess, notes[0].Type)

	require.Contains(t, auditActions(t, store), "update_startup_status")
}

func TestModerateRejectRequiresReason(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	st := mustCreateStartup(t, svc, owner, "Rad")

	_, err := svc.Moderate(ctx, st.ID, domain.StatusRejected, "   ", "admin-1")
	require.ErrorIs(t, err, domain.ErrInvalidOperation)

	// Nothing moved and nobody was notified.
	got, err := store.Startups().ByID(ctx, st.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPendingAdmin, got.Status)
	require.Empty(t, notificationsFor(t, store, owner.ID))
}

func TestModerateReject(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	st := mustCreateStartup(t, svc, owner, "Rad")

	got, err := svc.Moderate(ctx, st.ID, domain.StatusRejected, "Tavsif yetarli emas", "admin-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, got.Status)
	require.Equal(t, "Tavsif yetarli emas", got.RejectionReason)

	notes := notificationsFor(t, store, owner.ID)
	require.Len(t, notes, 1)
	require.Equal(t, "Loyiha rad etildi", notes[0].Title)
	require.Equal(t, domain.NotifyError, notes[0].Type)
}

func TestModerateIllegalTarget(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	st := mustCreateStartup(t, svc, owner, "Notogri")

	for _, target := range []string{domain.StatusPendingAdmin, "archived", ""} {
		_, err := svc.Moderate(ctx, st.ID, target, "sabab", "admin-1")
		require.ErrorIs(t, err, domain.ErrInvalidOperation, "target %q", target)
	}
}

func TestModerateMissingStartup(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Moderate(context.Background(), "yoq-id", domain.StatusApproved, "", "admin-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoderationFlipsOutcome(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	st := mustCreateStartup(t, svc, owner, "Qayta")

	_, err := svc.Moderate(ctx, st.ID, domain.StatusRejected, "Hali tayyor emas", "admin-1")
	require.NoError(t, err)

	got, err := svc.Moderate(ctx, st.ID, domain.StatusApproved, "", "admin-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, got.Status)
	require.Empty(t, got.RejectionReason)
}
