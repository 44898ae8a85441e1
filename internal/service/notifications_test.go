package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

func TestNotificationsAdminSentinelMerge(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "oddiy@garaj.uz", "Oddiy")

	_, err := svc.CreateNotification(ctx, u.ID, "Shaxsiy", "faqat sizga", domain.NotifyInfo)
	require.NoError(t, err)
	_, err = svc.CreateNotification(ctx, domain.NotifyAdmin, "Moderatsiya kerak", "yangi loyiha kutmoqda", domain.NotifyInfo)
	require.NoError(t, err)

	asUser, err := svc.Notifications(ctx, u.ID, false)
	require.NoError(t, err)
	require.Len(t, asUser, 1)
	require.Equal(t, "Shaxsiy", asUser[0].Title)

	asAdmin, err := svc.Notifications(ctx, u.ID, true)
	require.NoError(t, err)
	require.Len(t, asAdmin, 2)
}

func TestMarkNotificationRead(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "oddiy@garaj.uz", "Oddiy")

	n, err := svc.CreateNotification(ctx, u.ID, "Xabar", "", "")
	require.NoError(t, err)
	require.Equal(t, domain.NotifyInfo, n.Type)
	require.False(t, n.IsRead)

	got, err := svc.MarkNotificationRead(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, got.IsRead)

	_, err = svc.MarkNotificationRead(ctx, "yoq-id")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "oddiy@garaj.uz", "Oddiy")

	for i := 0; i < 3; i++ {
		_, err := svc.CreateNotification(ctx, u.ID, "Xabar", "", "")
		require.NoError(t, err)
	}
	require.NoError(t, svc.MarkAllNotificationsRead(ctx, u.ID))

	for _, n := range notificationsFor(t, store, u.ID) {
		require.True(t, n.IsRead)
	}

	require.ErrorIs(t, svc.MarkAllNotificationsRead(ctx, ""), domain.ErrInvalidOperation)
}
