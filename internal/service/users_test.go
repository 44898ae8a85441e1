package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	mustRegister(t, svc, "ali@garaj.uz", "Ali")

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email: "ALI@garaj.uz", // same address, different case
		Name:  "Boshqa Ali",
	})
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestLoginVerbatimCompare(t *testing.T) {
	svc, _ := newTestService(t)
	u := mustRegister(t, svc, "vali@garaj.uz", "Vali")

	got, err := svc.Login(context.Background(), "vali@garaj.uz", "sirli-parol")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = svc.Login(context.Background(), "vali@garaj.uz", "notogri")
	require.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = svc.Login(context.Background(), "yoq@garaj.uz", "sirli-parol")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoginIgnoresBannedFlag(t *testing.T) {
	svc, _ := newTestService(t)
	u := mustRegister(t, svc, "banned@garaj.uz", "Banned")

	_, err := svc.SetUserBanned(context.Background(), u.ID, true, "admin-1")
	require.NoError(t, err)

	// The flag gates nothing outside its own mutation path.
	got, err := svc.Login(context.Background(), "banned@garaj.uz", "sirli-parol")
	require.NoError(t, err)
	require.True(t, got.Banned)
}

func TestUpdateProfileKeepsSnapshots(t *testing.T) {
	svc, store := newTestService(t)
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	member := mustRegister(t, svc, "azo@garaj.uz", "Azo")
	st := mustCreateStartup(t, svc, owner, "SnapshotLab")
	jr := mustJoinRequest(t, svc, st, member, "Backend")
	_, err := svc.AcceptJoinRequest(context.Background(), jr.ID)
	require.NoError(t, err)

	newName := "Azo Yangilangan"
	_, err = svc.UpdateProfile(context.Background(), member.ID, service.UpdateProfileInput{Name: &newName})
	require.NoError(t, err)

	// Denormalized names stay as written; a rename is not propagated.
	got, err := store.Startups().ByID(context.Background(), st.ID)
	require.NoError(t, err)
	require.True(t, got.Team.Contains(member.ID))
	for _, m := range got.Team {
		if m.UserID == member.ID {
			require.Equal(t, "Azo", m.Name)
		}
	}
	gotReq, err := store.JoinRequests().ByID(context.Background(), jr.ID)
	require.NoError(t, err)
	require.Equal(t, "Azo", gotReq.UserName)
}

func TestSetUserRoleValidation(t *testing.T) {
	svc, _ := newTestService(t)
	u := mustRegister(t, svc, "rol@garaj.uz", "Rol")

	_, err := svc.SetUserRole(context.Background(), u.ID, "superuser", "admin-1")
	require.ErrorIs(t, err, domain.ErrInvalidOperation)

	got, err := svc.SetUserRole(context.Background(), u.ID, domain.RoleAdmin, "admin-1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, got.Role)
}

func TestSetUserBannedRepeatStillAudits(t *testing.T) {
	svc, store := newTestService(t)
	u := mustRegister(t, svc, "qayta@garaj.uz", "Qayta")

	for i := 0; i < 2; i++ {
		got, err := svc.SetUserBanned(context.Background(), u.ID, true, "admin-1")
		require.NoError(t, err)
		require.True(t, got.Banned)
	}

	var bans int
	for _, a := range auditActions(t, store) {
		if a == "ban_user" {
			bans++
		}
	}
	require.Equal(t, 2, bans)
}

func TestDeleteUserCascade(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	owner := mustRegister(t, svc, "owner@garaj.uz", "Owner")
	member := mustRegister(t, svc, "member@garaj.uz", "Member")
	st := mustCreateStartup(t, svc, owner, "CascadeLab")
	other := mustCreateStartup(t, svc, owner, "OtherLab")

	jr := mustJoinRequest(t, svc, st, member, "Frontend")
	_, err := svc.AcceptJoinRequest(ctx, jr.ID)
	require.NoError(t, err)
	mustJoinRequest(t, svc, other, member, "Frontend") // left pending

	require.NoError(t, svc.DeleteUser(ctx, member.ID, "admin-1"))

	_, err = store.Users().ByID(ctx, member.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	reqs, err := store.JoinRequests().List(ctx, domain.RequestFilter{UserID: member.ID})
	require.NoError(t, err)
	require.Empty(t, reqs)

	require.Empty(t, notificationsFor(t, store, member.ID))

	gotSt, err := store.Startups().ByID(ctx, st.ID)
	require.NoError(t, err)
	require.False(t, gotSt.Team.Contains(member.ID))

	require.Contains(t, auditActions(t, store), "delete_user")
}

func TestDeleteUserMissing(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.DeleteUser(context.Background(), "yoq-id", "admin-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
