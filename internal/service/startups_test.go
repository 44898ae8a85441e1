package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
)

func TestCreateStartupForcesPending(t *testing.T) {
	svc, _ := newTestService(t)
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")

	st, err := svc.CreateStartup(context.Background(), &domain.Startup{
		Name:            "Hiyla",
		OwnerID:         owner.ID,
		Status:          domain.StatusApproved, // client cannot pick its own status
		RejectionReason: "eski sabab",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPendingAdmin, st.Status)
	require.Empty(t, st.RejectionReason)
}

func TestCreateStartupSeedsFounder(t *testing.T) {
	svc, _ := newTestService(t)
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")

	st, err := svc.CreateStartup(context.Background(), &domain.Startup{
		Name:    "Asos",
		OwnerID: owner.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "Egasi", st.OwnerName)
	require.Len(t, st.Team, 1)
	require.Equal(t, owner.ID, st.Team[0].UserID)
	require.Equal(t, "Asoschi", st.Team[0].Role)
}

func TestCreateStartupDedupesClientRoster(t *testing.T) {
	svc, _ := newTestService(t)
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	member := mustRegister(t, svc, "azo@garaj.uz", "Azo")

	st, err := svc.CreateStartup(context.Background(), &domain.Startup{
		Name:    "Takror",
		OwnerID: owner.ID,
		Team: domain.Roster{
			{UserID: owner.ID, Name: "Egasi", Role: "Asoschi"},
			{UserID: member.ID, Name: "Azo", Role: "Backend"},
			{UserID: member.ID, Name: "Azo 2", Role: "Frontend"},
		},
	})
	require.NoError(t, err)
	require.Len(t, st.Team, 2)
	for _, m := range st.Team {
		if m.UserID == member.ID {
			require.Equal(t, "Backend", m.Role) // first occurrence wins
		}
	}
}

func TestListStartupsVisibility(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	member := mustRegister(t, svc, "azo@garaj.uz", "Azo")
	stranger := mustRegister(t, svc, "begona@garaj.uz", "Begona")

	visible := mustCreateStartup(t, svc, owner, "Ochiq")
	hidden := mustCreateStartup(t, svc, owner, "Yashirin")
	_, err := svc.Moderate(ctx, visible.ID, domain.StatusApproved, "", "admin-1")
	require.NoError(t, err)

	jr := mustJoinRequest(t, svc, hidden, member, "Backend")
	_, err = svc.AcceptJoinRequest(ctx, jr.ID)
	require.NoError(t, err)

	names := func(list []domain.Startup) []string {
		out := make([]string, 0, len(list))
		for _, s := range list {
			out = append(out, s.Name)
		}
		return out
	}

	anon, err := svc.ListStartups(ctx, "", false)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Ochiq"}, names(anon))

	asStranger, err := svc.ListStartups(ctx, stranger.ID, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Ochiq"}, names(asStranger))

	asOwner, err := svc.ListStartups(ctx, owner.ID, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Ochiq", "Yashirin"}, names(asOwner))

	asMember, err := svc.ListStartups(ctx, member.ID, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Ochiq", "Yashirin"}, names(asMember))

	asAdmin, err := svc.ListStartups(ctx, "anybody", true)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Ochiq", "Yashirin"}, names(asAdmin))
}

func TestUpdateStartupPartial(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := mustRegister(t, svc, "egasi@garaj.uz", "Egasi")
	st := mustCreateStartup(t, svc, owner, "Tahrir")

	desc := "yangilangan tavsif"
	views := 7
	got, err := svc.UpdateStartup(ctx, st.ID, service.UpdateStartupInput{
		Description: &desc,
		Views:       &views,
	})
	require.NoError(t, err)
	require.Equal(t, "Tahrir", got.Name) // untouched
	require.Equal(t, desc, got.Description)
	require.Equal(t, 7, got.Views)

	empty := "  "
	_, err = svc.UpdateStartup(ctx, st.ID, service.UpdateStartupInput{Name: &empty})
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
}
