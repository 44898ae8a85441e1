package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/auth"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/mentor"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/repo"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/handler"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/router"
)

type testAPI struct {
	engine *gin.Engine
	svc    *service.Service
	jwt    *auth.JWTer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	store := repo.NewMemoryStore()
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "garajhub-test", TTL: time.Hour}
	svc := service.New(store, log, nil)
	h := handler.New(svc, jwter, mentor.New(mentor.Options{}, log), log)
	return &testAPI{engine: router.New(h, jwter, log), svc: svc, jwt: jwter}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, a *testAPI, email string) (id, token string) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "password": "parol", "name": "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var out struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.User.ID, out.Token
}

func TestHealth(t *testing.T) {
	a := newTestAPI(t)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/health", "", nil).Code)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/health", "", nil).Code)
}

func TestRegisterAndLoginStatusCodes(t *testing.T) {
	a := newTestAPI(t)
	registerUser(t, a, "ali@garaj.uz")

	w := a.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "ali@garaj.uz", "password": "x", "name": "Dup",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ali@garaj.uz", "password": "parol",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ali@garaj.uz", "password": "notogri",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "yoq@garaj.uz", "password": "parol",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownUserIs404(t *testing.T) {
	a := newTestAPI(t)
	require.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, "/api/users/yoq-id", "", nil).Code)
}

func TestAdminGate(t *testing.T) {
	a := newTestAPI(t)
	userID, userToken := registerUser(t, a, "oddiy@garaj.uz")
	adminToken, err := a.jwt.Issue("admin-1", "admin")
	require.NoError(t, err)

	// No token.
	w := a.do(t, http.MethodPut, "/api/users/"+userID+"/ban", "", gin.H{"banned": true})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Non-admin token.
	w = a.do(t, http.MethodPut, "/api/users/"+userID+"/ban", userToken, gin.H{"banned": true})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Admin token.
	w = a.do(t, http.MethodPut, "/api/users/"+userID+"/ban", adminToken, gin.H{"banned": true})
	require.Equal(t, http.StatusOK, w.Code)
	var u domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	require.True(t, u.Banned)
}

func TestModerationOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	ownerID, ownerToken := registerUser(t, a, "egasi@garaj.uz")
	adminToken, err := a.jwt.Issue("admin-1", "admin")
	require.NoError(t, err)

	w := a.do(t, http.MethodPost, "/api/startups", ownerToken, gin.H{
		"nomi": "HTTP Lab", "egasi_id": ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var st domain.Startup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	require.Equal(t, domain.StatusPendingAdmin, st.Status)

	// Reject without a reason.
	w = a.do(t, http.MethodPut, "/api/startups/"+st.ID+"/status", adminToken, gin.H{
		"status": "rejected",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Approve.
	w = a.do(t, http.MethodPut, "/api/startups/"+st.ID+"/status", adminToken, gin.H{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	require.Equal(t, domain.StatusApproved, st.Status)

	// Moderation is admin-only.
	w = a.do(t, http.MethodPut, "/api/startups/"+st.ID+"/status", ownerToken, gin.H{
		"status": "approved",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestJoinRequestConflictOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	ctx := context.Background()
	ownerID, ownerToken := registerUser(t, a, "egasi@garaj.uz")
	memberID, memberToken := registerUser(t, a, "azo@garaj.uz")

	w := a.do(t, http.MethodPost, "/api/startups", ownerToken, gin.H{
		"nomi": "Jamoa", "egasi_id": ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var st domain.Startup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))

	w = a.do(t, http.MethodPost, "/api/join-requests", memberToken, gin.H{
		"startup_id": st.ID, "user_id": memberID, "specialty": "Backend",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var jr domain.JoinRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jr))

	w = a.do(t, http.MethodPut, "/api/join-requests/"+jr.ID+"/status", ownerToken, gin.H{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Second resolution conflicts.
	w = a.do(t, http.MethodPut, "/api/join-requests/"+jr.ID+"/status", ownerToken, gin.H{
		"status": "declined",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	got, err := a.svc.Startup(ctx, st.ID)
	require.NoError(t, err)
	require.True(t, got.Team.Contains(memberID))
}

func TestStartupVisibilityOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	ownerID, ownerToken := registerUser(t, a, "egasi@garaj.uz")

	w := a.do(t, http.MethodPost, "/api/startups", ownerToken, gin.H{
		"nomi": "Yashirin", "egasi_id": ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var anon []domain.Startup
	w = a.do(t, http.MethodGet, "/api/startups", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &anon))
	require.Empty(t, anon)

	var owned []domain.Startup
	w = a.do(t, http.MethodGet, "/api/startups", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &owned))
	require.Len(t, owned, 1)
}

func TestDeleteReturnsNoContent(t *testing.T) {
	a := newTestAPI(t)
	userID, _ := registerUser(t, a, "ketadi@garaj.uz")
	adminToken, err := a.jwt.Issue("admin-1", "admin")
	require.NoError(t, err)

	w := a.do(t, http.MethodDelete, "/api/users/"+userID, adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(t, http.MethodDelete, "/api/users/"+userID, adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
