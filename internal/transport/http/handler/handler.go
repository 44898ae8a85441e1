// Package handler binds the HTTP surface to the service layer. Bodies
// are entity JSON with the original wire field names; errors map to
// real status codes through the response package.
package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/auth"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/mentor"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/middleware"
)

type Handlers struct {
	svc    *service.Service
	jwt    *auth.JWTer
	mentor *mentor.Client
	log    *zap.Logger
}

func New(svc *service.Service, jwt *auth.JWTer, m *mentor.Client, log *zap.Logger) *Handlers {
	return &Handlers{svc: svc, jwt: jwt, mentor: m, log: log}
}

// actorID resolves who performs an admin action: the token subject when
// one is present, otherwise the explicit actor_id the legacy client
// sends in the query string or body.
func actorID(c *gin.Context, bodyActor string) string {
	if claims, ok := middleware.ClaimsFrom(c); ok {
		return claims.UID
	}
	if bodyActor != "" {
		return bodyActor
	}
	return c.Query("actor_id")
}

// viewer returns the authenticated user id and whether it carries the
// admin role. Unauthenticated requests view as an anonymous non-admin.
func viewer(c *gin.Context) (string, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return "", false
	}
	return claims.UID, claims.Role == "admin"
}
