package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/auth"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

// AuthJWT requires a valid Bearer token, optionally with a specific role.
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			response.Fail(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid Bearer token is present and
// lets the request through either way.
func OptionalAuth(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if strings.HasPrefix(ah, "Bearer ") {
			if claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer ")); err == nil {
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}

// ClaimsFrom returns the parsed token claims, if the request carried any.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get("claims")
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
