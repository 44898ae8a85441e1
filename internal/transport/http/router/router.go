// Package router assembles the gin engine: middleware chain, public
// API routes and the admin-gated group.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/auth"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/core/server"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/handler"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/middleware"
)

const (
	maxBodyBytes   = int64(16 << 20)
	requestTimeout = 30 * time.Second
	rateLimitRPS   = rate.Limit(50)
	rateLimitBurst = 100
	maxInFlight    = int64(512)
)

// New wires the full HTTP surface. The admin group requires a JWT with
// role=admin; everything else accepts an optional token for viewer
// attribution.
func New(h *handler.Handlers, jwt *auth.JWTer, log *zap.Logger) *gin.Engine {
	e := server.NewEngine(log)

	e.Use(
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.AccessLog(log),
		middleware.RateLimitPerIP(rateLimitRPS, rateLimitBurst),
		middleware.ConcurrencyLimit(maxInFlight),
		middleware.MaxBodyBytes(maxBodyBytes),
		middleware.Timeout(requestTimeout),
	)

	e.GET("/health", h.Health)
	e.GET("/api/health", h.Health)
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := e.Group("/api", middleware.OptionalAuth(jwt))
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/stats", h.Stats)

		api.GET("/users", h.ListUsers)
		api.GET("/users/by-email", h.GetUserByEmail)
		api.GET("/users/:id", h.GetUser)
		api.POST("/users", h.CreateUser)
		api.PUT("/users/:id", h.UpdateUser)

		api.GET("/startups", h.ListStartups)
		api.GET("/startups/:id", h.GetStartup)
		api.POST("/startups", h.CreateStartup)
		api.PUT("/startups/:id", h.UpdateStartup)
		api.DELETE("/startups/:id", h.DeleteStartup)

		api.GET("/join-requests", h.ListJoinRequests)
		api.POST("/join-requests", h.CreateJoinRequest)
		api.PUT("/join-requests/:id/status", h.SetJoinRequestStatus)
		api.DELETE("/join-requests/:id", h.DeleteJoinRequest)

		api.GET("/notifications", h.ListNotifications)
		api.POST("/notifications", h.CreateNotification)
		api.PUT("/notifications/mark-all-read", h.MarkAllNotificationsRead)
		api.PUT("/notifications/:id/read", h.MarkNotificationRead)

		api.POST("/tasks", h.CreateTask)
		api.GET("/tasks", h.ListTasks)
		api.PUT("/tasks/:id/status", h.SetTaskStatus)
		api.DELETE("/tasks/:id", h.DeleteTask)

		api.GET("/categories", h.ListCategories)

		api.POST("/mentor/chat", h.MentorChat)
	}

	admin := e.Group("/api", middleware.AuthJWT(jwt, domain.RoleAdmin))
	{
		admin.PUT("/users/:id/role", h.SetUserRole)
		admin.PUT("/users/:id/ban", h.SetUserBanned)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.PUT("/startups/:id/status", h.SetStartupStatus)

		admin.POST("/categories", h.CreateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/audit-logs", h.AuditLogs)
		admin.POST("/join-requests/purge-resolved", h.PurgeResolvedRequests)
	}

	return e
}
