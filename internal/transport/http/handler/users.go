package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handlers) GetUser(c *gin.Context) {
	u, err := h.svc.User(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handlers) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Fail(c, http.StatusBadRequest, "email required")
		return
	}
	u, err := h.svc.UserByEmail(c.Request.Context(), email)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// CreateUser is the legacy client's direct user insert; it shares the
// register path but returns only the entity, no token.
func (h *Handlers) CreateUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	u, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		ID:           req.ID,
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Phone:        req.Phone,
		Bio:          req.Bio,
		Avatar:       req.Avatar,
		PortfolioURL: req.PortfolioURL,
		Skills:       req.Skills,
		Languages:    req.Languages,
		Tools:        req.Tools,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

type updateUserRequest struct {
	Name         *string  `json:"name"`
	Phone        *string  `json:"phone"`
	Password     *string  `json:"password"`
	Bio          *string  `json:"bio"`
	Avatar       *string  `json:"avatar"`
	PortfolioURL *string  `json:"portfolio_url"`
	Skills       []string `json:"skills"`
	Languages    []string `json:"languages"`
	Tools        []string `json:"tools"`
}

func (h *Handlers) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	u, err := h.svc.UpdateProfile(c.Request.Context(), c.Param("id"), service.UpdateProfileInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Password:     req.Password,
		Bio:          req.Bio,
		Avatar:       req.Avatar,
		PortfolioURL: req.PortfolioURL,
		Skills:       req.Skills,
		Languages:    req.Languages,
		Tools:        req.Tools,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type setRoleRequest struct {
	Role    string `json:"role"`
	ActorID string `json:"actor_id"`
}

func (h *Handlers) SetUserRole(c *gin.Context) {
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
		response.Fail(c, http.StatusBadRequest, "role required")
		return
	}
	u, err := h.svc.SetUserRole(c.Request.Context(), c.Param("id"), req.Role, actorID(c, req.ActorID))
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type setBanRequest struct {
	Banned  bool   `json:"banned"`
	ActorID string `json:"actor_id"`
}

func (h *Handlers) SetUserBanned(c *gin.Context) {
	var req setBanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	u, err := h.svc.SetUserBanned(c.Request.Context(), c.Param("id"), req.Banned, actorID(c, req.ActorID))
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	if err := h.svc.DeleteUser(c.Request.Context(), c.Param("id"), actorID(c, "")); err != nil {
		response.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
