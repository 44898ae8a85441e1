package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

type registerRequest struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Bio          string   `json:"bio"`
	Avatar       string   `json:"avatar"`
	PortfolioURL string   `json:"portfolio_url"`
	Skills       []string `json:"skills"`
	Languages    []string `json:"languages"`
	Tools        []string `json:"tools"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *Handlers) Register(c *gin.Context) {
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
	token, err := h.jwt.Issue(u.ID, u.Role)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{Token: token, User: u})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	u, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Err(c, err)
		return
	}
	token, err := h.jwt.Issue(u.ID, u.Role)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: u})
}
