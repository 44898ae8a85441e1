package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

func (h *Handlers) ListStartups(c *gin.Context) {
	viewerID, isAdmin := viewer(c)
	list, err := h.svc.ListStartups(c.Request.Context(), viewerID, isAdmin)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handlers) GetStartup(c *gin.Context) {
	st, err := h.svc.Startup(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handlers) CreateStartup(c *gin.Context) {
	var st domain.Startup
	if err := c.ShouldBindJSON(&st); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	created, err := h.svc.CreateStartup(c.Request.Context(), &st)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type updateStartupRequest struct {
	Name        *string  `json:"nomi"`
	Description *string  `json:"tavsif"`
	Category    *string  `json:"category"`
	WantedRoles []string `json:"kerakli_mutaxassislar"`
	Logo        *string  `json:"logo"`
	GithubURL   *string  `json:"github_url"`
	WebsiteURL  *string  `json:"website_url"`
	Views       *int     `json:"views"`
}

func (h *Handlers) UpdateStartup(c *gin.Context) {
	var req updateStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	st, err := h.svc.UpdateStartup(c.Request.Context(), c.Param("id"), service.UpdateStartupInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		WantedRoles: req.WantedRoles,
		Logo:        req.Logo,
		GithubURL:   req.GithubURL,
		WebsiteURL:  req.WebsiteURL,
		Views:       req.Views,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

type moderateRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
	ActorID         string `json:"actor_id"`
}

func (h *Handlers) SetStartupStatus(c *gin.Context) {
	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		response.Fail(c, http.StatusBadRequest, "status required")
		return
	}
	st, err := h.svc.Moderate(c.Request.Context(), c.Param("id"), req.Status, req.RejectionReason, actorID(c, req.ActorID))
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handlers) DeleteStartup(c *gin.Context) {
	if err := h.svc.DeleteStartup(c.Request.Context(), c.Param("id"), actorID(c, "")); err != nil {
		response.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
