package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

func (h *Handlers) ListCategories(c *gin.Context) {
	list, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createCategoryRequest struct {
	Name    string `json:"name"`
	ActorID string `json:"actor_id"`
}

func (h *Handlers) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	cat, err := h.svc.CreateCategory(c.Request.Context(), req.Name, actorID(c, req.ActorID))
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), uint(id), actorID(c, "")); err != nil {
		response.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
