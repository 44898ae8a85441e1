package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

func (h *Handlers) CreateTask(c *gin.Context) {
	var t domain.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	created, err := h.svc.CreateTask(c.Request.Context(), &t)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handlers) ListTasks(c *gin.Context) {
	startupID := c.Query("startupId")
	if startupID == "" {
		startupID = c.Query("startup_id")
	}
	if startupID == "" {
		response.Fail(c, http.StatusBadRequest, "startupId required")
		return
	}
	list, err := h.svc.TasksForStartup(c.Request.Context(), startupID)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type setTaskStatus struct {
	Status string `json:"status"`
}

func (h *Handlers) SetTaskStatus(c *gin.Context) {
	var req setTaskStatus
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		response.Fail(c, http.StatusBadRequest, "status required")
		return
	}
	t, err := h.svc.SetTaskStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handlers) DeleteTask(c *gin.Context) {
	if err := h.svc.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		response.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
