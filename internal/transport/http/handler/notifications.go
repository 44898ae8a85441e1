package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

func (h *Handlers) ListNotifications(c *gin.Context) {
	_, isAdmin := viewer(c)
	list, err := h.svc.Notifications(c.Request.Context(), c.Query("userId"), isAdmin)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createNotificationRequest struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Type   string `json:"type"`
}

func (h *Handlers) CreateNotification(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	n, err := h.svc.CreateNotification(c.Request.Context(), req.UserID, req.Title, req.Text, req.Type)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	n, err := h.svc.MarkNotificationRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handlers) MarkAllNotificationsRead(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Fail(c, http.StatusBadRequest, "userId required")
		return
	}
	if err := h.svc.MarkAllNotificationsRead(c.Request.Context(), userID); err != nil {
		response.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
