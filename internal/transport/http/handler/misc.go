package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/mentor"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handlers) Stats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) AuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	list, err := h.svc.AuditLogs(c.Request.Context(), limit)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type mentorChatRequest struct {
	Prompt  string           `json:"prompt"`
	History []mentor.Message `json:"history"`
}

// MentorChat proxies the prompt to the AI mentor. The client always
// gets a reply; upstream failures degrade to the fixed fallback text.
func (h *Handlers) MentorChat(c *gin.Context) {
	var req mentorChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		response.Fail(c, http.StatusBadRequest, "prompt required")
		return
	}
	reply := h.mentor.Reply(c.Request.Context(), req.History, req.Prompt)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
