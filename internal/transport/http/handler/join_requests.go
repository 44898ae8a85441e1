package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/service"
	"github.com/Mamatov-cmd/GarajHub---sayt/internal/transport/http/response"
)

func (h *Handlers) ListJoinRequests(c *gin.Context) {
	f := domain.RequestFilter{
		Status:    c.Query("status"),
		StartupID: c.Query("startup_id"),
		UserID:    c.Query("user_id"),
	}
	list, err := h.svc.ListJoinRequests(c.Request.Context(), f)
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createJoinRequest struct {
	ID        string `json:"id"`
	StartupID string `json:"startup_id"`
	UserID    string `json:"user_id"`
	Specialty string `json:"specialty"`
	Comment   string `json:"comment"`
}

func (h *Handlers) CreateJoinRequest(c *gin.Context) {
	var req createJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}
	jr, err := h.svc.CreateJoinRequest(c.Request.Context(), service.CreateJoinRequestInput{
		ID:        req.ID,
		StartupID: req.StartupID,
		UserID:    req.UserID,
		Specialty: req.Specialty,
		Comment:   req.Comment,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, jr)
}

type setRequestStatus struct {
	Status string `json:"status"`
}

// SetJoinRequestStatus routes the two resolutions; anything other than
// accepted/declined is refused.
func (h *Handlers) SetJoinRequestStatus(c *gin.Context) {
	var req setRequestStatus
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		response.Fail(c, http.StatusBadRequest, "status required")
		return
	}
	var (
		jr  *domain.JoinRequest
		err error
	)
	switch req.Status {
	case domain.RequestAccepted:
		jr, err = h.svc.AcceptJoinRequest(c.Request.Context(), c.Param("id"))
	case domain.RequestDeclined:
		jr, err = h.svc.DeclineJoinRequest(c.Request.Context(), c.Param("id"))
	default:
		response.Fail(c, http.StatusBadRequest, "status must be accepted or declined")
		return
	}
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, jr)
}

func (h *Handlers) DeleteJoinRequest(c *gin.Context) {
	if err := h.svc.DeleteJoinRequest(c.Request.Context(), c.Param("id")); err != nil {
		response.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) PurgeResolvedRequests(c *gin.Context) {
	n, err := h.svc.PurgeResolvedRequests(c.Request.Context(), actorID(c, ""))
	if err != nil {
		response.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purged": n})
}
