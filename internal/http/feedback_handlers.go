package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/givehub/backend/internal/domain"
)

type feedbackReq struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Tags feedback
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body feedbackReq true "feedback"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/feedback [post]
//
// The author is taken from the authenticated principal, never from the
// payload, and the status always starts pending.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var in feedbackReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(in.Message) == "" {
		fail(c, http.StatusBadRequest, "message is required")
		return
	}
	if !domain.ValidFeedbackCategory(in.Category) {
		fail(c, http.StatusBadRequest, "unknown feedback category")
		return
	}

	p := currentPrincipal(c)
	f := &domain.Feedback{
		DonorID:  p.ID,
		Message:  strings.TrimSpace(in.Message),
		Category: in.Category,
		Status:   domain.FeedbackPending,
	}
	if err := h.Store.CreateFeedback(c.Request.Context(), f); err != nil {
		failInternal(c, "create feedback", err)
		return
	}
	h.notify(c, domain.NotifFeedback, "New feedback", p.Name+" submitted "+in.Category+" feedback")
	ok(c, http.StatusCreated, gin.H{"feedback": f})
}

func (h *Handler) MyFeedback(c *gin.Context) {
	p := currentPrincipal(c)
	fb, err := h.Store.ListFeedbackByDonor(c.Request.Context(), p.ID)
	if err != nil {
		failInternal(c, "list feedback", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"results": len(fb), "feedback": fb})
}

func (h *Handler) AdminListFeedback(c *gin.Context) {
	fb, err := h.Store.ListFeedback(c.Request.Context())
	if err != nil {
		failInternal(c, "list feedback", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"results": len(fb), "feedback": fb})
}

type feedbackStatusReq struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateFeedbackStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid feedback id")
		return
	}
	var in feedbackStatusReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Status == "" {
		fail(c, http.StatusBadRequest, "status is required")
		return
	}
	if !domain.ValidFeedbackStatus(in.Status) {
		fail(c, http.StatusBadRequest, "unknown feedback status")
		return
	}
	f, err := h.Store.UpdateFeedbackStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		failInternal(c, "update feedback", err)
		return
	}
	if f == nil {
		fail(c, http.StatusNotFound, "feedback not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"feedback": f})
}
