package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/givehub/backend/internal/domain"
)

func (h *Handler) ListNotifications(c *gin.Context) {
	typ := c.Query("type")
	if typ != "" && !domain.ValidNotifType(typ) {
		fail(c, http.StatusBadRequest, "unknown notification type")
		return
	}
	ns, err := h.Store.ListNotifications(c.Request.Context(), typ)
	if err != nil {
		failInternal(c, "list notifications", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"results": len(ns), "notifications": ns})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid notification id")
		return
	}
	found, err := h.Store.MarkNotificationRead(c.Request.Context(), id)
	if err != nil {
		failInternal(c, "mark notification", err)
		return
	}
	if !found {
		fail(c, http.StatusNotFound, "notification not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "notification marked read"})
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	n, err := h.Store.MarkAllNotificationsRead(c.Request.Context())
	if err != nil {
		failInternal(c, "mark notifications", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"updated": n})
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid notification id")
		return
	}
	deleted, err := h.Store.DeleteNotification(c.Request.Context(), id)
	if err != nil {
		failInternal(c, "delete notification", err)
		return
	}
	if !deleted {
		fail(c, http.StatusNotFound, "notification not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "notification removed"})
}
