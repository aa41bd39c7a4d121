package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"alzmate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type NotificationHandler interface {
	List(c *gin.Context)
	MarkRead(c *gin.Context)
}

type notificationHandler struct {
	notificationService service.NotificationService
	log                 *logrus.Logger
}

func NewNotificationHandler(notificationService service.NotificationService, log *logrus.Logger) NotificationHandler {
	return &notificationHandler{notificationService: notificationService, log: log}
}

func (h *notificationHandler) List(c *gin.Context) {
	recipientID := c.MustGet("username").(string)
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notificationService.List(c.Request.Context(), recipientID, unreadOnly)
	if err != nil {
		h.log.Errorf("Failed to list notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

func (h *notificationHandler) MarkRead(c *gin.Context) {
	recipientID := c.MustGet("username").(string)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, recipientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		h.log.Errorf("Failed to mark notification read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
