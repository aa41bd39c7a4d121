package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"alzmate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TaskHandler interface {
	CreateReminder(c *gin.Context)
	CompleteReminder(c *gin.Context)
	MissReminder(c *gin.Context)
	RecordGameScore(c *gin.Context)
}

type taskHandler struct {
	taskService service.TaskService
	log         *logrus.Logger
}

func NewTaskHandler(taskService service.TaskService, log *logrus.Logger) TaskHandler {
	return &taskHandler{taskService: taskService, log: log}
}

type CreateReminderRequest struct {
	PatientID   string    `json:"patient_id" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type RecordGameScoreRequest struct {
	PatientID string     `json:"patient_id" binding:"required"`
	Game      string     `json:"game" binding:"required"`
	Score     *int       `json:"score" binding:"required"`
	PlayedAt  *time.Time `json:"played_at"`
}

func (h *taskHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for reminder: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.taskService.CreateReminder(c.Request.Context(), req.PatientID, req.Type, req.Title, req.ScheduledAt)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTaskType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to create reminder: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

func reminderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func (h *taskHandler) CompleteReminder(c *gin.Context) {
	id, ok := reminderID(c)
	if !ok {
		return
	}

	reminder, err := h.taskService.CompleteReminder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to complete reminder: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete reminder"})
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (h *taskHandler) MissReminder(c *gin.Context) {
	id, ok := reminderID(c)
	if !ok {
		return
	}

	reminder, err := h.taskService.MissReminder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to mark reminder missed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark reminder missed"})
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (h *taskHandler) RecordGameScore(c *gin.Context) {
	var req RecordGameScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for game score: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playedAt := time.Now().UTC()
	if req.PlayedAt != nil {
		playedAt = *req.PlayedAt
	}

	record, err := h.taskService.RecordGameScore(c.Request.Context(), req.PatientID, req.Game, *req.Score, playedAt)
	if err != nil {
		h.log.Errorf("Failed to record game score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record game score"})
		return
	}

	c.JSON(http.StatusCreated, record)
}
