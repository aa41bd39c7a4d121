package handler

import (
	"net/http"
	"strconv"
	"time"

	"alzmate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxAudioSize = 25 << 20 // 25 MB

type JournalHandler interface {
	Analyze(c *gin.Context)
	AnalyzeAudio(c *gin.Context)
	Entries(c *gin.Context)
}

type journalHandler struct {
	journalService service.JournalService
	log            *logrus.Logger
}

func NewJournalHandler(journalService service.JournalService, log *logrus.Logger) JournalHandler {
	return &journalHandler{journalService: journalService, log: log}
}

type AnalyzeRequest struct {
	PatientID string     `json:"patient_id" binding:"required"`
	Text      string     `json:"text" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
}

func (h *journalHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for journal analysis: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalService.Analyze(c.Request.Context(), service.AnalyzeInput{
		PatientID: req.PatientID,
		Text:      req.Text,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		h.log.Errorf("Failed to analyze journal entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze journal entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// AnalyzeAudio accepts a multipart form with text fields and an optional
// audio file attached to the resulting entry.
func (h *journalHandler) AnalyzeAudio(c *gin.Context) {
	patientID := c.PostForm("patient_id")
	text := c.PostForm("text")
	if patientID == "" || text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id and text are required"})
		return
	}

	var timestamp *time.Time
	if raw := c.PostForm("timestamp"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timestamp must be RFC3339"})
			return
		}
		timestamp = &parsed
	}

	input := service.AnalyzeInput{
		PatientID: patientID,
		Text:      text,
		Timestamp: timestamp,
	}

	fileHeader, err := c.FormFile("audio")
	if err == nil {
		if fileHeader.Size > maxAudioSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "audio file too large"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.log.Errorf("Failed to open uploaded audio: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio file"})
			return
		}
		defer file.Close()
		input.Audio = file
		input.AudioFilename = fileHeader.Filename
	}

	entry, err := h.journalService.Analyze(c.Request.Context(), input)
	if err != nil {
		h.log.Errorf("Failed to analyze journal entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze journal entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *journalHandler) Entries(c *gin.Context) {
	patientID := c.Param("patient_id")

	var start, end *time.Time
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC3339"})
			return
		}
		start = &parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC3339"})
			return
		}
		end = &parsed
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.journalService.Entries(c.Request.Context(), patientID, start, end, limit)
	if err != nil {
		h.log.Errorf("Failed to get journal entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get journal entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patient_id": patientID,
		"count":      len(entries),
		"entries":    entries,
	})
}
