package handler

import (
	"net/http"
	"strconv"

	"alzmate/internal/analysis"
	"alzmate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type EmotionHandler interface {
	Trends(c *gin.Context)
	DailySummary(c *gin.Context)
	WeeklySummary(c *gin.Context)
	Shift(c *gin.Context)
	PersistentNegative(c *gin.Context)
	Volatility(c *gin.Context)
	TrendSummary(c *gin.Context)
}

type emotionHandler struct {
	emotionService service.EmotionService
	log            *logrus.Logger
}

func NewEmotionHandler(emotionService service.EmotionService, log *logrus.Logger) EmotionHandler {
	return &emotionHandler{emotionService: emotionService, log: log}
}

// daysParam reads the ?days= query parameter, clamped to [1, 365].
func daysParam(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return fallback, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer between 1 and 365"})
		return 0, false
	}
	return days, true
}

func (h *emotionHandler) Trends(c *gin.Context) {
	patientID := c.Param("patient_id")
	days, ok := daysParam(c, 7)
	if !ok {
		return
	}

	report, err := h.emotionService.Trends(c.Request.Context(), patientID, days)
	if err != nil {
		h.log.Errorf("Failed to get emotion trends: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get emotion trends"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *emotionHandler) DailySummary(c *gin.Context) {
	patientID := c.Param("patient_id")
	days, ok := daysParam(c, 7)
	if !ok {
		return
	}

	summary, err := h.emotionService.DailySummary(c.Request.Context(), patientID, days)
	if err != nil {
		h.log.Errorf("Failed to get daily summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get daily summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patient_id":  patientID,
		"period_days": days,
		"daily":       summary,
	})
}

func (h *emotionHandler) WeeklySummary(c *gin.Context) {
	patientID := c.Param("patient_id")

	summary, err := h.emotionService.WeeklySummary(c.Request.Context(), patientID)
	if err != nil {
		h.log.Errorf("Failed to get weekly summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get weekly summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *emotionHandler) Shift(c *gin.Context) {
	patientID := c.Param("patient_id")
	targetEmotion := c.Query("emotion")
	if targetEmotion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emotion query parameter is required"})
		return
	}
	days, ok := daysParam(c, 7)
	if !ok {
		return
	}

	minIncrease := analysis.DefaultShiftIncrease
	if raw := c.Query("min_increase"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_increase must be a positive number"})
			return
		}
		minIncrease = parsed
	}

	result, err := h.emotionService.Shift(c.Request.Context(), patientID, targetEmotion, days, minIncrease)
	if err != nil {
		h.log.Errorf("Failed to detect emotion shift: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detect emotion shift"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *emotionHandler) PersistentNegative(c *gin.Context) {
	patientID := c.Param("patient_id")
	days, ok := daysParam(c, analysis.DefaultPersistentDays)
	if !ok {
		return
	}

	result, err := h.emotionService.PersistentNegative(c.Request.Context(), patientID, days)
	if err != nil {
		h.log.Errorf("Failed to check persistent negative emotions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check persistent negative emotions"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *emotionHandler) Volatility(c *gin.Context) {
	patientID := c.Param("patient_id")
	days, ok := daysParam(c, 7)
	if !ok {
		return
	}

	result, err := h.emotionService.Volatility(c.Request.Context(), patientID, days)
	if err != nil {
		h.log.Errorf("Failed to compute emotional volatility: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute emotional volatility"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *emotionHandler) TrendSummary(c *gin.Context) {
	patientID := c.Param("patient_id")
	days, ok := daysParam(c, 7)
	if !ok {
		return
	}

	result, err := h.emotionService.TrendSummary(c.Request.Context(), patientID, days)
	if err != nil {
		h.log.Errorf("Failed to summarize emotion trend: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize emotion trend"})
		return
	}

	c.JSON(http.StatusOK, result)
}
