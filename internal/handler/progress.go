package handler

import (
	"net/http"

	"alzmate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProgressHandler interface {
	WeeklyScore(c *gin.Context)
	WeeklyReport(c *gin.Context)
	DeclineCheck(c *gin.Context)
	CombinedReport(c *gin.Context)
}

type progressHandler struct {
	progressService service.ProgressService
	log             *logrus.Logger
}

func NewProgressHandler(progressService service.ProgressService, log *logrus.Logger) ProgressHandler {
	return &progressHandler{progressService: progressService, log: log}
}

func (h *progressHandler) WeeklyScore(c *gin.Context) {
	patientID := c.Param("patient_id")

	result, err := h.progressService.WeeklyScore(c.Request.Context(), patientID)
	if err != nil {
		h.log.Errorf("Failed to compute weekly score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute weekly score"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *progressHandler) WeeklyReport(c *gin.Context) {
	patientID := c.Param("patient_id")

	report, err := h.progressService.WeeklyReport(c.Request.Context(), patientID)
	if err != nil {
		h.log.Errorf("Failed to build weekly report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build weekly report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *progressHandler) DeclineCheck(c *gin.Context) {
	patientID := c.Param("patient_id")

	result, err := h.progressService.DeclineCheck(c.Request.Context(), patientID)
	if err != nil {
		h.log.Errorf("Failed to check for decline: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for decline"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *progressHandler) CombinedReport(c *gin.Context) {
	patientID := c.Param("patient_id")

	report, err := h.progressService.CombinedWeeklyReport(c.Request.Context(), patientID)
	if err != nil {
		h.log.Errorf("Failed to build combined report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build combined report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
