package service

import (
	"context"
	"fmt"
	"time"

	"alzmate/internal/analysis"
	"alzmate/internal/models"
	"alzmate/internal/repository"

	"go.uber.org/zap"
)

type EmotionService interface {
	Trends(ctx context.Context, patientID string, days int) (*analysis.TrendReport, error)
	DailySummary(ctx context.Context, patientID string, days int) ([]analysis.DailySummary, error)
	WeeklySummary(ctx context.Context, patientID string) (*analysis.WeeklySummary, error)
	Shift(ctx context.Context, patientID, targetEmotion string, days int, minIncrease float64) (*analysis.ShiftResult, error)
	PersistentNegative(ctx context.Context, patientID string, requiredDays int) (*analysis.PersistenceResult, error)
	Volatility(ctx context.Context, patientID string, days int) (*analysis.VolatilityResult, error)
	TrendSummary(ctx context.Context, patientID string, days int) (*analysis.TrendSummaryResult, error)
}

type emotionService struct {
	journalRepo repository.JournalRepository
	notifier    NotificationService
	logger      *zap.Logger
}

func NewEmotionService(journalRepo repository.JournalRepository, notifier NotificationService, logger *zap.Logger) EmotionService {
	return &emotionService{journalRepo: journalRepo, notifier: notifier, logger: logger}
}

// entriesSince fetches entries for the last N days, newest first.
func (s *emotionService) entriesSince(patientID string, days int) ([]models.JournalEntry, time.Time, time.Time, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)
	entries, err := s.journalRepo.GetEntries(patientID, &start, nil, 0)
	if err != nil {
		s.logger.Error("Failed to get journal entries",
			zap.String("patient_id", patientID), zap.Error(err))
		return nil, start, end, fmt.Errorf("failed to get journal entries: %w", err)
	}
	return entries, start, end, nil
}

func (s *emotionService) Trends(ctx context.Context, patientID string, days int) (*analysis.TrendReport, error) {
	entries, start, end, err := s.entriesSince(patientID, days)
	if err != nil {
		return nil, err
	}
	report := analysis.Trends(patientID, days, start, end, entries)
	return &report, nil
}

// DailySummary groups the window's entries into per-day summaries,
// newest day first.
func (s *emotionService) DailySummary(ctx context.Context, patientID string, days int) ([]analysis.DailySummary, error) {
	entries, _, _, err := s.entriesSince(patientID, days)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.JournalEntry)
	var order []string
	for _, e := range entries {
		key := e.Timestamp.Format("2006-01-02")
		if _, seen := byDay[key]; !seen {
			order = append(order, key)
		}
		byDay[key] = append(byDay[key], e)
	}

	summaries := make([]analysis.DailySummary, 0, len(order))
	for _, key := range order {
		date, _ := time.Parse("2006-01-02", key)
		summaries = append(summaries, analysis.Daily(patientID, date, byDay[key]))
	}
	return summaries, nil
}

func (s *emotionService) WeeklySummary(ctx context.Context, patientID string) (*analysis.WeeklySummary, error) {
	entries, start, end, err := s.entriesSince(patientID, 7)
	if err != nil {
		return nil, err
	}
	summary := analysis.Weekly(analysis.Trends(patientID, 7, start, end, entries))
	return &summary, nil
}

func (s *emotionService) Shift(ctx context.Context, patientID, targetEmotion string, days int, minIncrease float64) (*analysis.ShiftResult, error) {
	entries, _, _, err := s.entriesSince(patientID, days)
	if err != nil {
		return nil, err
	}
	result := analysis.DetectShift(targetEmotion, days, minIncrease, entries)
	return &result, nil
}

func (s *emotionService) PersistentNegative(ctx context.Context, patientID string, requiredDays int) (*analysis.PersistenceResult, error) {
	entries, _, _, err := s.entriesSince(patientID, requiredDays)
	if err != nil {
		return nil, err
	}
	result := analysis.PersistentNegative(requiredDays, entries)

	if result.Detected {
		if err := s.notifier.NotifyEmotionAlert(ctx, patientID, result); err != nil {
			s.logger.Error("Failed to send emotion alert",
				zap.String("patient_id", patientID), zap.Error(err))
		}
	}

	return &result, nil
}

func (s *emotionService) Volatility(ctx context.Context, patientID string, days int) (*analysis.VolatilityResult, error) {
	entries, _, _, err := s.entriesSince(patientID, days)
	if err != nil {
		return nil, err
	}
	result := analysis.Volatility(days, entries)
	return &result, nil
}

func (s *emotionService) TrendSummary(ctx context.Context, patientID string, days int) (*analysis.TrendSummaryResult, error) {
	entries, _, _, err := s.entriesSince(patientID, days)
	if err != nil {
		return nil, err
	}
	moodRiskCount := 0
	for _, e := range entries {
		if e.MoodRisk {
			moodRiskCount++
		}
	}
	result := analysis.TrendSummary(patientID, moodRiskCount, entries)
	return &result, nil
}
