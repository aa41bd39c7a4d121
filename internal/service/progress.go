package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"alzmate/internal/analysis"
	"alzmate/internal/models"
	"alzmate/internal/progress"
	"alzmate/internal/repository"

	"go.uber.org/zap"
)

// WeeklyReport bundles a weekly score with decline and trend findings.
type WeeklyReport struct {
	PatientID        string                 `json:"patient_id"`
	Score            progress.ScoreResult   `json:"score"`
	StateDescription string                 `json:"state_description"`
	Decline          progress.DeclineResult `json:"decline"`
	Trend            string                 `json:"trend"`
	TrendDescription string                 `json:"trend_description"`
	GeneratedAt      time.Time              `json:"generated_at"`
}

// CombinedReport layers emotional findings on top of the weekly report.
type CombinedReport struct {
	WeeklyReport
	EmotionTrends      analysis.TrendReport        `json:"emotion_trends"`
	PersistentNegative analysis.PersistenceResult  `json:"persistent_negative"`
	Volatility         analysis.VolatilityResult   `json:"volatility"`
	EmotionTrend       analysis.TrendSummaryResult `json:"emotion_trend_summary"`
	Risk               analysis.RiskAssessment     `json:"risk_assessment"`
}

type ProgressService interface {
	WeeklyScore(ctx context.Context, patientID string) (*progress.ScoreResult, error)
	DeclineCheck(ctx context.Context, patientID string) (*progress.DeclineResult, error)
	WeeklyReport(ctx context.Context, patientID string) (*WeeklyReport, error)
	CombinedWeeklyReport(ctx context.Context, patientID string) (*CombinedReport, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	taskRepo     repository.TaskRepository
	journalRepo  repository.JournalRepository
	notifier     NotificationService
	logger       *zap.Logger
}

func NewProgressService(progressRepo repository.ProgressRepository, taskRepo repository.TaskRepository,
	journalRepo repository.JournalRepository, notifier NotificationService, logger *zap.Logger) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		taskRepo:     taskRepo,
		journalRepo:  journalRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// WeeklyScore computes the score for the rolling 7-day window ending now.
func (s *progressService) WeeklyScore(ctx context.Context, patientID string) (*progress.ScoreResult, error) {
	weekEnd := time.Now().UTC()
	weekStart := weekEnd.AddDate(0, 0, -7)

	reminders, err := s.taskRepo.GetRemindersForPeriod(patientID, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("Failed to get reminders", zap.String("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	sessions, err := s.taskRepo.GetGameScoresForPeriod(patientID, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("Failed to get game scores", zap.String("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to get game scores: %w", err)
	}

	result := progress.CalculateWeeklyScore(patientID, weekStart, weekEnd, reminders, sessions)
	return &result, nil
}

// DeclineCheck compares the current weekly score against the stored
// baseline, computing and storing the baseline the first time enough
// weeks exist.
func (s *progressService) DeclineCheck(ctx context.Context, patientID string) (*progress.DeclineResult, error) {
	current, err := s.WeeklyScore(ctx, patientID)
	if err != nil {
		return nil, err
	}
	result, err := s.declineFor(patientID, current.Score)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *progressService) declineFor(patientID string, currentScore float64) (*progress.DeclineResult, error) {
	baseline, err := s.baselineFor(patientID)
	if err != nil {
		return nil, err
	}

	var baselineScore float64
	hasBaseline := baseline != nil
	if hasBaseline {
		baselineScore = baseline.Score
	}

	recent, err := s.progressRepo.GetRecentScores(patientID, progress.DeclineConsecutiveWeeks)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent scores: %w", err)
	}
	recentScores := make([]float64, 0, len(recent))
	for _, score := range recent {
		recentScores = append(recentScores, score.Score)
	}

	result := progress.DetectDecline(baselineScore, hasBaseline, currentScore, recentScores)
	return &result, nil
}

// baselineFor returns the stored baseline, computing it from the oldest
// recorded weeks the first time enough of them exist.
func (s *progressService) baselineFor(patientID string) (*models.Baseline, error) {
	baseline, err := s.progressRepo.GetBaseline(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline: %w", err)
	}
	if baseline != nil {
		return baseline, nil
	}

	oldest, err := s.progressRepo.GetOldestScores(patientID, progress.BaselineWeeks)
	if err != nil {
		return nil, fmt.Errorf("failed to get oldest scores: %w", err)
	}
	scores := make([]float64, 0, len(oldest))
	for _, score := range oldest {
		scores = append(scores, score.Score)
	}

	value, ok := progress.Baseline(scores)
	if !ok {
		return nil, nil
	}

	baseline = &models.Baseline{
		PatientID:  patientID,
		Score:      value,
		Weeks:      len(scores),
		ComputedAt: time.Now().UTC(),
	}
	if err := s.progressRepo.SaveBaseline(baseline); err != nil {
		return nil, fmt.Errorf("failed to save baseline: %w", err)
	}
	s.logger.Info("Computed patient baseline",
		zap.String("patient_id", patientID), zap.Float64("baseline", value), zap.Int("weeks", len(scores)))
	return baseline, nil
}

// WeeklyReport computes and persists the weekly score, then derives
// decline and week-over-week trend from the stored history.
func (s *progressService) WeeklyReport(ctx context.Context, patientID string) (*WeeklyReport, error) {
	score, err := s.WeeklyScore(ctx, patientID)
	if err != nil {
		return nil, err
	}

	decline, err := s.declineFor(patientID, score.Score)
	if err != nil {
		return nil, err
	}

	previous, err := s.progressRepo.GetPreviousScore(patientID, score.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous score: %w", err)
	}
	var previousScore *float64
	if previous != nil {
		previousScore = &previous.Score
	}
	trend, trendDescription := progress.WeekTrend(score.Score, previousScore)

	breakdown, err := json.Marshal(score.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to encode breakdown: %w", err)
	}
	record := &models.WeeklyScore{
		PatientID:      patientID,
		WeekStart:      score.WeekStart,
		WeekEnd:        score.WeekEnd,
		Score:          score.Score,
		EarnedPoints:   score.EarnedPoints,
		PossiblePoints: score.PossiblePoints,
		State:          score.State,
		Breakdown:      breakdown,
	}
	if err := s.progressRepo.SaveWeeklyScore(record); err != nil {
		s.logger.Error("Failed to save weekly score", zap.String("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to save weekly score: %w", err)
	}

	if decline.DeclineDetected {
		if err := s.notifier.NotifyDeclineAlert(ctx, patientID, *decline); err != nil {
			s.logger.Error("Failed to send decline alert", zap.String("patient_id", patientID), zap.Error(err))
		}
	}

	return &WeeklyReport{
		PatientID:        patientID,
		Score:            *score,
		StateDescription: progress.StateDescription(score.State),
		Decline:          *decline,
		Trend:            trend,
		TrendDescription: trendDescription,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}

// CombinedWeeklyReport extends the weekly report with the emotional
// picture and a combined risk assessment.
func (s *progressService) CombinedWeeklyReport(ctx context.Context, patientID string) (*CombinedReport, error) {
	report, err := s.WeeklyReport(ctx, patientID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	weekEntries, err := s.journalRepo.GetEntries(patientID, &weekAgo, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	threeDaysAgo := now.AddDate(0, 0, -analysis.DefaultPersistentDays)
	recentEntries, err := s.journalRepo.GetEntries(patientID, &threeDaysAgo, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	moodRiskCount := 0
	for _, e := range weekEntries {
		if e.MoodRisk {
			moodRiskCount++
		}
	}

	combined := &CombinedReport{
		WeeklyReport:       *report,
		EmotionTrends:      analysis.Trends(patientID, 7, weekAgo, now, weekEntries),
		PersistentNegative: analysis.PersistentNegative(analysis.DefaultPersistentDays, recentEntries),
		Volatility:         analysis.Volatility(7, weekEntries),
		EmotionTrend:       analysis.TrendSummary(patientID, moodRiskCount, weekEntries),
	}
	combined.Risk = analysis.AssessCombinedRisk(
		report.Score.State,
		report.Decline.DeclineDetected,
		combined.PersistentNegative.Detected,
		combined.EmotionTrend.Trend,
	)

	if combined.Risk.CombinedRiskLevel == analysis.RiskHigh || combined.Risk.CombinedRiskLevel == analysis.RiskCritical {
		if err := s.notifier.NotifyCombinedRisk(ctx, patientID, combined.Risk); err != nil {
			s.logger.Error("Failed to send combined risk alert", zap.String("patient_id", patientID), zap.Error(err))
		}
	}

	return combined, nil
}
