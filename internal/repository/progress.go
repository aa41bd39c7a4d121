package repository

import (
	"database/sql"
	"errors"
	"time"

	"alzmate/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type ProgressRepository interface {
	SaveWeeklyScore(score *models.WeeklyScore) error
	GetOldestScores(patientID string, limit int) ([]models.WeeklyScore, error)
	GetRecentScores(patientID string, limit int) ([]models.WeeklyScore, error)
	GetPreviousScore(patientID string, before time.Time) (*models.WeeklyScore, error)
	SaveBaseline(baseline *models.Baseline) error
	GetBaseline(patientID string) (*models.Baseline, error)
}

type progressRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProgressRepository(db *sqlx.DB, logger *zap.Logger) ProgressRepository {
	return &progressRepository{db: db, logger: logger}
}

func (r *progressRepository) SaveWeeklyScore(score *models.WeeklyScore) error {
	query := `INSERT INTO progress_scores (patient_id, week_start, week_end, score, earned_points, possible_points, state, breakdown)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	return r.db.QueryRowx(query,
		score.PatientID, score.WeekStart, score.WeekEnd, score.Score,
		score.EarnedPoints, score.PossiblePoints, score.State, score.Breakdown,
	).Scan(&score.ID, &score.CreatedAt)
}

func (r *progressRepository) GetOldestScores(patientID string, limit int) ([]models.WeeklyScore, error) {
	var scores []models.WeeklyScore
	query := `SELECT id, patient_id, week_start, week_end, score, earned_points, possible_points, state, breakdown, created_at
		FROM progress_scores WHERE patient_id = $1 ORDER BY week_start ASC LIMIT $2`
	err := r.db.Select(&scores, query, patientID, limit)
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *progressRepository) GetRecentScores(patientID string, limit int) ([]models.WeeklyScore, error) {
	var scores []models.WeeklyScore
	query := `SELECT id, patient_id, week_start, week_end, score, earned_points, possible_points, state, breakdown, created_at
		FROM progress_scores WHERE patient_id = $1 ORDER BY week_start DESC LIMIT $2`
	err := r.db.Select(&scores, query, patientID, limit)
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// GetPreviousScore returns the most recent score whose week started
// before the given time.
func (r *progressRepository) GetPreviousScore(patientID string, before time.Time) (*models.WeeklyScore, error) {
	var score models.WeeklyScore
	query := `SELECT id, patient_id, week_start, week_end, score, earned_points, possible_points, state, breakdown, created_at
		FROM progress_scores WHERE patient_id = $1 AND week_start < $2 ORDER BY week_start DESC LIMIT 1`
	err := r.db.Get(&score, query, patientID, before)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No previous week recorded
		}
		return nil, err
	}
	return &score, nil
}

func (r *progressRepository) SaveBaseline(baseline *models.Baseline) error {
	query := `INSERT INTO progress_baselines (patient_id, score, weeks, computed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (patient_id) DO UPDATE SET score = $2, weeks = $3, computed_at = $4
		RETURNING id`
	return r.db.QueryRowx(query, baseline.PatientID, baseline.Score, baseline.Weeks, baseline.ComputedAt).
		Scan(&baseline.ID)
}

func (r *progressRepository) GetBaseline(patientID string) (*models.Baseline, error) {
	var baseline models.Baseline
	query := `SELECT id, patient_id, score, weeks, computed_at FROM progress_baselines WHERE patient_id = $1`
	err := r.db.Get(&baseline, query, patientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No baseline yet
		}
		return nil, err
	}
	return &baseline, nil
}
