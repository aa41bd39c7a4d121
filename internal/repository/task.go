package repository

import (
	"database/sql"
	"errors"
	"time"

	"alzmate/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type TaskRepository interface {
	CreateReminder(reminder *models.Reminder) error
	GetReminderByID(id int64) (*models.Reminder, error)
	MarkReminderCompleted(id int64, completedAt time.Time) error
	MarkReminderMissed(id int64) error
	GetRemindersForPeriod(patientID string, start, end time.Time) ([]models.Reminder, error)
	CreateGameScore(score *models.GameScore) error
	GetGameScoresForPeriod(patientID string, start, end time.Time) ([]models.GameScore, error)
}

type taskRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTaskRepository(db *sqlx.DB, logger *zap.Logger) TaskRepository {
	return &taskRepository{db: db, logger: logger}
}

func (r *taskRepository) CreateReminder(reminder *models.Reminder) error {
	query := `INSERT INTO reminders (patient_id, type, title, scheduled_at) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return r.db.QueryRowx(query, reminder.PatientID, reminder.Type, reminder.Title, reminder.ScheduledAt).
		Scan(&reminder.ID, &reminder.CreatedAt)
}

func (r *taskRepository) GetReminderByID(id int64) (*models.Reminder, error) {
	var reminder models.Reminder
	query := `SELECT id, patient_id, type, title, scheduled_at, is_completed, is_missed, completed_at, created_at
		FROM reminders WHERE id = $1`
	err := r.db.Get(&reminder, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Reminder not found
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *taskRepository) MarkReminderCompleted(id int64, completedAt time.Time) error {
	query := `UPDATE reminders SET is_completed = TRUE, is_missed = FALSE, completed_at = $1 WHERE id = $2`
	_, err := r.db.Exec(query, completedAt, id)
	return err
}

func (r *taskRepository) MarkReminderMissed(id int64) error {
	query := `UPDATE reminders SET is_missed = TRUE, is_completed = FALSE, completed_at = NULL WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *taskRepository) GetRemindersForPeriod(patientID string, start, end time.Time) ([]models.Reminder, error) {
	var reminders []models.Reminder
	query := `SELECT id, patient_id, type, title, scheduled_at, is_completed, is_missed, completed_at, created_at
		FROM reminders WHERE patient_id = $1 AND scheduled_at >= $2 AND scheduled_at <= $3
		ORDER BY scheduled_at`
	err := r.db.Select(&reminders, query, patientID, start, end)
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *taskRepository) CreateGameScore(score *models.GameScore) error {
	query := `INSERT INTO game_scores (patient_id, game, score, played_at) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return r.db.QueryRowx(query, score.PatientID, score.Game, score.Score, score.PlayedAt).
		Scan(&score.ID, &score.CreatedAt)
}

func (r *taskRepository) GetGameScoresForPeriod(patientID string, start, end time.Time) ([]models.GameScore, error) {
	var scores []models.GameScore
	query := `SELECT id, patient_id, game, score, played_at, created_at
		FROM game_scores WHERE patient_id = $1 AND played_at >= $2 AND played_at <= $3
		ORDER BY played_at`
	err := r.db.Select(&scores, query, patientID, start, end)
	if err != nil {
		return nil, err
	}
	return scores, nil
}
