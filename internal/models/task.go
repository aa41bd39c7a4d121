package models

import "time"

// Reminder task types the mobile client reports outcomes for.
const (
	TaskMedication  = "medication"
	TaskAppointment = "appointment"
	TaskMeal        = "meal"
)

// Reminder represents a scheduled task stored in the 'reminders' table.
// Scheduling itself is owned by the mobile client; the backend only
// records outcomes.
type Reminder struct {
	ID          int64      `db:"id" json:"id"`
	PatientID   string     `db:"patient_id" json:"patient_id"`
	Type        string     `db:"type" json:"type"`
	Title       string     `db:"title" json:"title"`
	ScheduledAt time.Time  `db:"scheduled_at" json:"scheduled_at"`
	IsCompleted bool       `db:"is_completed" json:"is_completed"`
	IsMissed    bool       `db:"is_missed" json:"is_missed"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// GameScore represents a brain-training session stored in the
// 'game_scores' table.
type GameScore struct {
	ID        int64     `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patient_id"`
	Game      string    `db:"game" json:"game"`
	Score     int       `db:"score" json:"score"`
	PlayedAt  time.Time `db:"played_at" json:"played_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
