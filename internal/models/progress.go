package models

import "time"

// WeeklyScore represents a computed weekly cognitive-performance score
// stored in the 'progress_scores' table. Breakdown holds the per-task-type
// counts as JSON.
type WeeklyScore struct {
	ID             int64     `db:"id" json:"id"`
	PatientID      string    `db:"patient_id" json:"patient_id"`
	WeekStart      time.Time `db:"week_start" json:"week_start"`
	WeekEnd        time.Time `db:"week_end" json:"week_end"`
	Score          float64   `db:"score" json:"score"`
	EarnedPoints   float64   `db:"earned_points" json:"earned_points"`
	PossiblePoints float64   `db:"possible_points" json:"possible_points"`
	State          string    `db:"state" json:"state"`
	Breakdown      []byte    `db:"breakdown" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Baseline represents a patient's baseline score computed from their first
// recorded weeks, stored in the 'progress_baselines' table.
type Baseline struct {
	ID         int64     `db:"id" json:"id"`
	PatientID  string    `db:"patient_id" json:"patient_id"`
	Score      float64   `db:"score" json:"score"`
	Weeks      int       `db:"weeks" json:"weeks"`
	ComputedAt time.Time `db:"computed_at" json:"computed_at"`
}
