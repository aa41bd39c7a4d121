// Package progress computes weekly cognitive-performance scores from task
// completion records. All functions are pure; callers fetch the records.
package progress

import (
	"math"
	"time"

	"alzmate/internal/models"
)

// TaskWeights are the per-task-type point weights.
var TaskWeights = map[string]float64{
	models.TaskMedication:  3,
	models.TaskAppointment: 3,
	models.TaskMeal:        2,
	"brain_training":       2,
	"journal":              1,
}

// Patient functional states.
const (
	StateStable          = "stable"
	StateMildDecline     = "mild_decline"
	StateModerateDecline = "moderate_decline"
	StateHighRisk        = "high_risk"
)

// TypeBreakdown is the per-task-type completion breakdown.
type TypeBreakdown struct {
	Completed      int     `json:"completed"`
	Missed         int     `json:"missed"`
	Total          int     `json:"total"`
	PointsEarned   float64 `json:"points_earned"`
	PointsPossible float64 `json:"points_possible"`
}

// Breakdown maps task type to its breakdown.
type Breakdown map[string]TypeBreakdown

// ScoreResult is a computed weekly score with its breakdown.
type ScoreResult struct {
	PatientID      string    `json:"patient_id"`
	WeekStart      time.Time `json:"week_start"`
	WeekEnd        time.Time `json:"week_end"`
	Score          float64   `json:"score"`
	EarnedPoints   float64   `json:"earned_points"`
	PossiblePoints float64   `json:"possible_points"`
	State          string    `json:"patient_state"`
	Breakdown      Breakdown `json:"breakdown"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

// CalculateWeeklyScore computes the weekly score from reminders and
// brain-training sessions within [weekStart, weekEnd]. Completed
// reminders earn their weight, missed earn zero, pending count toward
// neither. One brain-training session per day is expected. An empty week
// scores zero.
func CalculateWeeklyScore(patientID string, weekStart, weekEnd time.Time, reminders []models.Reminder, sessions []models.GameScore) ScoreResult {
	breakdown := Breakdown{
		models.TaskMedication:  {},
		models.TaskAppointment: {},
		models.TaskMeal:        {},
	}

	var earned, possible float64
	for _, r := range reminders {
		weight, ok := TaskWeights[r.Type]
		if !ok {
			continue
		}
		// Pending reminders count toward neither earned nor possible.
		if !r.IsCompleted && !r.IsMissed {
			continue
		}
		b := breakdown[r.Type]
		b.Total++
		b.PointsPossible += weight
		possible += weight
		if r.IsCompleted {
			b.Completed++
			b.PointsEarned += weight
			earned += weight
		} else {
			b.Missed++
		}
		breakdown[r.Type] = b
	}

	// Brain training: one expected session per day in the period.
	days := int(math.Ceil(weekEnd.Sub(weekStart).Hours() / 24))
	if days < 1 {
		days = 1
	}
	brainWeight := TaskWeights["brain_training"]
	completed := len(sessions)
	if completed > days {
		completed = days
	}
	breakdown["brain_training"] = TypeBreakdown{
		Completed:      completed,
		Total:          days,
		PointsEarned:   float64(completed) * brainWeight,
		PointsPossible: float64(days) * brainWeight,
	}
	earned += float64(completed) * brainWeight
	possible += float64(days) * brainWeight

	score := 0.0
	if possible > 0 {
		score = earned / possible * 100
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	score = math.Round(score*100) / 100

	return ScoreResult{
		PatientID:      patientID,
		WeekStart:      weekStart,
		WeekEnd:        weekEnd,
		Score:          score,
		EarnedPoints:   math.Round(earned*100) / 100,
		PossiblePoints: math.Round(possible*100) / 100,
		State:          StateFor(score),
		Breakdown:      breakdown,
		CalculatedAt:   time.Now(),
	}
}

// StateFor assigns the functional state label for a score.
// Boundaries: stable >= 80, mild_decline >= 60, moderate_decline >= 40.
func StateFor(score float64) string {
	switch {
	case score >= 80:
		return StateStable
	case score >= 60:
		return StateMildDecline
	case score >= 40:
		return StateModerateDecline
	default:
		return StateHighRisk
	}
}

var stateDescriptions = map[string]string{
	StateStable:          "Routine intact - patient is functioning well",
	StateMildDecline:     "Mild decline risk - needs attention",
	StateModerateDecline: "Moderate decline risk - frequent misses",
	StateHighRisk:        "High risk - requires high supervision",
}

// StateDescription returns the caregiver-facing description of a state.
func StateDescription(state string) string {
	if d, ok := stateDescriptions[state]; ok {
		return d
	}
	return "Unknown state"
}
