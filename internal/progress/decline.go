package progress

import (
	"fmt"
	"math"
)

// Decline detection parameters.
const (
	DeclineThresholdPoints  = 15.0
	DeclineConsecutiveWeeks = 2
	BaselineWeeks           = 4
	BaselineMinimumWeeks    = 2
	weekTrendBand           = 5.0
)

// Baseline averages the oldest weekly scores. It needs at least
// BaselineMinimumWeeks recorded weeks; otherwise ok is false.
func Baseline(oldestScores []float64) (baseline float64, ok bool) {
	if len(oldestScores) < BaselineMinimumWeeks {
		return 0, false
	}
	var sum float64
	for _, s := range oldestScores {
		sum += s
	}
	return sum / float64(len(oldestScores)), true
}

// DeclineResult reports baseline comparison for the current score.
type DeclineResult struct {
	DeclineDetected  bool     `json:"decline_detected"`
	Baseline         *float64 `json:"baseline"`
	CurrentScore     float64  `json:"current_score"`
	Difference       *float64 `json:"difference"`
	Threshold        float64  `json:"threshold"`
	ConsecutiveWeeks int      `json:"consecutive_weeks"`
	Reason           string   `json:"reason,omitempty"`
}

// DetectDecline flags decline when the current score sits at least
// DeclineThresholdPoints below baseline and every score of the most
// recent DeclineConsecutiveWeeks weeks does too. recentScores are the
// latest recorded weekly scores, newest first.
func DetectDecline(baseline float64, hasBaseline bool, currentScore float64, recentScores []float64) DeclineResult {
	result := DeclineResult{
		CurrentScore: currentScore,
		Threshold:    DeclineThresholdPoints,
	}
	if !hasBaseline {
		result.Reason = "insufficient baseline data"
		return result
	}

	result.Baseline = &baseline
	difference := math.Round((baseline-currentScore)*100) / 100
	result.Difference = &difference

	detected := difference >= DeclineThresholdPoints
	if detected && len(recentScores) >= DeclineConsecutiveWeeks {
		for _, score := range recentScores[:DeclineConsecutiveWeeks] {
			if baseline-score < DeclineThresholdPoints {
				detected = false
				break
			}
		}
	}

	result.DeclineDetected = detected
	if detected {
		result.ConsecutiveWeeks = DeclineConsecutiveWeeks
	}
	return result
}

// WeekTrend compares the current score with the previous week's.
// Movements within weekTrendBand points count as stable.
func WeekTrend(currentScore float64, previousScore *float64) (trend, description string) {
	if previousScore == nil {
		return "no_data", "Insufficient data for trend analysis"
	}
	delta := currentScore - *previousScore
	switch {
	case delta > weekTrendBand:
		return "improving", fmt.Sprintf("Score improved by %.1f points", delta)
	case delta < -weekTrendBand:
		return "declining", fmt.Sprintf("Score decreased by %.1f points", -delta)
	default:
		return "stable", "Score remains relatively stable"
	}
}
