package analysis

import (
	"fmt"
	"math"
	"sort"

	"alzmate/internal/emotion"
	"alzmate/internal/models"
)

// Detection thresholds.
const (
	DefaultShiftIncrease   = 20.0
	DefaultPersistentDays  = 3
	HighIntensityThreshold = 70
	VolatilityThreshold    = 0.4
	trendSummaryBand       = 10.0
)

// ShiftResult reports whether one emotion's intensity increased
// significantly between the early and late half of a window.
type ShiftResult struct {
	ShiftDetected bool    `json:"shift_detected"`
	Emotion       string  `json:"emotion"`
	EarlyAverage  float64 `json:"early_average,omitempty"`
	LateAverage   float64 `json:"late_average,omitempty"`
	Increase      float64 `json:"increase,omitempty"`
	Threshold     float64 `json:"threshold"`
	PeriodDays    int     `json:"period_days"`
	Entries       int     `json:"entries"`
	Reason        string  `json:"reason,omitempty"`
}

// DetectShift compares the average intensity of one emotion between the
// early and late halves of the window. Entries must be ordered newest
// first; the first half is the late period.
func DetectShift(target string, days int, minIncrease float64, entries []models.JournalEntry) ShiftResult {
	result := ShiftResult{
		Emotion:    target,
		Threshold:  minIncrease,
		PeriodDays: days,
		Entries:    len(entries),
	}
	if len(entries) < 2 {
		result.Reason = "insufficient data"
		return result
	}

	mid := len(entries) / 2
	late := entries[:mid]
	early := entries[mid:]

	earlyVals := intensitiesFor(target, early)
	lateVals := intensitiesFor(target, late)
	if len(earlyVals) == 0 || len(lateVals) == 0 {
		result.Reason = "emotion not found in both periods"
		return result
	}

	result.EarlyAverage = round2(mean(earlyVals))
	result.LateAverage = round2(mean(lateVals))
	result.Increase = round2(result.LateAverage - result.EarlyAverage)
	result.ShiftDetected = result.Increase >= minIncrease

	return result
}

// intensitiesFor collects the intensity of target wherever it appears as
// primary or secondary emotion.
func intensitiesFor(target string, entries []models.JournalEntry) []float64 {
	var values []float64
	for _, e := range entries {
		switch {
		case e.PrimaryEmotion == target:
			values = append(values, float64(e.PrimaryIntensity))
		case e.SecondaryEmotion != nil && *e.SecondaryEmotion == target:
			intensity := 0
			if e.SecondaryIntensity != nil {
				intensity = *e.SecondaryIntensity
			}
			values = append(values, float64(intensity))
		}
	}
	return values
}

// PersistenceResult reports sustained high-intensity negative emotions.
type PersistenceResult struct {
	Detected             bool     `json:"persistent_negative_detected"`
	DaysWithHighNegative int      `json:"days_with_high_negative_emotions"`
	RequiredDays         int      `json:"required_days"`
	Dates                []string `json:"dates,omitempty"`
	Threshold            int      `json:"threshold"`
	Reason               string   `json:"reason,omitempty"`
}

// PersistentNegative counts distinct days carrying a negative emotion at
// intensity >= 70 (primary or secondary). Persistence requires at least
// requiredDays such days, with at least requiredDays entries present.
func PersistentNegative(requiredDays int, entries []models.JournalEntry) PersistenceResult {
	result := PersistenceResult{
		RequiredDays: requiredDays,
		Threshold:    HighIntensityThreshold,
	}
	if len(entries) < requiredDays {
		result.Reason = "insufficient entries"
		return result
	}

	days := make(map[string]bool)
	for _, e := range entries {
		key := e.Timestamp.Format("2006-01-02")
		if emotion.IsNegative(e.PrimaryEmotion) && e.PrimaryIntensity >= HighIntensityThreshold {
			days[key] = true
		}
		if e.SecondaryEmotion != nil && emotion.IsNegative(*e.SecondaryEmotion) &&
			e.SecondaryIntensity != nil && *e.SecondaryIntensity >= HighIntensityThreshold {
			days[key] = true
		}
	}

	for key := range days {
		result.Dates = append(result.Dates, key)
	}
	sort.Strings(result.Dates)
	result.DaysWithHighNegative = len(days)
	result.Detected = len(days) >= requiredDays

	return result
}

// VolatilityResult reports rapid day-to-day mood swings.
type VolatilityResult struct {
	Detected               bool    `json:"volatility_detected"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation,omitempty"`
	Threshold              float64 `json:"threshold"`
	MeanScore              float64 `json:"mean_score,omitempty"`
	StdDeviation           float64 `json:"std_deviation,omitempty"`
	DaysAnalyzed           int     `json:"days_analyzed"`
	PeriodDays             int     `json:"period_days"`
	Reason                 string  `json:"reason,omitempty"`
}

// Volatility computes a signed daily mood score (negative emotions count
// negative) and flags volatility when the coefficient of variation of the
// daily averages reaches the threshold. Needs entries across at least
// three distinct days.
func Volatility(days int, entries []models.JournalEntry) VolatilityResult {
	result := VolatilityResult{
		Threshold:  VolatilityThreshold,
		PeriodDays: days,
	}
	if len(entries) < 3 {
		result.Reason = "insufficient data"
		return result
	}

	daily := make(map[string][]float64)
	for _, e := range entries {
		score := float64(e.PrimaryIntensity)
		if emotion.IsNegative(e.PrimaryEmotion) {
			score = -score
		}
		key := e.Timestamp.Format("2006-01-02")
		daily[key] = append(daily[key], score)
	}

	result.DaysAnalyzed = len(daily)
	if len(daily) < 3 {
		result.Reason = "insufficient daily data"
		return result
	}

	averages := make([]float64, 0, len(daily))
	for _, scores := range daily {
		averages = append(averages, mean(scores))
	}

	m := mean(averages)
	if m == 0 {
		result.Reason = "zero mean score"
		return result
	}

	var variance float64
	for _, v := range averages {
		variance += (v - m) * (v - m)
	}
	variance /= float64(len(averages))
	std := math.Sqrt(variance)
	cv := math.Abs(std / m)

	result.MeanScore = round2(m)
	result.StdDeviation = round2(std)
	result.CoefficientOfVariation = math.Round(cv*1000) / 1000
	result.Detected = cv >= VolatilityThreshold

	return result
}

// TrendSummaryResult classifies the emotional trajectory of a window.
type TrendSummaryResult struct {
	Trend                    string  `json:"trend"`
	Description              string  `json:"description"`
	PatientID                string  `json:"patient_id"`
	AverageNegativeIntensity float64 `json:"average_negative_intensity"`
	EarlyAverage             float64 `json:"early_average,omitempty"`
	LateAverage              float64 `json:"late_average,omitempty"`
	TotalEntries             int     `json:"total_entries"`
	MoodRiskCount            int     `json:"mood_risk_count"`
}

// Trend classifications.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendWorsening = "worsening"
	TrendDeclining = "declining"
	TrendNoData    = "no_data"
)

// TrendSummary classifies the window as improving, stable or worsening by
// comparing early and late average negative-emotion intensity. Entries
// must be ordered newest first.
func TrendSummary(patientID string, moodRiskCount int, entries []models.JournalEntry) TrendSummaryResult {
	result := TrendSummaryResult{
		PatientID:     patientID,
		TotalEntries:  len(entries),
		MoodRiskCount: moodRiskCount,
	}
	if len(entries) == 0 {
		result.Trend = TrendNoData
		result.Description = "No emotion data available"
		return result
	}
	if len(entries) < 2 {
		result.Trend = TrendStable
		result.Description = "Insufficient data for trend analysis"
		return result
	}

	var negatives []float64
	for _, e := range entries {
		if emotion.IsNegative(e.PrimaryEmotion) {
			negatives = append(negatives, float64(e.PrimaryIntensity))
		}
	}
	if len(negatives) == 0 {
		result.Trend = TrendImproving
		result.Description = "No negative emotions detected"
		return result
	}

	result.AverageNegativeIntensity = round2(mean(negatives))

	mid := len(negatives) / 2
	if mid == 0 {
		result.Trend = TrendStable
		result.Description = "Insufficient negative-emotion data for trend analysis"
		return result
	}
	late := mean(negatives[:mid])
	early := mean(negatives[mid:])
	result.EarlyAverage = round2(early)
	result.LateAverage = round2(late)

	switch {
	case late > early+trendSummaryBand:
		result.Trend = TrendWorsening
		result.Description = fmt.Sprintf("Negative emotions increasing (from %.1f to %.1f)", early, late)
	case late < early-trendSummaryBand:
		result.Trend = TrendImproving
		result.Description = fmt.Sprintf("Negative emotions decreasing (from %.1f to %.1f)", early, late)
	default:
		result.Trend = TrendStable
		result.Description = "Emotional state remains relatively stable"
	}

	return result
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
