package analysis

import (
	"testing"

	"alzmate/internal/emotion"
	"alzmate/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDetectShiftInsufficientData(t *testing.T) {
	result := DetectShift(emotion.Anxious, 7, DefaultShiftIncrease, []models.JournalEntry{
		entry(emotion.Anxious, 50, 0, false),
	})

	assert.False(t, result.ShiftDetected)
	assert.Equal(t, "insufficient data", result.Reason)
}

func TestDetectShiftDetected(t *testing.T) {
	// Newest first: the late half averages 80, the early half 40.
	entries := []models.JournalEntry{
		entry(emotion.Anxious, 85, 0, false),
		entry(emotion.Anxious, 75, 1, false),
		entry(emotion.Anxious, 45, 5, false),
		entry(emotion.Anxious, 35, 6, false),
	}

	result := DetectShift(emotion.Anxious, 7, DefaultShiftIncrease, entries)

	assert.True(t, result.ShiftDetected)
	assert.Equal(t, 40.0, result.EarlyAverage)
	assert.Equal(t, 80.0, result.LateAverage)
	assert.Equal(t, 40.0, result.Increase)
}

func TestDetectShiftBelowThreshold(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Sad, 55, 0, false),
		entry(emotion.Sad, 50, 3, false),
	}

	result := DetectShift(emotion.Sad, 7, DefaultShiftIncrease, entries)

	assert.False(t, result.ShiftDetected)
	assert.Equal(t, 5.0, result.Increase)
}

func TestDetectShiftEmotionMissing(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Happy, 60, 0, false),
		entry(emotion.Calm, 50, 3, false),
	}

	result := DetectShift(emotion.Anxious, 7, DefaultShiftIncrease, entries)

	assert.False(t, result.ShiftDetected)
	assert.Equal(t, "emotion not found in both periods", result.Reason)
}

func TestPersistentNegativeDetected(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Sad, 80, 0, true),
		entry(emotion.Depressed, 75, 1, true),
		entry(emotion.Lonely, 90, 2, true),
	}

	result := PersistentNegative(DefaultPersistentDays, entries)

	assert.True(t, result.Detected)
	assert.Equal(t, 3, result.DaysWithHighNegative)
	assert.Len(t, result.Dates, 3)
}

func TestPersistentNegativeBelowIntensity(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Sad, 60, 0, false),
		entry(emotion.Sad, 65, 1, false),
		entry(emotion.Sad, 50, 2, false),
	}

	result := PersistentNegative(DefaultPersistentDays, entries)

	assert.False(t, result.Detected)
	assert.Equal(t, 0, result.DaysWithHighNegative)
}

func TestPersistentNegativeSameDayCountsOnce(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Sad, 80, 0, true),
		entry(emotion.Angry, 85, 0, true),
		entry(emotion.Sad, 90, 0, true),
	}

	result := PersistentNegative(DefaultPersistentDays, entries)

	assert.False(t, result.Detected)
	assert.Equal(t, 1, result.DaysWithHighNegative)
}

func TestPersistentNegativeCountsSecondary(t *testing.T) {
	entries := []models.JournalEntry{
		withSecondary(entry(emotion.Happy, 40, 0, false), emotion.Sad, 75),
		entry(emotion.Depressed, 80, 1, true),
		entry(emotion.Lonely, 72, 2, true),
	}

	result := PersistentNegative(DefaultPersistentDays, entries)

	assert.True(t, result.Detected)
}

func TestVolatilityInsufficientData(t *testing.T) {
	result := Volatility(7, []models.JournalEntry{
		entry(emotion.Sad, 50, 0, false),
		entry(emotion.Happy, 50, 1, false),
	})

	assert.False(t, result.Detected)
	assert.Equal(t, "insufficient data", result.Reason)
}

func TestVolatilityDetectedOnSwings(t *testing.T) {
	// Mood flips sign day to day: the coefficient of variation is large.
	entries := []models.JournalEntry{
		entry(emotion.Happy, 80, 0, false),
		entry(emotion.Sad, 70, 1, false),
		entry(emotion.Happy, 75, 2, false),
		entry(emotion.Depressed, 60, 3, false),
	}

	result := Volatility(7, entries)

	assert.True(t, result.Detected)
	assert.GreaterOrEqual(t, result.CoefficientOfVariation, VolatilityThreshold)
	assert.Equal(t, 4, result.DaysAnalyzed)
}

func TestVolatilityStableMood(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Happy, 70, 0, false),
		entry(emotion.Happy, 72, 1, false),
		entry(emotion.Happy, 68, 2, false),
		entry(emotion.Calm, 70, 3, false),
	}

	result := Volatility(7, entries)

	assert.False(t, result.Detected)
}

func TestTrendSummaryNoData(t *testing.T) {
	result := TrendSummary("alice", 0, nil)

	assert.Equal(t, TrendNoData, result.Trend)
}

func TestTrendSummaryNoNegatives(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Happy, 60, 0, false),
		entry(emotion.Calm, 50, 1, false),
	}

	result := TrendSummary("alice", 0, entries)

	assert.Equal(t, TrendImproving, result.Trend)
	assert.Equal(t, "No negative emotions detected", result.Description)
}

func TestTrendSummaryWorsening(t *testing.T) {
	// Newest first: recent negative intensities far above the early ones.
	entries := []models.JournalEntry{
		entry(emotion.Sad, 85, 0, true),
		entry(emotion.Sad, 80, 1, true),
		entry(emotion.Sad, 40, 5, false),
		entry(emotion.Sad, 35, 6, false),
	}

	result := TrendSummary("alice", 2, entries)

	assert.Equal(t, TrendWorsening, result.Trend)
	assert.Equal(t, 37.5, result.EarlyAverage)
	assert.Equal(t, 82.5, result.LateAverage)
	assert.Equal(t, 2, result.MoodRiskCount)
}

func TestTrendSummaryImproving(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Sad, 30, 0, false),
		entry(emotion.Sad, 35, 1, false),
		entry(emotion.Sad, 75, 5, true),
		entry(emotion.Sad, 80, 6, true),
	}

	result := TrendSummary("alice", 2, entries)

	assert.Equal(t, TrendImproving, result.Trend)
}

func TestTrendSummaryStable(t *testing.T) {
	entries := []models.JournalEntry{
		entry(emotion.Sad, 50, 0, false),
		entry(emotion.Sad, 55, 1, false),
		entry(emotion.Sad, 52, 5, false),
		entry(emotion.Sad, 48, 6, false),
	}

	result := TrendSummary("alice", 0, entries)

	assert.Equal(t, TrendStable, result.Trend)
}
