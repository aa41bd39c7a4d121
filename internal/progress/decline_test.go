package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineInsufficientWeeks(t *testing.T) {
	_, ok := Baseline([]float64{85})
	assert.False(t, ok)

	_, ok = Baseline(nil)
	assert.False(t, ok)
}

func TestBaselineAverage(t *testing.T) {
	baseline, ok := Baseline([]float64{80, 90})
	require.True(t, ok)
	assert.Equal(t, 85.0, baseline)

	baseline, ok = Baseline([]float64{80, 85, 90, 95})
	require.True(t, ok)
	assert.Equal(t, 87.5, baseline)
}

func TestDetectDeclineNoBaseline(t *testing.T) {
	result := DetectDecline(0, false, 50, nil)

	assert.False(t, result.DeclineDetected)
	assert.Equal(t, "insufficient baseline data", result.Reason)
	assert.Nil(t, result.Baseline)
}

func TestDetectDeclineBelowThreshold(t *testing.T) {
	result := DetectDecline(80, true, 70, []float64{70, 72})

	assert.False(t, result.DeclineDetected)
	require.NotNil(t, result.Difference)
	assert.Equal(t, 10.0, *result.Difference)
}

func TestDetectDeclineConsecutiveWeeks(t *testing.T) {
	// Both recent weeks sit 15+ points below the baseline of 85.
	result := DetectDecline(85, true, 60, []float64{60, 65})

	assert.True(t, result.DeclineDetected)
	assert.Equal(t, DeclineConsecutiveWeeks, result.ConsecutiveWeeks)
}

func TestDetectDeclineBrokenStreak(t *testing.T) {
	// The previous week recovered above the threshold, so one bad week
	// is not a decline.
	result := DetectDecline(85, true, 60, []float64{60, 80})

	assert.False(t, result.DeclineDetected)
}

func TestWeekTrendNoPrevious(t *testing.T) {
	trend, description := WeekTrend(70, nil)

	assert.Equal(t, "no_data", trend)
	assert.Equal(t, "Insufficient data for trend analysis", description)
}

func TestWeekTrend(t *testing.T) {
	previous := 70.0

	trend, _ := WeekTrend(80, &previous)
	assert.Equal(t, "improving", trend)

	trend, _ = WeekTrend(60, &previous)
	assert.Equal(t, "declining", trend)

	trend, _ = WeekTrend(72, &previous)
	assert.Equal(t, "stable", trend)
}
