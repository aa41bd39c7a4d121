// Package analysis contains the pure aggregation functions over analyzed
// journal entries: trends, summaries, shift/persistence/volatility
// detection and the combined risk assessment. Nothing here touches the
// database; callers fetch entries and pass them in, newest first.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"alzmate/internal/models"
)

// EmotionTrend is one emotion's aggregate over a period.
type EmotionTrend struct {
	Emotion          string  `json:"emotion"`
	Count            int     `json:"count"`
	Percentage       float64 `json:"percentage"`
	AverageIntensity float64 `json:"average_intensity"`
	Description      string  `json:"description"`
}

// TrendReport aggregates emotion occurrences over a period.
type TrendReport struct {
	PatientID          string             `json:"patient_id"`
	PeriodDays         int                `json:"period_days"`
	StartDate          time.Time          `json:"start_date"`
	EndDate            time.Time          `json:"end_date"`
	TotalEntries       int                `json:"total_entries"`
	EmotionCounts      map[string]int     `json:"emotion_counts"`
	AverageIntensities map[string]float64 `json:"average_intensities"`
	MoodRiskCount      int                `json:"mood_risk_count"`
	MoodRiskPercentage float64            `json:"mood_risk_percentage"`
	Trends             []EmotionTrend     `json:"trends"`
}

// Trends aggregates per-emotion counts and intensities over the given
// entries. Both primary and secondary emotions count.
func Trends(patientID string, days int, start, end time.Time, entries []models.JournalEntry) TrendReport {
	report := TrendReport{
		PatientID:          patientID,
		PeriodDays:         days,
		StartDate:          start,
		EndDate:            end,
		TotalEntries:       len(entries),
		EmotionCounts:      make(map[string]int),
		AverageIntensities: make(map[string]float64),
		Trends:             []EmotionTrend{},
	}
	if len(entries) == 0 {
		return report
	}

	intensities := make(map[string][]int)
	for _, e := range entries {
		if e.PrimaryEmotion != "" {
			report.EmotionCounts[e.PrimaryEmotion]++
			intensities[e.PrimaryEmotion] = append(intensities[e.PrimaryEmotion], e.PrimaryIntensity)
		}
		if e.SecondaryEmotion != nil {
			report.EmotionCounts[*e.SecondaryEmotion]++
			intensity := 0
			if e.SecondaryIntensity != nil {
				intensity = *e.SecondaryIntensity
			}
			intensities[*e.SecondaryEmotion] = append(intensities[*e.SecondaryEmotion], intensity)
		}
		if e.MoodRisk {
			report.MoodRiskCount++
		}
	}

	for emotion, values := range intensities {
		sum := 0
		for _, v := range values {
			sum += v
		}
		report.AverageIntensities[emotion] = float64(sum) / float64(len(values))
	}

	total := len(entries)
	report.MoodRiskPercentage = round1(float64(report.MoodRiskCount) / float64(total) * 100)

	for emotion, count := range report.EmotionCounts {
		avg := report.AverageIntensities[emotion]
		report.Trends = append(report.Trends, EmotionTrend{
			Emotion:          emotion,
			Count:            count,
			Percentage:       round1(float64(count) / float64(total) * 100),
			AverageIntensity: round1(avg),
			Description: fmt.Sprintf("%s appears %d/%d entries (avg intensity %.1f/100)",
				capitalize(emotion), count, total, avg),
		})
	}
	sort.Slice(report.Trends, func(i, j int) bool {
		if report.Trends[i].Count != report.Trends[j].Count {
			return report.Trends[i].Count > report.Trends[j].Count
		}
		return report.Trends[i].Emotion < report.Trends[j].Emotion
	})

	return report
}

// DailyEmotion is one emotion's aggregate within a single day.
type DailyEmotion struct {
	Emotion      string  `json:"emotion"`
	Count        int     `json:"count"`
	MaxIntensity int     `json:"max_intensity"`
	AvgIntensity float64 `json:"avg_intensity"`
}

// DailySummary aggregates one day of entries.
type DailySummary struct {
	PatientID    string         `json:"patient_id"`
	Date         string         `json:"date"`
	TotalEntries int            `json:"total_entries"`
	Emotions     []DailyEmotion `json:"emotions"`
	MoodRisk     bool           `json:"mood_risk"`
}

// Daily summarizes the entries of a single day by primary emotion.
func Daily(patientID string, date time.Time, entries []models.JournalEntry) DailySummary {
	summary := DailySummary{
		PatientID:    patientID,
		Date:         date.Format("2006-01-02"),
		TotalEntries: len(entries),
		Emotions:     []DailyEmotion{},
	}

	perEmotion := make(map[string]*DailyEmotion)
	sums := make(map[string]int)
	for _, e := range entries {
		if e.PrimaryEmotion == "" {
			continue
		}
		d, ok := perEmotion[e.PrimaryEmotion]
		if !ok {
			d = &DailyEmotion{Emotion: e.PrimaryEmotion}
			perEmotion[e.PrimaryEmotion] = d
		}
		d.Count++
		sums[e.PrimaryEmotion] += e.PrimaryIntensity
		if e.PrimaryIntensity > d.MaxIntensity {
			d.MaxIntensity = e.PrimaryIntensity
		}
		if e.MoodRisk {
			summary.MoodRisk = true
		}
	}

	for emotion, d := range perEmotion {
		d.AvgIntensity = round1(float64(sums[emotion]) / float64(d.Count))
		summary.Emotions = append(summary.Emotions, *d)
	}
	sort.Slice(summary.Emotions, func(i, j int) bool {
		if summary.Emotions[i].Count != summary.Emotions[j].Count {
			return summary.Emotions[i].Count > summary.Emotions[j].Count
		}
		return summary.Emotions[i].Emotion < summary.Emotions[j].Emotion
	})

	return summary
}

// WeeklySummary is a trend report plus generated insight strings.
type WeeklySummary struct {
	TrendReport
	Insights []string `json:"summary_insights"`
}

// Weekly builds the weekly summary: the 7-day trend report plus human
// readable insights (top emotions, high-intensity emotions, mood risk).
func Weekly(report TrendReport) WeeklySummary {
	summary := WeeklySummary{TrendReport: report, Insights: []string{}}
	if report.TotalEntries == 0 {
		return summary
	}

	top := report.Trends
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) > 0 {
		names := make([]string, len(top))
		for i, t := range top {
			names[i] = t.Emotion
		}
		insight := "This week shows "
		if len(names) == 1 {
			insight += names[0]
		} else {
			for i := 0; i < len(names)-1; i++ {
				if i > 0 {
					insight += ", "
				}
				insight += names[i]
			}
			insight += " and " + names[len(names)-1]
		}
		summary.Insights = append(summary.Insights, insight)
	}

	var high []string
	for _, t := range report.Trends {
		if t.AverageIntensity >= 60 {
			high = append(high, t.Emotion)
		}
	}
	if len(high) > 0 {
		summary.Insights = append(summary.Insights,
			"High intensity emotions detected: "+joinComma(high))
	}

	if report.MoodRiskCount > 0 {
		summary.Insights = append(summary.Insights,
			fmt.Sprintf("Mood risk detected in %d entries (%.1f%%)",
				report.MoodRiskCount, report.MoodRiskPercentage))
	}

	return summary
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
