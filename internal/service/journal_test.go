package service

import (
	"context"
	"testing"
	"time"

	"alzmate/internal/emotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJournalAnalyzeStoresEntry(t *testing.T) {
	repo := &fakeJournalRepo{}
	svc := NewJournalService(repo, nil, zap.NewNop())

	entry, err := svc.Analyze(context.Background(), AnalyzeInput{
		PatientID: "alice",
		Text:      "I feel very happy today, I laughed and smiled with my family",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "alice", entry.PatientID)
	assert.Equal(t, emotion.Happy, entry.PrimaryEmotion)
	assert.False(t, entry.MoodRisk)
	assert.Nil(t, entry.AudioURL)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, entry.ID, repo.entries[0].ID)
}

func TestJournalAnalyzeMoodRisk(t *testing.T) {
	repo := &fakeJournalRepo{}
	svc := NewJournalService(repo, nil, zap.NewNop())

	entry, err := svc.Analyze(context.Background(), AnalyzeInput{
		PatientID: "alice",
		Text:      "I feel hopeless and worthless, nothing matters anymore",
	})
	require.NoError(t, err)

	assert.Equal(t, emotion.Depressed, entry.PrimaryEmotion)
	assert.True(t, entry.MoodRisk)
}

func TestJournalAnalyzeUsesProvidedTimestamp(t *testing.T) {
	repo := &fakeJournalRepo{}
	svc := NewJournalService(repo, nil, zap.NewNop())

	when := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	entry, err := svc.Analyze(context.Background(), AnalyzeInput{
		PatientID: "alice",
		Text:      "a quiet morning",
		Timestamp: &when,
	})
	require.NoError(t, err)

	assert.Equal(t, when, entry.Timestamp)
}

func TestJournalEntriesFilters(t *testing.T) {
	repo := &fakeJournalRepo{}
	svc := NewJournalService(repo, nil, zap.NewNop())

	for _, daysAgo := range []int{1, 3, 10} {
		when := time.Now().UTC().AddDate(0, 0, -daysAgo)
		_, err := svc.Analyze(context.Background(), AnalyzeInput{
			PatientID: "alice",
			Text:      "feeling calm and peaceful",
			Timestamp: &when,
		})
		require.NoError(t, err)
	}

	start := time.Now().UTC().AddDate(0, 0, -7)
	entries, err := svc.Entries(context.Background(), "alice", &start, nil, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = svc.Entries(context.Background(), "bob", nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
