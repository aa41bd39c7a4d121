package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"alzmate/internal/emotion"
	"alzmate/internal/media"
	"alzmate/internal/models"
	"alzmate/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyzeInput is a single journal submission: text, a timestamp (defaults
// to now) and optionally a voice recording to attach to the entry.
type AnalyzeInput struct {
	PatientID     string
	Text          string
	Timestamp     *time.Time
	Audio         io.Reader
	AudioFilename string
}

type JournalService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*models.JournalEntry, error)
	Entries(ctx context.Context, patientID string, start, end *time.Time, limit int) ([]models.JournalEntry, error)
}

type journalService struct {
	repo     repository.JournalRepository
	uploader media.Uploader
	logger   *zap.Logger
}

func NewJournalService(repo repository.JournalRepository, uploader media.Uploader, logger *zap.Logger) JournalService {
	return &journalService{repo: repo, uploader: uploader, logger: logger}
}

func (s *journalService) Analyze(ctx context.Context, input AnalyzeInput) (*models.JournalEntry, error) {
	result := emotion.Analyze(input.Text)

	timestamp := time.Now().UTC()
	if input.Timestamp != nil {
		timestamp = input.Timestamp.UTC()
	}

	entry := &models.JournalEntry{
		ID:                uuid.NewString(),
		PatientID:         input.PatientID,
		Text:              input.Text,
		Timestamp:         timestamp,
		PrimaryEmotion:    result.Primary.Emotion,
		PrimaryIntensity:  result.Primary.Intensity,
		PrimaryConfidence: result.Primary.Confidence,
		InterpretationTag: result.InterpretationTag,
		MoodRisk:          result.MoodRisk,
	}
	if result.Secondary != nil {
		entry.SecondaryEmotion = &result.Secondary.Emotion
		entry.SecondaryIntensity = &result.Secondary.Intensity
		entry.SecondaryConfidence = &result.Secondary.Confidence
	}

	if input.Audio != nil && s.uploader != nil {
		url, err := s.uploader.UploadAudio(ctx, input.Audio, input.AudioFilename, input.PatientID, entry.ID)
		if err != nil {
			// The analysis result is still useful without the recording.
			s.logger.Warn("Failed to upload journal audio",
				zap.String("patient_id", input.PatientID), zap.Error(err))
		} else {
			entry.AudioURL = &url
		}
	}

	if err := s.repo.SaveEntry(entry); err != nil {
		s.logger.Error("Failed to save journal entry",
			zap.String("patient_id", input.PatientID), zap.Error(err))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	return entry, nil
}

func (s *journalService) Entries(ctx context.Context, patientID string, start, end *time.Time, limit int) ([]models.JournalEntry, error) {
	entries, err := s.repo.GetEntries(patientID, start, end, limit)
	if err != nil {
		s.logger.Error("Failed to get journal entries",
			zap.String("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}
	return entries, nil
}
