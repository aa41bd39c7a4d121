package service

import (
	"context"
	"fmt"
	"time"

	"alzmate/internal/models"
	"alzmate/internal/repository"

	"go.uber.org/zap"
)

type TaskService interface {
	CreateReminder(ctx context.Context, patientID, taskType, title string, scheduledAt time.Time) (*models.Reminder, error)
	CompleteReminder(ctx context.Context, id int64) (*models.Reminder, error)
	MissReminder(ctx context.Context, id int64) (*models.Reminder, error)
	RecordGameScore(ctx context.Context, patientID, game string, score int, playedAt time.Time) (*models.GameScore, error)
}

type taskService struct {
	repo     repository.TaskRepository
	notifier NotificationService
	logger   *zap.Logger
}

func NewTaskService(repo repository.TaskRepository, notifier NotificationService, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, notifier: notifier, logger: logger}
}

func validTaskType(taskType string) bool {
	switch taskType {
	case models.TaskMedication, models.TaskAppointment, models.TaskMeal:
		return true
	}
	return false
}

func (s *taskService) CreateReminder(ctx context.Context, patientID, taskType, title string, scheduledAt time.Time) (*models.Reminder, error) {
	if !validTaskType(taskType) {
		return nil, ErrInvalidTaskType
	}

	reminder := &models.Reminder{
		PatientID:   patientID,
		Type:        taskType,
		Title:       title,
		ScheduledAt: scheduledAt,
	}
	if err := s.repo.CreateReminder(reminder); err != nil {
		s.logger.Error("Failed to create reminder", zap.String("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return reminder, nil
}

func (s *taskService) CompleteReminder(ctx context.Context, id int64) (*models.Reminder, error) {
	reminder, err := s.repo.GetReminderByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	completedAt := time.Now().UTC()
	if err := s.repo.MarkReminderCompleted(id, completedAt); err != nil {
		s.logger.Error("Failed to complete reminder", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to complete reminder: %w", err)
	}

	reminder.IsCompleted = true
	reminder.IsMissed = false
	reminder.CompletedAt = &completedAt
	return reminder, nil
}

// MissReminder marks a reminder missed. Missed appointments raise an
// urgent caregiver notification.
func (s *taskService) MissReminder(ctx context.Context, id int64) (*models.Reminder, error) {
	reminder, err := s.repo.GetReminderByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	if err := s.repo.MarkReminderMissed(id); err != nil {
		s.logger.Error("Failed to mark reminder missed", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to mark reminder missed: %w", err)
	}

	reminder.IsMissed = true
	reminder.IsCompleted = false
	reminder.CompletedAt = nil

	if reminder.Type == models.TaskAppointment {
		if err := s.notifier.NotifyAppointmentMissed(ctx, reminder); err != nil {
			s.logger.Error("Failed to send missed-appointment alert",
				zap.String("patient_id", reminder.PatientID), zap.Error(err))
		}
	}

	return reminder, nil
}

func (s *taskService) RecordGameScore(ctx context.Context, patientID, game string, score int, playedAt time.Time) (*models.GameScore, error) {
	record := &models.GameScore{
		PatientID: patientID,
		Game:      game,
		Score:     score,
		PlayedAt:  playedAt,
	}
	if err := s.repo.CreateGameScore(record); err != nil {
		s.logger.Error("Failed to record game score", zap.String("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to record game score: %w", err)
	}
	return record, nil
}
