package service

import (
	"context"
	"testing"
	"time"

	"alzmate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTasks(t *testing.T) (*fakeTaskRepo, *fakeNotificationRepo, TaskService) {
	t.Helper()
	taskRepo := newFakeTaskRepo()
	notifRepo := &fakeNotificationRepo{}
	userRepo := newFakeUserRepo()

	require.NoError(t, userRepo.CreateUser(&models.User{Username: "alice", Name: "Alice", Role: models.RolePatient}))
	require.NoError(t, userRepo.CreateUser(&models.User{Username: "carol", Name: "Carol", Role: models.RoleCaregiver}))
	require.NoError(t, userRepo.LinkCaregiver("alice", "carol"))

	notifier := NewNotificationService(notifRepo, userRepo, nil, zap.NewNop())
	return taskRepo, notifRepo, NewTaskService(taskRepo, notifier, zap.NewNop())
}

func TestCreateReminderValidatesType(t *testing.T) {
	_, _, svc := setupTasks(t)

	_, err := svc.CreateReminder(context.Background(), "alice", "exercise", "Walk", time.Now())
	assert.ErrorIs(t, err, ErrInvalidTaskType)

	reminder, err := svc.CreateReminder(context.Background(), "alice", models.TaskMedication, "Morning pills", time.Now())
	require.NoError(t, err)
	assert.NotZero(t, reminder.ID)
	assert.False(t, reminder.IsCompleted)
}

func TestCompleteReminder(t *testing.T) {
	_, _, svc := setupTasks(t)

	created, err := svc.CreateReminder(context.Background(), "alice", models.TaskMeal, "Lunch", time.Now())
	require.NoError(t, err)

	completed, err := svc.CompleteReminder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)
	assert.NotNil(t, completed.CompletedAt)
}

func TestCompleteReminderNotFound(t *testing.T) {
	_, _, svc := setupTasks(t)

	_, err := svc.CompleteReminder(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestMissAppointmentNotifiesCaregivers(t *testing.T) {
	_, notifRepo, svc := setupTasks(t)

	created, err := svc.CreateReminder(context.Background(), "alice", models.TaskAppointment, "Dentist", time.Now())
	require.NoError(t, err)

	missed, err := svc.MissReminder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, missed.IsMissed)

	require.Len(t, notifRepo.notifications, 1)
	assert.Equal(t, models.NotificationAppointmentMissed, notifRepo.notifications[0].Type)
}

func TestMissMedicationDoesNotNotify(t *testing.T) {
	_, notifRepo, svc := setupTasks(t)

	created, err := svc.CreateReminder(context.Background(), "alice", models.TaskMedication, "Evening pills", time.Now())
	require.NoError(t, err)

	_, err = svc.MissReminder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, notifRepo.notifications)
}

func TestRecordGameScore(t *testing.T) {
	taskRepo, _, svc := setupTasks(t)

	record, err := svc.RecordGameScore(context.Background(), "alice", "memory_match", 87, time.Now().UTC())
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Len(t, taskRepo.scores, 1)
}
