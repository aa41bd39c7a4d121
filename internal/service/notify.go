package service

import (
	"context"
	"encoding/json"
	"fmt"

	"alzmate/internal/analysis"
	"alzmate/internal/models"
	"alzmate/internal/progress"
	"alzmate/internal/repository"

	"go.uber.org/zap"
)

// AlertSender pushes an alert to an external channel. A nil sender
// disables push delivery; in-app notifications are still stored.
type AlertSender interface {
	SendAlert(chatID int64, title, message string) error
}

type NotificationService interface {
	NotifyEmotionAlert(ctx context.Context, patientID string, result analysis.PersistenceResult) error
	NotifyDeclineAlert(ctx context.Context, patientID string, result progress.DeclineResult) error
	NotifyAppointmentMissed(ctx context.Context, reminder *models.Reminder) error
	NotifyCombinedRisk(ctx context.Context, patientID string, assessment analysis.RiskAssessment) error
	List(ctx context.Context, recipientID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id int64, recipientID string) error
}

type notificationService struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
	sender   AlertSender
	logger   *zap.Logger
}

func NewNotificationService(repo repository.NotificationRepository, userRepo repository.UserRepository, sender AlertSender, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, userRepo: userRepo, sender: sender, logger: logger}
}

func (s *notificationService) NotifyEmotionAlert(ctx context.Context, patientID string, result analysis.PersistenceResult) error {
	name := s.patientName(patientID)
	message := fmt.Sprintf("%s has shown high-intensity negative emotions for %d or more days. A check-in is recommended.",
		name, result.RequiredDays)
	return s.fanOut(patientID, &models.Notification{
		PatientID: patientID,
		Title:     "Persistent negative emotions detected",
		Message:   message,
		Type:      models.NotificationEmotionAlert,
		Priority:  models.PriorityHigh,
	}, result)
}

func (s *notificationService) NotifyDeclineAlert(ctx context.Context, patientID string, result progress.DeclineResult) error {
	name := s.patientName(patientID)
	message := fmt.Sprintf("%s's weekly performance score dropped significantly below their baseline for consecutive weeks. Current score: %.1f.",
		name, result.CurrentScore)
	return s.fanOut(patientID, &models.Notification{
		PatientID: patientID,
		Title:     "Cognitive performance decline detected",
		Message:   message,
		Type:      models.NotificationDeclineAlert,
		Priority:  models.PriorityHigh,
	}, result)
}

func (s *notificationService) NotifyAppointmentMissed(ctx context.Context, reminder *models.Reminder) error {
	name := s.patientName(reminder.PatientID)
	message := fmt.Sprintf("%s missed an appointment: %s (scheduled %s).",
		name, reminder.Title, reminder.ScheduledAt.Format("Jan 2 15:04"))
	return s.fanOut(reminder.PatientID, &models.Notification{
		PatientID: reminder.PatientID,
		Title:     "Appointment missed",
		Message:   message,
		Type:      models.NotificationAppointmentMissed,
		Priority:  models.PriorityUrgent,
	}, reminder)
}

func (s *notificationService) NotifyCombinedRisk(ctx context.Context, patientID string, assessment analysis.RiskAssessment) error {
	name := s.patientName(patientID)
	priority := models.PriorityHigh
	if assessment.CombinedRiskLevel == analysis.RiskCritical {
		priority = models.PriorityUrgent
	}
	message := fmt.Sprintf("%s's combined risk level is %s. %s", name, assessment.CombinedRiskLevel, assessment.Recommendation)
	return s.fanOut(patientID, &models.Notification{
		PatientID: patientID,
		Title:     "Elevated combined risk",
		Message:   message,
		Type:      models.NotificationCombinedRiskAlert,
		Priority:  priority,
	}, assessment)
}

func (s *notificationService) List(ctx context.Context, recipientID string, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := s.repo.ListForRecipient(recipientID, unreadOnly)
	if err != nil {
		s.logger.Error("Failed to list notifications", zap.String("recipient_id", recipientID), zap.Error(err))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64, recipientID string) error {
	return s.repo.MarkRead(id, recipientID)
}

// fanOut stores one notification per linked caregiver and pushes
// high-priority ones over the alert channel when the caregiver has one
// configured. Delivery failures for one caregiver do not block the rest.
func (s *notificationService) fanOut(patientID string, template *models.Notification, payload any) error {
	caregivers, err := s.userRepo.GetCaregiversForPatient(patientID)
	if err != nil {
		return fmt.Errorf("failed to get caregivers: %w", err)
	}
	if len(caregivers) == 0 {
		s.logger.Warn("Alert raised for patient with no linked caregivers",
			zap.String("patient_id", patientID), zap.String("type", template.Type))
		return nil
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to encode notification payload", zap.Error(err))
		encoded = nil
	}

	var firstErr error
	for _, caregiver := range caregivers {
		notification := &models.Notification{
			RecipientID: caregiver.Username,
			PatientID:   template.PatientID,
			Title:       template.Title,
			Message:     template.Message,
			Type:        template.Type,
			Priority:    template.Priority,
			Payload:     encoded,
		}
		if err := s.repo.Create(notification); err != nil {
			s.logger.Error("Failed to store notification",
				zap.String("recipient_id", caregiver.Username), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if s.sender == nil || caregiver.TelegramChatID == nil {
			continue
		}
		if template.Priority != models.PriorityHigh && template.Priority != models.PriorityUrgent {
			continue
		}
		if err := s.sender.SendAlert(*caregiver.TelegramChatID, template.Title, template.Message); err != nil {
			s.logger.Error("Failed to push alert",
				zap.String("recipient_id", caregiver.Username), zap.Error(err))
		}
	}

	return firstErr
}

func (s *notificationService) patientName(patientID string) string {
	patient, err := s.userRepo.GetUserByUsername(patientID)
	if err != nil || patient == nil {
		return patientID
	}
	return patient.Name
}
