package models

import "time"

// Notification types.
const (
	NotificationEmotionAlert      = "emotion_alert"
	NotificationDeclineAlert      = "decline_alert"
	NotificationAppointmentMissed = "appointment_missed"
	NotificationCombinedRiskAlert = "combined_risk_alert"
)

// Notification priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification represents a caregiver notification stored in the
// 'notifications' table. Payload carries trigger details as JSON.
type Notification struct {
	ID          int64     `db:"id" json:"id"`
	RecipientID string    `db:"recipient_id" json:"recipient_id"`
	PatientID   string    `db:"patient_id" json:"patient_id"`
	Title       string    `db:"title" json:"title"`
	Message     string    `db:"message" json:"message"`
	Type        string    `db:"type" json:"type"`
	Priority    string    `db:"priority" json:"priority"`
	Read        bool      `db:"read" json:"read"`
	Payload     []byte    `db:"payload" json:"payload,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
