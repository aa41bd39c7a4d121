package repository

import (
	"database/sql"

	"alzmate/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListForRecipient(recipientID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id int64, recipientID string) error
}

type notificationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewNotificationRepository(db *sqlx.DB, logger *zap.Logger) NotificationRepository {
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	query := `INSERT INTO notifications (recipient_id, patient_id, title, message, type, priority, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	return r.db.QueryRowx(query,
		notification.RecipientID, notification.PatientID, notification.Title,
		notification.Message, notification.Type, notification.Priority, notification.Payload,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func (r *notificationRepository) ListForRecipient(recipientID string, unreadOnly bool) ([]models.Notification, error) {
	var notifications []models.Notification
	query := `SELECT id, recipient_id, patient_id, title, message, type, priority, read, payload, created_at
		FROM notifications WHERE recipient_id = $1`
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC`
	err := r.db.Select(&notifications, query, recipientID)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips the read flag; the recipient filter stops users marking
// someone else's notifications.
func (r *notificationRepository) MarkRead(id int64, recipientID string) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND recipient_id = $2`
	result, err := r.db.Exec(query, id, recipientID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
