package repository

import (
	"database/sql"
	"errors"

	"alzmate/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	ListPatients() ([]*models.User, error)
	SetTelegramChatID(username string, chatID int64) error
	LinkCaregiver(patientID, caregiverID string) error
	GetCaregiversForPatient(patientID string) ([]*models.User, error)
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) CreateUser(user *models.User) error {
	query := `INSERT INTO users (username, name, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return r.db.QueryRowx(query, user.Username, user.Name, user.PasswordHash, user.Role).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, name, password_hash, role, telegram_chat_id, created_at FROM users WHERE username = $1`
	err := r.db.Get(&user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListPatients() ([]*models.User, error) {
	var users []*models.User
	query := `SELECT id, username, name, password_hash, role, telegram_chat_id, created_at FROM users WHERE role = $1 ORDER BY username`
	err := r.db.Select(&users, query, models.RolePatient)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetTelegramChatID(username string, chatID int64) error {
	query := `UPDATE users SET telegram_chat_id = $1 WHERE username = $2`
	result, err := r.db.Exec(query, chatID, username)
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

func (r *userRepository) LinkCaregiver(patientID, caregiverID string) error {
	query := `INSERT INTO caregiver_links (patient_id, caregiver_id) VALUES ($1, $2) ON CONFLICT (patient_id, caregiver_id) DO NOTHING`
	_, err := r.db.Exec(query, patientID, caregiverID)
	return err
}

func (r *userRepository) GetCaregiversForPatient(patientID string) ([]*models.User, error) {
	var users []*models.User
	query := `SELECT u.id, u.username, u.name, u.password_hash, u.role, u.telegram_chat_id, u.created_at
		FROM users u
		JOIN caregiver_links cl ON cl.caregiver_id = u.username
		WHERE cl.patient_id = $1
		ORDER BY u.username`
	err := r.db.Select(&users, query, patientID)
	if err != nil {
		return nil, err
	}
	return users, nil
}
