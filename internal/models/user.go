package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User roles.
const (
	RolePatient   = "patient"
	RoleCaregiver = "caregiver"
)

type User struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	Name           string    `db:"name" json:"name"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	Role           string    `db:"role" json:"role"`
	TelegramChatID *int64    `db:"telegram_chat_id" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// CaregiverLink associates a caregiver with a patient they look after.
type CaregiverLink struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   string    `db:"patient_id" json:"patient_id"`
	CaregiverID string    `db:"caregiver_id" json:"caregiver_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
