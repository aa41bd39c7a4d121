package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"alzmate/internal/models"
	"alzmate/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
)

// Secret key for JWT signing. Override with JWT_SECRET in production.
var jwtSecret = []byte(jwtSecretFromEnv())

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "supersecretjwtkey"
}

// GetJWTSecret returns the JWT secret key.
func GetJWTSecret() []byte {
	return jwtSecret
}

const tokenLifetime = 24 * time.Hour

type AuthService interface {
	Register(username, name, password, role string) (*models.User, error)
	Login(username, password string) (string, time.Time, error) // Returns JWT token and expiration time
	LinkCaregiver(patientID, caregiverID string) error
}

type authService struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewAuthService(repo repository.UserRepository, logger *zap.Logger) AuthService {
	return &authService{repo: repo, logger: logger}
}

func (s *authService) Register(username, name, password, role string) (*models.User, error) {
	if role != models.RolePatient && role != models.RoleCaregiver {
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.GetUserByUsername(username)
	if err != nil {
		s.logger.Error("Failed to check existing user", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := s.hashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.repo.CreateUser(user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *authService) Login(username, password string) (string, time.Time, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		s.logger.Error("Failed to get user by username", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return "", time.Time{}, ErrUserNotFound
	}

	if !s.verifyPassword(user.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(tokenLifetime)
	claims := &models.Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		s.logger.Error("Failed to generate JWT token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in successfully.", zap.String("username", user.Username))

	return tokenString, expirationTime, nil
}

// LinkCaregiver associates a caregiver with a patient after checking both
// accounts exist with the right roles.
func (s *authService) LinkCaregiver(patientID, caregiverID string) error {
	patient, err := s.repo.GetUserByUsername(patientID)
	if err != nil {
		return fmt.Errorf("failed to retrieve patient: %w", err)
	}
	if patient == nil || patient.Role != models.RolePatient {
		return ErrPatientNotFound
	}

	caregiver, err := s.repo.GetUserByUsername(caregiverID)
	if err != nil {
		return fmt.Errorf("failed to retrieve caregiver: %w", err)
	}
	if caregiver == nil || caregiver.Role != models.RoleCaregiver {
		return ErrCaregiverNotFound
	}

	if err := s.repo.LinkCaregiver(patientID, caregiverID); err != nil {
		s.logger.Error("Failed to link caregiver",
			zap.String("patient_id", patientID), zap.String("caregiver_id", caregiverID), zap.Error(err))
		return fmt.Errorf("failed to link caregiver: %w", err)
	}

	return nil
}

// hashPassword uses Argon2id to hash the password.
func (s *authService) hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, 64*1024, 1, 4, encodedSalt, encodedHash), nil
}

// verifyPassword compares a plaintext password with a stored Argon2id hash.
func (s *authService) verifyPassword(hashedPassword, password string) bool {
	// Format: $argon2id$v=19$m=65536,t=1,p=4$salt$hash
	sections := strings.Split(strings.TrimPrefix(hashedPassword, "$"), "$")
	if len(sections) != 5 || sections[0] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(sections[1], "v=%d", &version); err != nil {
		return false
	}
	var m, t, p uint32
	if _, err := fmt.Sscanf(sections[2], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(sections[3])
	if err != nil {
		return false
	}
	hash, err := base64.RawStdEncoding.DecodeString(sections[4])
	if err != nil {
		return false
	}

	comparison := argon2.IDKey([]byte(password), salt, t, m, uint8(p), uint32(len(hash)))
	return subtle.ConstantTimeCompare(comparison, hash) == 1
}
