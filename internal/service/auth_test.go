package service

import (
	"testing"

	"alzmate/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(repo *fakeUserRepo) AuthService {
	return NewAuthService(repo, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register("alice", "Alice", "secret123", models.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RolePatient, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	token, expiresAt, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return GetJWTSecret(), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RolePatient, claims.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register("alice", "Alice", "secret123", models.RolePatient)
	require.NoError(t, err)

	_, err = svc.Register("alice", "Other Alice", "different", models.RoleCaregiver)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register("bob", "Bob", "secret123", "admin")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register("alice", "Alice", "secret123", models.RolePatient)
	require.NoError(t, err)

	_, _, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, _, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLinkCaregiver(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register("alice", "Alice", "secret123", models.RolePatient)
	require.NoError(t, err)
	_, err = svc.Register("carol", "Carol", "secret123", models.RoleCaregiver)
	require.NoError(t, err)

	require.NoError(t, svc.LinkCaregiver("alice", "carol"))

	caregivers, err := repo.GetCaregiversForPatient("alice")
	require.NoError(t, err)
	require.Len(t, caregivers, 1)
	assert.Equal(t, "carol", caregivers[0].Username)
}

func TestLinkCaregiverRoleChecks(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register("alice", "Alice", "secret123", models.RolePatient)
	require.NoError(t, err)
	_, err = svc.Register("carol", "Carol", "secret123", models.RoleCaregiver)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.LinkCaregiver("carol", "carol"), ErrPatientNotFound)
	assert.ErrorIs(t, svc.LinkCaregiver("alice", "alice"), ErrCaregiverNotFound)
	assert.ErrorIs(t, svc.LinkCaregiver("ghost", "carol"), ErrPatientNotFound)
}
