package service

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("role must be patient or caregiver")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrCaregiverNotFound  = errors.New("caregiver not found")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrInvalidTaskType    = errors.New("task type must be medication, appointment or meal")
)
