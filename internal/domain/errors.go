package domain

import "errors"

var (
	ErrEmailInUse      = errors.New("Email already in use")
	ErrUserNotFound    = errors.New("User not found")
	ErrInvalidPassword = errors.New("Invalid password")
	ErrTaskNotFound    = errors.New("Task not found")
)
