package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrLoginAlreadyInUse  = errors.New("login already in use")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
)
