package services

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
