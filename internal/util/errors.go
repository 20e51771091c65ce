package util

import "errors"

var (
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrSessionExpired  = errors.New("quiz session expired")
	ErrSessionMismatch = errors.New("token does not belong to this session")
	ErrExportFailed    = errors.New("report export failed")
	ErrInvalidLocale   = errors.New("invalid locale")
	ErrInvalidRequest  = errors.New("invalid request")
)
