package twofactor

import "errors"

var (
	ErrNotEnabled      = errors.New("two-factor authentication is not enabled")
	ErrAlreadyEnabled  = errors.New("two-factor authentication is already enabled")
	ErrInvalidCode     = errors.New("invalid or expired verification code")
	ErrCodeNotFound    = errors.New("no pending verification code")
	ErrInvalidMethod   = errors.New("invalid two-factor method")
	ErrSetupNotStarted = errors.New("two-factor setup has not been started")
)
