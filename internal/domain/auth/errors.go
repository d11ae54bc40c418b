package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrTwoFactorRequired   = errors.New("two-factor code required")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)
