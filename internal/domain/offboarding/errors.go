package offboarding

import "errors"

var (
	ErrOffboardingNotFound     = errors.New("offboarding not found")
	ErrActiveOffboardingExists = errors.New("employee already has an active offboarding")
	ErrAlreadyCompleted        = errors.New("offboarding already completed")
)
