package onboarding

import "errors"

var (
	ErrOnboardingNotFound     = errors.New("onboarding not found")
	ErrTaskNotFound           = errors.New("onboarding task not found")
	ErrTemplateNotFound       = errors.New("onboarding template not found")
	ErrActiveOnboardingExists = errors.New("employee already has an active onboarding")
	ErrRequiredTaskSkip       = errors.New("required tasks cannot be skipped")
	ErrTaskAlreadyClosed      = errors.New("task is already completed or skipped")
)
