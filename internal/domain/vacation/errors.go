package vacation

import "errors"

var (
	ErrRequestNotFound  = errors.New("vacation request not found")
	ErrAlreadyProcessed = errors.New("vacation request has already been processed")
)
