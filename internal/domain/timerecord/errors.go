package timerecord

import "errors"

var (
	ErrRecordNotFound     = errors.New("time record not found")
	ErrNoRecordToday      = errors.New("no clock-in record for today")
	ErrAlreadyClockedIn   = errors.New("clock-in already registered for today")
	ErrAlreadyClockedOut  = errors.New("clock-out already registered")
	ErrNotClockedIn       = errors.New("clock-in must be registered first")
	ErrLunchOutNotSet     = errors.New("lunch-out must be registered first")
	ErrLunchOutAlreadySet = errors.New("lunch-out already registered")
	ErrLunchInAlreadySet  = errors.New("lunch-in already registered")
	ErrAlreadyReviewed    = errors.New("time record has already been approved or rejected")
)
