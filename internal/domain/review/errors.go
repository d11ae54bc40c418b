package review

import "errors"

var (
	ErrReviewNotFound = errors.New("performance review not found")
	ErrNotSubmitted   = errors.New("performance review has not been submitted")
	ErrAlreadyFinal   = errors.New("performance review has already been acknowledged")
	ErrNotEditable    = errors.New("performance review can only be edited while draft")
)
