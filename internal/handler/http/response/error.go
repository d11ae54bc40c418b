package response

import (
	"errors"
	"net/http"

	"github.com/joabe-nascimento/talents-flow/internal/domain/auth"
	"github.com/joabe-nascimento/talents-flow/internal/domain/employee"
	"github.com/joabe-nascimento/talents-flow/internal/domain/notification"
	"github.com/joabe-nascimento/talents-flow/internal/domain/offboarding"
	"github.com/joabe-nascimento/talents-flow/internal/domain/onboarding"
	"github.com/joabe-nascimento/talents-flow/internal/domain/payroll"
	"github.com/joabe-nascimento/talents-flow/internal/domain/review"
	"github.com/joabe-nascimento/talents-flow/internal/domain/timerecord"
	"github.com/joabe-nascimento/talents-flow/internal/domain/twofactor"
	"github.com/joabe-nascimento/talents-flow/internal/domain/user"
	"github.com/joabe-nascimento/talents-flow/internal/domain/vacation"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTwoFactorRequired):
		Unauthorized(w, "Two-factor code required")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, "Email already registered to an account")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employee status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrPayrollNotEditable):
		Conflict(w, "Payroll record can only be edited while draft or calculated")
	case errors.Is(err, payroll.ErrNotCalculated):
		Conflict(w, "Payroll record has not been calculated")
	case errors.Is(err, payroll.ErrNotApproved):
		Conflict(w, "Payroll record has not been approved")
	case errors.Is(err, payroll.ErrAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Time record domain errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrNoRecordToday):
		NotFound(w, "No clock-in record for today")
	case errors.Is(err, timerecord.ErrAlreadyClockedIn):
		Conflict(w, "Clock-in already registered for today")
	case errors.Is(err, timerecord.ErrAlreadyClockedOut):
		Conflict(w, "Clock-out already registered")
	case errors.Is(err, timerecord.ErrNotClockedIn):
		Conflict(w, "Clock-in must be registered first")
	case errors.Is(err, timerecord.ErrLunchOutNotSet):
		Conflict(w, "Lunch-out must be registered first")
	case errors.Is(err, timerecord.ErrLunchOutAlreadySet):
		Conflict(w, "Lunch-out already registered")
	case errors.Is(err, timerecord.ErrLunchInAlreadySet):
		Conflict(w, "Lunch-in already registered")
	case errors.Is(err, timerecord.ErrAlreadyReviewed):
		Conflict(w, "Time record has already been reviewed")

	// Onboarding domain errors
	case errors.Is(err, onboarding.ErrOnboardingNotFound):
		NotFound(w, "Onboarding not found")
	case errors.Is(err, onboarding.ErrTaskNotFound):
		NotFound(w, "Onboarding task not found")
	case errors.Is(err, onboarding.ErrTemplateNotFound):
		NotFound(w, "Onboarding template not found")
	case errors.Is(err, onboarding.ErrActiveOnboardingExists):
		Conflict(w, "Employee already has an active onboarding")
	case errors.Is(err, onboarding.ErrRequiredTaskSkip):
		BadRequest(w, "Required tasks cannot be skipped", nil)
	case errors.Is(err, onboarding.ErrTaskAlreadyClosed):
		Conflict(w, "Task is already completed or skipped")

	// Offboarding domain errors
	case errors.Is(err, offboarding.ErrOffboardingNotFound):
		NotFound(w, "Offboarding not found")
	case errors.Is(err, offboarding.ErrActiveOffboardingExists):
		Conflict(w, "Employee already has an active offboarding")
	case errors.Is(err, offboarding.ErrAlreadyCompleted):
		Conflict(w, "Offboarding already completed")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrAlreadyProcessed):
		Conflict(w, "Vacation request already processed")

	// Review domain errors
	case errors.Is(err, review.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, review.ErrNotSubmitted):
		Conflict(w, "Performance review has not been submitted")
	case errors.Is(err, review.ErrAlreadyFinal):
		Conflict(w, "Performance review already acknowledged")
	case errors.Is(err, review.ErrNotEditable):
		Conflict(w, "Performance review can only be edited while draft")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Two-factor domain errors
	case errors.Is(err, twofactor.ErrNotEnabled):
		BadRequest(w, "Two-factor authentication is not enabled", nil)
	case errors.Is(err, twofactor.ErrAlreadyEnabled):
		Conflict(w, "Two-factor authentication is already enabled")
	case errors.Is(err, twofactor.ErrInvalidCode):
		Unauthorized(w, "Invalid or expired verification code")
	case errors.Is(err, twofactor.ErrCodeNotFound):
		Unauthorized(w, "No pending verification code")
	case errors.Is(err, twofactor.ErrInvalidMethod):
		BadRequest(w, "Invalid two-factor method", nil)
	case errors.Is(err, twofactor.ErrSetupNotStarted):
		BadRequest(w, "Two-factor setup has not been started", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
