package twofactor

import (
	"time"

	"github.com/joabe-nascimento/talents-flow/internal/pkg/validator"
)

type EnableRequest struct {
	UserID string `json:"-"`
	Method string `json:"method"`
}

func (r *EnableRequest) Validate() error {
	var errs validator.ValidationErrors

	valid := []string{string(MethodEmail), string(MethodSMS), string(MethodAuthenticator)}
	if !validator.IsInSlice(r.Method, valid) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "is not a valid two-factor method"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VerifyRequest struct {
	UserID string `json:"-"`
	Code   string `json:"code"`
}

func (r *VerifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetupResponse is returned when setup begins. OTPAuthURL and
// BackupCodes are only populated once, at setup time.
type SetupResponse struct {
	Method      string   `json:"method"`
	OTPAuthURL  *string  `json:"otpauth_url,omitempty"`
	BackupCodes []string `json:"backup_codes,omitempty"`
}

type StatusResponse struct {
	Enabled         bool    `json:"enabled"`
	Method          *string `json:"method,omitempty"`
	VerifiedAt      *string `json:"verified_at,omitempty"`
	LastUsedAt      *string `json:"last_used_at,omitempty"`
	BackupCodesLeft int     `json:"backup_codes_left"`
}

func ToStatusResponse(tfa TwoFactorAuth) StatusResponse {
	var method *string
	if tfa.Method != "" {
		str := string(tfa.Method)
		method = &str
	}
	var verifiedAt, lastUsedAt *string
	if tfa.VerifiedAt != nil {
		str := tfa.VerifiedAt.Format(time.RFC3339)
		verifiedAt = &str
	}
	if tfa.LastUsedAt != nil {
		str := tfa.LastUsedAt.Format(time.RFC3339)
		lastUsedAt = &str
	}

	return StatusResponse{
		Enabled:         tfa.Enabled,
		Method:          method,
		VerifiedAt:      verifiedAt,
		LastUsedAt:      lastUsedAt,
		BackupCodesLeft: len(tfa.BackupCodes),
	}
}
