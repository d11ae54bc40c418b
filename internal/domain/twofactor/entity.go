package twofactor

import "time"

// TwoFactorMethod enum
type TwoFactorMethod string

const (
	MethodEmail         TwoFactorMethod = "EMAIL"
	MethodSMS           TwoFactorMethod = "SMS"
	MethodAuthenticator TwoFactorMethod = "AUTHENTICATOR"
)

// TwoFactorAuth is the per-user second factor configuration. Secret is
// only set for the authenticator method. BackupCodes hold bcrypt hashes,
// each removed once consumed.
type TwoFactorAuth struct {
	ID          string
	UserID      string
	Method      TwoFactorMethod
	Secret      *string
	BackupCodes []string
	Enabled     bool
	VerifiedAt  *time.Time
	LastUsedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
