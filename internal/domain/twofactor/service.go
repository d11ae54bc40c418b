package twofactor

import "context"

// TwoFactorService manages second factor setup and login verification.
// Email and SMS methods send a short-lived numeric code; the
// authenticator method provisions a TOTP secret.
type TwoFactorService interface {
	Enable(ctx context.Context, req EnableRequest) (SetupResponse, error)
	VerifySetup(ctx context.Context, req VerifyRequest) (StatusResponse, error)
	SendCode(ctx context.Context, userID string) error
	ValidateLogin(ctx context.Context, req VerifyRequest) error
	Disable(ctx context.Context, userID string) error
	Status(ctx context.Context, userID string) (StatusResponse, error)
}
