package auth

import "context"

// AuthService issues and revokes session tokens. Login enforces the
// user's second factor when one is enabled.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
	Logout(ctx context.Context, req LogoutRequest) error
}
