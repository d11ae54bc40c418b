package twofactor

import (
	"context"
	"time"
)

// TwoFactorRepository defines data access for two-factor configurations.
type TwoFactorRepository interface {
	Create(ctx context.Context, tfa TwoFactorAuth) (TwoFactorAuth, error)
	GetByUserID(ctx context.Context, userID string) (TwoFactorAuth, error)
	Update(ctx context.Context, tfa TwoFactorAuth) error
	Delete(ctx context.Context, userID string) error
}

// CodeStore keeps pending verification codes with a TTL. Codes expire
// server side regardless of process restarts.
type CodeStore interface {
	Put(ctx context.Context, userID, code string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}
