package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/twofactor"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
)

type twoFactorRepository struct {
	db *database.DB
}

func NewTwoFactorRepository(db *database.DB) twofactor.TwoFactorRepository {
	return &twoFactorRepository{db: db}
}

func (r *twoFactorRepository) Create(ctx context.Context, tfa twofactor.TwoFactorAuth) (twofactor.TwoFactorAuth, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO two_factor_auth (
			id, user_id, method, secret, backup_codes, enabled,
			verified_at, last_used_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		tfa.ID, tfa.UserID, string(tfa.Method), tfa.Secret, tfa.BackupCodes, tfa.Enabled,
		tfa.VerifiedAt, tfa.LastUsedAt, tfa.CreatedAt, tfa.UpdatedAt,
	)
	if err != nil {
		return twofactor.TwoFactorAuth{}, fmt.Errorf("failed to create two-factor record: %w", err)
	}

	return tfa, nil
}

func (r *twoFactorRepository) GetByUserID(ctx context.Context, userID string) (twofactor.TwoFactorAuth, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, method, secret, backup_codes, enabled,
		       verified_at, last_used_at, created_at, updated_at
		FROM two_factor_auth
		WHERE user_id = $1
	`

	var tfa twofactor.TwoFactorAuth
	var method string

	err := q.QueryRow(ctx, query, userID).Scan(
		&tfa.ID, &tfa.UserID, &method, &tfa.Secret, &tfa.BackupCodes, &tfa.Enabled,
		&tfa.VerifiedAt, &tfa.LastUsedAt, &tfa.CreatedAt, &tfa.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return twofactor.TwoFactorAuth{}, twofactor.ErrNotEnabled
		}
		return twofactor.TwoFactorAuth{}, fmt.Errorf("failed to get two-factor record: %w", err)
	}

	tfa.Method = twofactor.TwoFactorMethod(method)
	return tfa, nil
}

func (r *twoFactorRepository) Update(ctx context.Context, tfa twofactor.TwoFactorAuth) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE two_factor_auth
		SET method = $2, secret = $3, backup_codes = $4, enabled = $5,
		    verified_at = $6, last_used_at = $7, updated_at = $8
		WHERE user_id = $1
	`

	tag, err := q.Exec(ctx, query,
		tfa.UserID, string(tfa.Method), tfa.Secret, tfa.BackupCodes, tfa.Enabled,
		tfa.VerifiedAt, tfa.LastUsedAt, tfa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update two-factor record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return twofactor.ErrNotEnabled
	}
	return nil
}

func (r *twoFactorRepository) Delete(ctx context.Context, userID string) error {
	q := database.GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM two_factor_auth WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete two-factor record: %w", err)
	}
	return nil
}
