package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serahterima/serahterima/internal/pkg/models"
)

// CreateRefreshToken persists a refresh token row. Only token.TokenHash is
// stored; the plaintext secret never reaches this layer.
func (r *AuthRepo) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	token.ID = uuid.New()
	token.CreatedAt = time.Now()

	query := `
		INSERT INTO refresh_tokens (id, account_id, token_hash, expires_at,
			revoked, issued_ip, user_agent, created_at
		) VALUES (:id, :account_id, :token_hash, :expires_at,
			:revoked, :issued_ip, :user_agent, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}

	return nil
}

// GetRefreshTokenByHash looks up a refresh token row by its stored hash.
// Returns nil, nil when no row matches.
func (r *AuthRepo) GetRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	query := `
		SELECT id, account_id, token_hash, expires_at, revoked, revoked_at,
			issued_ip, user_agent, created_at
		FROM refresh_tokens
		WHERE token_hash = $1
	`

	var token models.RefreshToken
	err := r.db.GetContext(ctx, &token, query, hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &token, nil
}

// RevokeRefreshToken marks the row matching the hash revoked. Idempotent:
// revoking an already-revoked or unknown token is not an error.
func (r *AuthRepo) RevokeRefreshToken(ctx context.Context, hash string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked = true, revoked_at = $1
		WHERE token_hash = $2 AND revoked = false
	`

	if _, err := r.db.ExecContext(ctx, query, time.Now(), hash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// RevokeAllRefreshTokens bulk-revokes every live refresh token of an
// account. Used on logout-all and administrative deactivation.
func (r *AuthRepo) RevokeAllRefreshTokens(ctx context.Context, accountID uuid.UUID) error {
	query := `
		UPDATE refresh_tokens
		SET revoked = true, revoked_at = $1
		WHERE account_id = $2 AND revoked = false
	`

	if _, err := r.db.ExecContext(ctx, query, time.Now(), accountID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return nil
}

// PurgeRefreshTokens deletes rows that are expired, or revoked longer ago
// than the retention window.
func (r *AuthRepo) PurgeRefreshTokens(ctx context.Context, retention time.Duration) (int64, error) {
	now := time.Now()
	query := `
		DELETE FROM refresh_tokens
		WHERE expires_at < $1
		   OR (revoked = true AND revoked_at < $2)
	`

	result, err := r.db.ExecContext(ctx, query, now, now.Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("failed to purge refresh tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to purge refresh tokens: %w", err)
	}

	return rows, nil
}
