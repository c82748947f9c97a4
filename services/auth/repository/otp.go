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

// CreateOTP inserts a fresh OTP credential
func (r *AuthRepo) CreateOTP(ctx context.Context, otp *models.OTPCredential) error {
	otp.ID = uuid.New()
	otp.CreatedAt = time.Now()

	query := `
		INSERT INTO otp_credentials (id, account_id, code, expires_at, used,
			failed_attempts, requester_ip, user_agent, created_at
		) VALUES (:id, :account_id, :code, :expires_at, :used,
			:failed_attempts, :requester_ip, :user_agent, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, otp)
	if err != nil {
		return fmt.Errorf("failed to insert otp credential: %w", err)
	}

	return nil
}

// GetLatestLiveOTP returns the most recently created unused, unexpired
// credential for the account. Returns nil, nil when none exists;
// verification treats that the same as an expired code.
func (r *AuthRepo) GetLatestLiveOTP(ctx context.Context, accountID uuid.UUID) (*models.OTPCredential, error) {
	query := `
		SELECT id, account_id, code, expires_at, used, failed_attempts,
			requester_ip, user_agent, created_at
		FROM otp_credentials
		WHERE account_id = $1 AND used = false AND expires_at > $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp models.OTPCredential
	err := r.db.GetContext(ctx, &otp, query, accountID, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get otp credential: %w", err)
	}

	return &otp, nil
}

// IncrementOTPAttempts bumps the failed counter atomically and returns the
// new value, so two concurrent wrong submissions cannot both observe the
// same pre-increment count.
func (r *AuthRepo) IncrementOTPAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		UPDATE otp_credentials
		SET failed_attempts = failed_attempts + 1
		WHERE id = $1
		RETURNING failed_attempts
	`

	var attempts int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&attempts)
	if err != nil {
		return 0, fmt.Errorf("failed to increment otp attempts: %w", err)
	}

	return attempts, nil
}

// RetireOTP marks a single credential used without consuming it, ending its
// life after lockout or expiry.
func (r *AuthRepo) RetireOTP(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE otp_credentials
		SET used = true
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to retire otp credential: %w", err)
	}

	return nil
}

// ConsumeOTP marks the matched credential used and retires every other
// unused credential for the account in the same transaction. The guarded
// first update makes concurrent submissions race safely: only one caller
// observes used = false.
func (r *AuthRepo) ConsumeOTP(ctx context.Context, accountID, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE otp_credentials
		SET used = true
		WHERE id = $1 AND used = false
	`, id)
	if err != nil {
		return fmt.Errorf("failed to consume otp credential: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to consume otp credential: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("otp credential already consumed")
	}

	// Blanket sweep: no earlier still-unused code may outlive a successful
	// verification.
	_, err = tx.ExecContext(ctx, `
		UPDATE otp_credentials
		SET used = true
		WHERE account_id = $1 AND used = false
	`, accountID)
	if err != nil {
		return fmt.Errorf("failed to retire sibling otp credentials: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// PurgeExpiredOTPs deletes credentials whose expiry has lapsed. Safe to run
// concurrently with verification; live rows are never touched.
func (r *AuthRepo) PurgeExpiredOTPs(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM otp_credentials
		WHERE expires_at < $1
	`

	result, err := r.db.ExecContext(ctx, query, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge otp credentials: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to purge otp credentials: %w", err)
	}

	return rows, nil
}
