package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serahterima/serahterima/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/serahterima/serahterima/services/auth AuthRepo

// AuthRepo is the credential store: durable access to employees, accounts,
// OTP credentials, refresh token rows, and rate-limit windows. No policy
// lives here; callers drive the state machine.
type AuthRepo interface {
	// employees and accounts
	GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	GetAccountByEmployeeID(ctx context.Context, employeeID string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetProfileByAccountID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	CreateAccount(ctx context.Context, account *models.Account) error
	ListAccounts(ctx context.Context) ([]models.Account, error)
	UpdateAccountRole(ctx context.Context, id uuid.UUID, role models.Role) error
	SetAccountActive(ctx context.Context, id uuid.UUID, active bool) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// OTP credentials
	CreateOTP(ctx context.Context, otp *models.OTPCredential) error
	// GetLatestLiveOTP returns the most recently created unused, unexpired
	// credential for the account, or nil when none exists.
	GetLatestLiveOTP(ctx context.Context, accountID uuid.UUID) (*models.OTPCredential, error)
	// IncrementOTPAttempts bumps the failed counter atomically and returns
	// the new value.
	IncrementOTPAttempts(ctx context.Context, id uuid.UUID) (int, error)
	// RetireOTP marks a single credential used without consuming it.
	RetireOTP(ctx context.Context, id uuid.UUID) error
	// ConsumeOTP marks the credential used and retires every other unused
	// credential of the account in one transaction.
	ConsumeOTP(ctx context.Context, accountID, id uuid.UUID) error
	PurgeExpiredOTPs(ctx context.Context) (int64, error)

	// rate-limit windows
	CheckRateLimit(ctx context.Context, identifier string, limit int) (bool, error)
	IncrementRateLimit(ctx context.Context, identifier string, window time.Duration) error

	// refresh tokens
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, hash string) error
	RevokeAllRefreshTokens(ctx context.Context, accountID uuid.UUID) error
	// PurgeRefreshTokens deletes expired rows and revoked rows older than
	// the retention window, returning the number removed.
	PurgeRefreshTokens(ctx context.Context, retention time.Duration) (int64, error)
}
