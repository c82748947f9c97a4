package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jwtpkg "github.com/serahterima/serahterima/internal/pkg/jwt"
	"github.com/serahterima/serahterima/internal/pkg/logger"
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/internal/utils"
	"github.com/serahterima/serahterima/services/auth"
)

// issueAccessSession signs an access token and loads the profile projection
// for the account.
func (uc *AuthUC) issueAccessSession(ctx context.Context, account *models.Account) (*models.AuthSession, error) {
	token, expiresAt, err := jwtpkg.GenerateAccessToken(account, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	profile, err := uc.authRepo.GetProfileByAccountID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &models.AuthSession{
		AccessToken:     token,
		AccessExpiresAt: expiresAt,
		User:            profile,
	}, nil
}

// issueRefreshToken mints a fresh refresh secret, persists its hash, and
// returns the plaintext. This is the only moment the plaintext exists on
// the server.
func (uc *AuthUC) issueRefreshToken(ctx context.Context, accountID uuid.UUID, ip, userAgent string) (string, time.Time, error) {
	plaintext, err := utils.GenerateRefreshSecret()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh secret: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(uc.cfg.Refresh.ExpiryDays) * 24 * time.Hour)
	token := &models.RefreshToken{
		AccountID: accountID,
		TokenHash: utils.HashRefreshSecret(plaintext, uc.cfg.JWT.RefreshSecret),
		ExpiresAt: expiresAt,
		IssuedIP:  ip,
		UserAgent: userAgent,
	}
	if err := uc.authRepo.CreateRefreshToken(ctx, token); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return plaintext, expiresAt, nil
}

// verifyRefreshToken resolves a client-presented plaintext to a live token
// row and its active owning account. Every credential failure collapses to
// ErrInvalidRefreshToken; store failures are surfaced as-is.
func (uc *AuthUC) verifyRefreshToken(ctx context.Context, plaintext string) (*models.RefreshToken, *models.Account, error) {
	hash := utils.HashRefreshSecret(plaintext, uc.cfg.JWT.RefreshSecret)

	token, err := uc.authRepo.GetRefreshTokenByHash(ctx, hash)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if token == nil || !token.Live(time.Now()) {
		return nil, nil, auth.ErrInvalidRefreshToken
	}

	account, err := uc.authRepo.GetAccountByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return nil, nil, auth.ErrInvalidRefreshToken
		}
		return nil, nil, fmt.Errorf("failed to load account: %w", err)
	}
	if !account.IsActive {
		return nil, nil, auth.ErrInvalidRefreshToken
	}

	return token, account, nil
}

// Refresh mints a new access token against a live refresh token. The
// refresh token itself is not rotated; it stays valid until its own expiry
// or revocation. Account fields are re-read so role and status changes
// since login take effect.
func (uc *AuthUC) Refresh(ctx context.Context, refreshToken string) (*models.AuthSession, error) {
	_, account, err := uc.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return uc.issueAccessSession(ctx, account)
}

// Logout revokes the refresh token presented via cookie. Idempotent: a
// missing, unknown, or already-revoked token still succeeds.
func (uc *AuthUC) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	hash := utils.HashRefreshSecret(refreshToken, uc.cfg.JWT.RefreshSecret)
	if err := uc.authRepo.RevokeRefreshToken(ctx, hash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// LogoutAll revokes every refresh token of the account, ending all
// device sessions' ability to mint new access tokens.
func (uc *AuthUC) LogoutAll(ctx context.Context, accountID uuid.UUID) error {
	if err := uc.authRepo.RevokeAllRefreshTokens(ctx, accountID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	logger.Info("All sessions revoked",
		logger.String("account_id", accountID.String()))

	return nil
}

// Me returns the current profile projection of the authenticated account.
func (uc *AuthUC) Me(ctx context.Context, accountID uuid.UUID) (*models.UserProfile, error) {
	return uc.authRepo.GetProfileByAccountID(ctx, accountID)
}
