package usecase

import (
	"context"
	"time"

	"github.com/serahterima/serahterima/internal/pkg/logger"
)

// CleanupCredentials purges dead credential rows: expired OTP codes and
// refresh tokens past expiry or past the revoked-row retention window.
// Rate-limit windows expire through Redis TTL and need no sweep.
func (uc *AuthUC) CleanupCredentials(ctx context.Context) error {
	otps, err := uc.authRepo.PurgeExpiredOTPs(ctx)
	if err != nil {
		return err
	}

	retention := time.Duration(uc.cfg.Refresh.RetentionDays) * 24 * time.Hour
	tokens, err := uc.authRepo.PurgeRefreshTokens(ctx, retention)
	if err != nil {
		return err
	}

	if otps > 0 || tokens > 0 {
		logger.Info("Purged dead credentials",
			logger.Int64("otp_rows", otps),
			logger.Int64("refresh_token_rows", tokens))
	}

	return nil
}

// StartCleanupWorker runs CleanupCredentials on a fixed interval until the
// context is cancelled.
func (uc *AuthUC) StartCleanupWorker(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := uc.CleanupCredentials(ctx); err != nil {
					logger.Error("Credential cleanup failed", logger.Err(err))
				}
			}
		}
	}()
}
