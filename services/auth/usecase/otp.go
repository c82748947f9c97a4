package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serahterima/serahterima/internal/pkg/constants"
	"github.com/serahterima/serahterima/internal/pkg/logger"
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/internal/utils"
	"github.com/serahterima/serahterima/services/auth"
)

// RequestOTP handles a login-code request. Unknown employee ids, unbound
// and inactive accounts all return nil so the HTTP response stays identical
// to the happy path; only rate-limit rejection is observable.
func (uc *AuthUC) RequestOTP(ctx context.Context, input *models.RequestOTPInput) error {
	account, err := uc.authRepo.GetAccountByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			logger.Info("OTP requested for unknown or unbound employee id",
				logger.String("employee_id", input.EmployeeID),
				logger.String("ip", input.IP))
			return nil
		}
		return fmt.Errorf("failed to resolve account: %w", err)
	}
	if !account.IsActive {
		logger.Info("OTP requested for inactive account",
			logger.String("account_id", account.ID.String()),
			logger.String("ip", input.IP))
		return nil
	}

	identifier := fmt.Sprintf(constants.KeyOTPRateLimit, input.EmployeeID, input.IP)
	limit := uc.cfg.OTP.RequestLimit(uc.cfg.App)
	window := time.Duration(uc.cfg.OTP.RateWindowMinutes) * time.Minute

	allowed, err := uc.authRepo.CheckRateLimit(ctx, identifier, limit)
	if err != nil {
		return fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !allowed {
		logger.Warn("OTP request rate limit exceeded",
			logger.String("employee_id", input.EmployeeID),
			logger.String("ip", input.IP))
		return auth.ErrRateLimited
	}
	if err := uc.authRepo.IncrementRateLimit(ctx, identifier, window); err != nil {
		return fmt.Errorf("failed to increment rate limit: %w", err)
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	otp := &models.OTPCredential{
		AccountID:   account.ID,
		Code:        code,
		ExpiresAt:   time.Now().Add(time.Duration(uc.cfg.OTP.ExpiryMinutes) * time.Minute),
		RequesterIP: input.IP,
		UserAgent:   input.UserAgent,
	}
	if err := uc.authRepo.CreateOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to create otp credential: %w", err)
	}

	// Operator debug channel for manual testing. Never in production.
	if !uc.cfg.App.IsProduction() {
		logger.Info("Issued OTP code",
			logger.String("employee_id", input.EmployeeID),
			logger.String("otp_code", code),
			logger.Time("expires_at", otp.ExpiresAt))
	}

	uc.dispatchOTPNotification(ctx, input.EmployeeID, code, otp.ExpiresAt)

	return nil
}

// dispatchOTPNotification hands the code to the external mailer.
// Fire-and-forget: failure is logged and swallowed so the response stays
// indistinguishable whether or not delivery succeeded.
func (uc *AuthUC) dispatchOTPNotification(ctx context.Context, employeeID, code string, expiresAt time.Time) {
	employee, err := uc.authRepo.GetEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		logger.Error("Failed to resolve employee for OTP notification",
			logger.String("employee_id", employeeID),
			logger.Err(err))
		return
	}

	event := &models.OTPNotificationEvent{
		EmployeeID: employee.EmployeeID,
		Email:      employee.Email,
		FullName:   employee.FullName,
		Code:       code,
		ExpiresAt:  expiresAt,
	}
	if err := uc.notifierGW.PublishOTPRequested(ctx, event); err != nil {
		logger.Error("Failed to publish OTP notification",
			logger.String("employee_id", employeeID),
			logger.Err(err))
	}
}

// verifyOTPCode is the OTP engine's verification state machine. It targets
// the most recently created live credential only.
func (uc *AuthUC) verifyOTPCode(ctx context.Context, accountID uuid.UUID, submitted string) (models.OTPVerifyResult, error) {
	otp, err := uc.authRepo.GetLatestLiveOTP(ctx, accountID)
	if err != nil {
		return models.OTPVerifyResult{}, fmt.Errorf("failed to load otp credential: %w", err)
	}
	if otp == nil {
		return models.OTPVerifyResult{Outcome: models.OTPExpired}, nil
	}

	if otp.FailedAttempts >= models.MaxOTPAttempts {
		if err := uc.authRepo.RetireOTP(ctx, otp.ID); err != nil {
			return models.OTPVerifyResult{}, err
		}
		return models.OTPVerifyResult{Outcome: models.OTPMaxAttempts}, nil
	}

	// Exact string comparison, no normalization
	if otp.Code != submitted {
		attempts, err := uc.authRepo.IncrementOTPAttempts(ctx, otp.ID)
		if err != nil {
			return models.OTPVerifyResult{}, err
		}
		if attempts >= models.MaxOTPAttempts {
			if err := uc.authRepo.RetireOTP(ctx, otp.ID); err != nil {
				return models.OTPVerifyResult{}, err
			}
			return models.OTPVerifyResult{Outcome: models.OTPMaxAttempts}, nil
		}
		return models.OTPVerifyResult{
			Outcome:           models.OTPWrongCode,
			AttemptsRemaining: models.MaxOTPAttempts - attempts,
		}, nil
	}

	// A concurrent submission may have consumed the credential between the
	// read and this write; only one caller wins the guarded update.
	if err := uc.authRepo.ConsumeOTP(ctx, accountID, otp.ID); err != nil {
		logger.Warn("OTP consumption lost race",
			logger.String("account_id", accountID.String()),
			logger.Err(err))
		return models.OTPVerifyResult{Outcome: models.OTPExpired}, nil
	}

	return models.OTPVerifyResult{Outcome: models.OTPValid}, nil
}

// VerifyOTP validates a submitted code and, on success, issues a session:
// an access token, a refresh token, and the public profile projection.
func (uc *AuthUC) VerifyOTP(ctx context.Context, input *models.VerifyOTPInput) (*models.AuthSession, error) {
	account, err := uc.authRepo.GetAccountByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	if !account.IsActive {
		return nil, auth.ErrInvalidCredentials
	}

	result, err := uc.verifyOTPCode(ctx, account.ID, input.Code)
	if err != nil {
		return nil, err
	}
	if result.Outcome != models.OTPValid {
		logger.Info("OTP verification failed",
			logger.String("account_id", account.ID.String()),
			logger.Int("outcome", int(result.Outcome)),
			logger.Int("attempts_remaining", result.AttemptsRemaining))
		return nil, auth.ErrInvalidCredentials
	}

	return uc.openSession(ctx, account, input.IP, input.UserAgent)
}

// openSession issues the token pair and profile for a freshly verified
// account.
func (uc *AuthUC) openSession(ctx context.Context, account *models.Account, ip, userAgent string) (*models.AuthSession, error) {
	session, err := uc.issueAccessSession(ctx, account)
	if err != nil {
		return nil, err
	}

	plaintext, refreshExpiry, err := uc.issueRefreshToken(ctx, account.ID, ip, userAgent)
	if err != nil {
		return nil, err
	}
	session.RefreshToken = plaintext
	session.RefreshExpiresAt = refreshExpiry

	now := time.Now()
	if err := uc.authRepo.UpdateLastLogin(ctx, account.ID, now); err != nil {
		logger.Warn("Failed to record last login",
			logger.String("account_id", account.ID.String()),
			logger.Err(err))
	}

	logger.Info("Login successful",
		logger.String("account_id", account.ID.String()),
		logger.String("employee_id", account.EmployeeID),
		logger.String("role", string(account.Role)))

	return session, nil
}
