package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/serahterima/serahterima/internal/pkg/logger"
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/services/auth"
)

// CreateAccount binds a new account to a not-yet-bound employee.
func (uc *AuthUC) CreateAccount(ctx context.Context, actorID uuid.UUID, req *models.CreateAccountRequest) (*models.Account, error) {
	if !req.Role.Valid() {
		return nil, auth.ErrInvalidRole
	}

	employee, err := uc.authRepo.GetEmployeeByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	_, err = uc.authRepo.GetAccountByEmployeeID(ctx, req.EmployeeID)
	if err == nil {
		return nil, auth.ErrAccountExists
	}
	if !errors.Is(err, auth.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	account := &models.Account{
		EmployeeRef: employee.ID,
		EmployeeID:  employee.EmployeeID,
		Role:        req.Role,
		IsActive:    true,
		CreatedBy:   &actorID,
	}
	if err := uc.authRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("Account created",
		logger.String("account_id", account.ID.String()),
		logger.String("employee_id", account.EmployeeID),
		logger.String("role", string(account.Role)),
		logger.String("created_by", actorID.String()))

	return account, nil
}

// ListAccounts returns all accounts for administration.
func (uc *AuthUC) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return uc.authRepo.ListAccounts(ctx)
}

// GetAccount returns a single account by id.
func (uc *AuthUC) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return uc.authRepo.GetAccountByID(ctx, id)
}

// UpdateAccountRole changes an account's role. Acting on one's own account
// is rejected so an admin cannot demote themselves by accident.
func (uc *AuthUC) UpdateAccountRole(ctx context.Context, actorID, accountID uuid.UUID, role models.Role) error {
	if !role.Valid() {
		return auth.ErrInvalidRole
	}
	if actorID == accountID {
		return auth.ErrSelfAction
	}

	if err := uc.authRepo.UpdateAccountRole(ctx, accountID, role); err != nil {
		return err
	}

	logger.Info("Account role updated",
		logger.String("account_id", accountID.String()),
		logger.String("role", string(role)),
		logger.String("updated_by", actorID.String()))

	return nil
}

// SetAccountActive toggles an account's active flag. Deactivation revokes
// every outstanding refresh token of the target in the same call, so a
// deactivated account cannot mint access tokens a moment longer.
func (uc *AuthUC) SetAccountActive(ctx context.Context, actorID, accountID uuid.UUID, active bool) error {
	if actorID == accountID {
		return auth.ErrSelfAction
	}

	if err := uc.authRepo.SetAccountActive(ctx, accountID, active); err != nil {
		return err
	}

	if !active {
		if err := uc.authRepo.RevokeAllRefreshTokens(ctx, accountID); err != nil {
			return fmt.Errorf("failed to revoke sessions on deactivation: %w", err)
		}
	}

	logger.Info("Account status updated",
		logger.String("account_id", accountID.String()),
		logger.Bool("is_active", active),
		logger.String("updated_by", actorID.String()))

	return nil
}
