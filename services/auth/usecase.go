package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/serahterima/serahterima/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/serahterima/serahterima/services/auth AuthUC

// AuthUC is the authentication flow controller and token engine contract.
type AuthUC interface {
	// login lifecycle
	RequestOTP(ctx context.Context, input *models.RequestOTPInput) error
	VerifyOTP(ctx context.Context, input *models.VerifyOTPInput) (*models.AuthSession, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthSession, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, accountID uuid.UUID) error
	Me(ctx context.Context, accountID uuid.UUID) (*models.UserProfile, error)

	// account administration
	CreateAccount(ctx context.Context, actorID uuid.UUID, req *models.CreateAccountRequest) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	UpdateAccountRole(ctx context.Context, actorID, accountID uuid.UUID, role models.Role) error
	SetAccountActive(ctx context.Context, actorID, accountID uuid.UUID, active bool) error

	// credential cleanup
	CleanupCredentials(ctx context.Context) error
}
