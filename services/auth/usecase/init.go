package usecase

import (
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/services/auth"
)

// AuthUC orchestrates the OTP engine and token engine over the credential
// store.
type AuthUC struct {
	authRepo   auth.AuthRepo
	notifierGW auth.NotifierGW
	cfg        *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	notifierGW auth.NotifierGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo:   authRepo,
		notifierGW: notifierGW,
		cfg:        cfg,
	}
}
