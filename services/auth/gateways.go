package auth

import (
	"context"

	"github.com/serahterima/serahterima/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/serahterima/serahterima/services/auth NotifierGW

// NotifierGW delivers login codes to the external mailer. Callers treat
// publish failures as fire-and-forget: logged, never surfaced.
type NotifierGW interface {
	PublishOTPRequested(ctx context.Context, event *models.OTPNotificationEvent) error
}
