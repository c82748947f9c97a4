package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/serahterima/serahterima/internal/pkg/constants"
	"github.com/serahterima/serahterima/internal/pkg/logger"
	"github.com/serahterima/serahterima/internal/pkg/models"
	natspkg "github.com/serahterima/serahterima/internal/pkg/nats"
	"github.com/serahterima/serahterima/internal/pkg/retry"
)

// NATSGateway implements the notifier gateway over NATS.
type NATSGateway struct {
	client  *natspkg.Client
	retrier *retry.Retrier
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client:  client,
		retrier: retry.NewWithDefaults(),
	}
}

// PublishOTPRequested publishes a login-code event for the external mailer.
// The event body carries the plaintext code; the subject is consumed only
// by the delivery worker. Transient publish failures are retried with
// backoff before the error is surfaced.
func (g *NATSGateway) PublishOTPRequested(ctx context.Context, event *models.OTPNotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal otp notification: %w", err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.Publish(constants.SubjectOTPRequested, data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish otp notification: %w", err)
	}

	logger.Debug("Published OTP notification",
		logger.String("employee_id", event.EmployeeID))

	return nil
}
