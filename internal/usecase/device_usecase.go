// Package usecase defines the application services the delivery layer calls.
package usecase

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationResult is the body returned to a factory-fresh or rebooting device.
type VerificationResult struct {
	Status    int    `json:"status"`
	APIKey    string `json:"api_key,omitempty"`
	DeviceKey string `json:"device_key,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ActivateInput is what a user supplies to claim a device.
type ActivateInput struct {
	Identifier     string
	ActivationCode string
	Name           string
	ManualButton   bool
	MotorTimingID  *uuid.UUID
}

// DeviceUsecase covers device identity and registration.
type DeviceUsecase interface {
	// Verify is called by devices on boot with their factory credentials.
	Verify(ctx context.Context, identifier, secret string) (*VerificationResult, error)

	// Activate binds a device to userID and issues its device key.
	Activate(ctx context.Context, userID uuid.UUID, input *ActivateInput) (*entity.DeviceOwner, error)

	// Provision registers factory credentials ahead of first contact.
	Provision(ctx context.Context, identifier, secret string) (*entity.Device, error)

	// ActivationQRCode renders the packaging QR code for a device.
	ActivationQRCode(identifier, secret string) ([]byte, error)
}
