package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in Claims.Type.
const (
	TokenTypeAccess = "access"
	TokenTypeDevice = "device"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID        uuid.UUID  `json:"uid"`
	DeviceOwnerID *uuid.UUID `json:"doid,omitempty"`
	Type          string     `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken issues a user token.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// GenerateDeviceToken issues the api_key a feeder presents for its owner.
	GenerateDeviceToken(userID, ownerID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
