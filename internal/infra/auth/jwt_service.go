package auth

import (
	"time"

	"petfeeder/config"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultAccessTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
	deviceTTL time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	s := &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: defaultAccessTTL,
		deviceTTL: 365 * 24 * time.Hour,
		now:       time.Now,
	}
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		s.accessTTL = cfg.Auth.AccessTokenTTL
	}
	if cfg.Feeder != nil && cfg.Feeder.DeviceTokenTTL > 0 {
		s.deviceTTL = cfg.Feeder.DeviceTokenTTL
	}

	return s, nil
}

func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.sign(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, s.accessTTL)
}

func (s *jwtService) GenerateDeviceToken(userID, ownerID uuid.UUID) (string, error) {
	return s.sign(&service.Claims{UserID: userID, DeviceOwnerID: &ownerID, Type: service.TokenTypeDevice}, s.deviceTTL)
}

// ValidateToken checks signature, algorithm and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func (s *jwtService) sign(claims *service.Claims, ttl time.Duration) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}
