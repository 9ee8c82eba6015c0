package middleware

import (
	"strings"

	"petfeeder/internal/delivery/api/response"
	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID    = "userID"
	keyDeviceKey = "deviceKey"
	keyClaims    = "claims"
)

// AuthMiddleware validates bearer tokens for user and device routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate accepts user access tokens only.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.claims(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "User token required")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyClaims, claims)

		return next(c)
	}
}

// AuthenticateDevice accepts a user token or the api_key issued at verify,
// together with the X-Device-Key header. The binding itself is resolved by
// the use case.
func (m *AuthMiddleware) AuthenticateDevice(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.claims(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deviceKey := strings.TrimSpace(c.Request().Header.Get(constants.HeaderDeviceKey))
		if deviceKey == "" {
			return response.Unauthorized(c, "DEVICE_KEY_INVALID", "Invalid device key.")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyClaims, claims)
		c.Set(keyDeviceKey, deviceKey)

		return next(c)
	}
}

func (m *AuthMiddleware) claims(c echo.Context) (*service.Claims, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return nil, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.UserID == uuid.Nil {
		return nil, false
	}

	return claims, true
}

// GetUserID returns the user authenticated by either middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetDeviceKey returns the X-Device-Key of a device route.
func GetDeviceKey(c echo.Context) (string, bool) {
	key, ok := c.Get(keyDeviceKey).(string)

	return key, ok
}

// GetClaims returns the validated token claims.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok
}
