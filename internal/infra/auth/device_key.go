package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"petfeeder/config"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/errors"

	"github.com/google/uuid"
)

type hmacDeviceKeyGenerator struct {
	secret []byte
}

// NewDeviceKeyGenerator derives device keys as hex(HMAC-SHA256(secretKey.device, ownerID)).
func NewDeviceKeyGenerator(cfg *config.Config) (service.DeviceKeyGenerator, error) {
	if cfg.SecretKey.Device == "" {
		return nil, errors.New("device key secret must be provided")
	}

	return &hmacDeviceKeyGenerator{secret: []byte(cfg.SecretKey.Device)}, nil
}

func (g *hmacDeviceKeyGenerator) Generate(ownerID uuid.UUID) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(ownerID.String()))

	return hex.EncodeToString(mac.Sum(nil))
}
