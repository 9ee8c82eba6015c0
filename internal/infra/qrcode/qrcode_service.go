package qrcode

import (
	"net/url"
	"strings"

	"petfeeder/internal/domain/service"
	"petfeeder/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              baseURL,
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// parseRecoveryLevel accepts the single-letter levels and their names.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ActivationURL appends device_id and device_key to the configured page,
// keeping any query the page already has.
func (s *qrcodeService) ActivationURL(identifier, secret string) string {
	values := url.Values{}
	values.Set("device_id", identifier)
	values.Set("device_key", secret)

	sep := "?"
	if strings.Contains(s.baseURL, "?") {
		sep = "&"
	}

	return s.baseURL + sep + values.Encode()
}

func (s *qrcodeService) GenerateActivationQR(identifier, secret string) ([]byte, error) {
	qrCode, err := qrcode.New(s.ActivationURL(identifier, secret), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
