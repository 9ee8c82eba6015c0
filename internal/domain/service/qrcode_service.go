package service

// QRCodeService renders activation codes for feeder packaging.
type QRCodeService interface {
	// ActivationURL returns the link a phone opens to activate the device.
	ActivationURL(identifier, secret string) string

	// GenerateActivationQR returns a PNG encoding ActivationURL.
	GenerateActivationQR(identifier, secret string) ([]byte, error)
}
