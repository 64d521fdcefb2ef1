package service

import (
	"cabinet/internal/domain/entity"
)

// QRCodeService defines the interface for rendering the device identity as a QR code
type QRCodeService interface {
	// IdentityText renders the QR code as block characters for a terminal
	IdentityText(identity entity.DeviceIdentity) (string, error)

	// IdentityPNG renders the QR code as a PNG image
	IdentityPNG(identity entity.DeviceIdentity, size int) ([]byte, error)

	// ParseIdentity reads a device identity back from scanned QR content
	ParseIdentity(qrData string) (entity.DeviceIdentity, error)
}
