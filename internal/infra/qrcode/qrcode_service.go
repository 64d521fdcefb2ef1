package qrcode

import (
	"encoding/json"

	"cabinet/config"
	"cabinet/internal/domain/entity"
	"cabinet/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// identityPayloadType marks QR payloads that carry a device identity.
const identityPayloadType = "device"

type qrcodeService struct {
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	GUID string `json:"guid"`
	Type string `json:"type"`
}

// New creates the QR code service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{errorCorrectionLevel: level}
}

// IdentityText renders the identity with half-block characters for a terminal.
func (s *qrcodeService) IdentityText(identity entity.DeviceIdentity) (string, error) {
	qrCode, err := s.encode(identity)
	if err != nil {
		return "", err
	}

	return qrCode.ToSmallString(false), nil
}

// IdentityPNG renders the identity as a square PNG of size pixels.
func (s *qrcodeService) IdentityPNG(identity entity.DeviceIdentity, size int) ([]byte, error) {
	qrCode, err := s.encode(identity)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrCode.PNG(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseIdentity parses scanned QR content back into a device identity.
func (s *qrcodeService) ParseIdentity(qrData string) (entity.DeviceIdentity, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return entity.DeviceIdentity{}, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != identityPayloadType {
		return entity.DeviceIdentity{}, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	identity, err := entity.ParseDeviceIdentity(data.GUID)
	if err != nil {
		return entity.DeviceIdentity{}, errors.Wrap(err, "failed to parse device identity")
	}

	return identity, nil
}

func (s *qrcodeService) encode(identity entity.DeviceIdentity) (*qrcode.QRCode, error) {
	if identity.IsZero() {
		return nil, errors.New("device identity is not set")
	}

	jsonData, err := json.Marshal(QRCodeData{GUID: identity.String(), Type: identityPayloadType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	return qrCode, nil
}
