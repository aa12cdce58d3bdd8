package qrcode

import (
	"encoding/json"

	"passmanager/config"
	"passmanager/internal/domain/entity"
	"passmanager/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const entryPayloadType = "service_password"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// EntryPayload is the JSON document encoded into an exported entry's QR code
type EntryPayload struct {
	Type     string `json:"type"`
	Service  string `json:"service"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// New builds the QR code service from config, injected by Fx.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(256, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateEntryQR renders the entry as a PNG QR code
func (s *qrcodeService) GenerateEntryQR(entry *entity.ServicePassword) ([]byte, error) {
	if entry == nil {
		return nil, errors.New("entry is required")
	}

	content, err := entryPayload(entry)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func entryPayload(entry *entity.ServicePassword) (string, error) {
	data, err := json.Marshal(EntryPayload{
		Type:     entryPayloadType,
		Service:  entry.ServiceName,
		Username: entry.Username,
		Password: entry.Password,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}
