package service

import "passmanager/internal/domain/entity"

// QRCodeService renders stored entries as scannable QR codes.
type QRCodeService interface {
	// GenerateEntryQR returns a PNG image encoding the entry's service, username and password.
	GenerateEntryQR(entry *entity.ServicePassword) ([]byte, error)
}
