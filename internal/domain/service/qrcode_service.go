package service

import "labgas/internal/domain/entity"

// QRCodeService renders printable labels
type QRCodeService interface {
	// GenerateCylinderLabel renders a PNG QR code identifying the cylinder
	GenerateCylinderLabel(cylinder *entity.Cylinder) ([]byte, error)

	// ParseCylinderLabel decodes the label payload and returns the cylinder id and code
	ParseCylinderLabel(payload string) (int64, string, error)
}
