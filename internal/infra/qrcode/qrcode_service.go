package qrcode

import (
	"encoding/json"

	"labgas/config"
	"labgas/internal/domain/entity"
	"labgas/internal/domain/service"
	"labgas/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	labelType   = "cylinder"
	defaultSize = 256
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// LabelPayload is the JSON encoded in a cylinder label
type LabelPayload struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// NewQRCodeService creates the label renderer from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:  size,
		level: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCylinderLabel renders a PNG whose payload identifies the cylinder
func (s *qrcodeService) GenerateCylinderLabel(cylinder *entity.Cylinder) ([]byte, error) {
	if cylinder == nil || cylinder.ID <= 0 {
		return nil, errors.New("cylinder label requires a persisted cylinder")
	}

	payload, err := json.Marshal(LabelPayload{
		Type: labelType,
		ID:   cylinder.ID,
		Code: cylinder.Code,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal label payload")
	}

	png, err := qrcode.Encode(string(payload), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode label")
	}

	return png, nil
}

// ParseCylinderLabel decodes a scanned label payload
func (s *qrcodeService) ParseCylinderLabel(payload string) (int64, string, error) {
	var label LabelPayload
	if err := json.Unmarshal([]byte(payload), &label); err != nil {
		return 0, "", errors.Wrap(err, "unmarshal label payload")
	}

	if label.Type != labelType {
		return 0, "", errors.Errorf("invalid label type: %s", label.Type)
	}

	if label.ID <= 0 || label.Code == "" {
		return 0, "", errors.New("label is missing cylinder id or code")
	}

	return label.ID, label.Code, nil
}
