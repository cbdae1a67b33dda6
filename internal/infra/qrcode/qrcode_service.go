package qrcode

import (
	"encoding/json"

	"nextstep/config"
	"nextstep/internal/domain/service"
	"nextstep/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const sessionPayloadType = "session"

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// sessionPayload is the JSON encoded into a session QR code.
type sessionPayload struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	Link      string `json:"link"`
}

// NewQRCodeService builds a QR renderer from config.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:  size,
		level: parseRecoveryLevel(level),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
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

// GenerateSessionQR renders the booking's meeting link as a PNG.
func (s *qrcodeService) GenerateSessionQR(bookingID uuid.UUID, link string) ([]byte, error) {
	if link == "" {
		return nil, errors.New("session link is empty")
	}

	data, err := json.Marshal(sessionPayload{
		Type:      sessionPayloadType,
		BookingID: bookingID.String(),
		Link:      link,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	code, err := qrcode.New(string(data), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParseSessionQR decodes a scanned session payload.
func (s *qrcodeService) ParseSessionQR(qrData string) (uuid.UUID, string, error) {
	var payload sessionPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if payload.Type != sessionPayloadType {
		return uuid.Nil, "", errors.Errorf("invalid QR code type: %s", payload.Type)
	}

	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to parse booking ID")
	}

	return bookingID, payload.Link, nil
}
