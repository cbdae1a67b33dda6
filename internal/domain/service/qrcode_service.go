package service

import "github.com/google/uuid"

// QRCodeService renders QR codes for session join links.
type QRCodeService interface {
	// GenerateSessionQR encodes the meeting link of a booking as a PNG.
	GenerateSessionQR(bookingID uuid.UUID, link string) ([]byte, error)

	// ParseSessionQR decodes the payload produced by GenerateSessionQR.
	ParseSessionQR(qrData string) (bookingID uuid.UUID, link string, err error)
}
