package qrcode

import (
	"encoding/json"
	"testing"

	"nextstep/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func newTestService(size int, level string) *qrcodeService {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level}}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)

	assert.Equal(t, 256, svc.size)
	assert.Equal(t, qrcode.Medium, svc.level)
}

func TestQRCodeService_GenerateSessionQR(t *testing.T) {
	svc := newTestService(128, "M")

	png, err := svc.GenerateSessionQR(uuid.New(), "https://meet.example.com/abc-defg-hij")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(png), 4)
	assert.Equal(t, pngMagic, png[:4])
}

func TestQRCodeService_GenerateSessionQR_EmptyLink(t *testing.T) {
	svc := newTestService(128, "M")

	_, err := svc.GenerateSessionQR(uuid.New(), "")
	assert.Error(t, err)
}

func TestQRCodeService_ParseSessionQR(t *testing.T) {
	svc := newTestService(128, "M")
	bookingID := uuid.New()

	raw, err := json.Marshal(sessionPayload{Type: "session", BookingID: bookingID.String(), Link: "https://meet.example.com/x"})
	require.NoError(t, err)

	gotID, link, err := svc.ParseSessionQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, bookingID, gotID)
	assert.Equal(t, "https://meet.example.com/x", link)
}

func TestQRCodeService_ParseSessionQR_Errors(t *testing.T) {
	svc := newTestService(128, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"type":"subscription","booking_id":"` + uuid.NewString() + `"}`},
		{"bad id", `{"type":"session","booking_id":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.ParseSessionQR(tt.data)
			assert.Error(t, err)
		})
	}
}
