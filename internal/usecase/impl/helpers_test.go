package impl

import (
	"io"
	"log/slog"
	"time"

	"nextstep/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			TokenTTL:   time.Hour,
			OTPTTL:     10 * time.Minute,
			OTPLength:  6,
		},
		Mentor: &config.MentorConfig{LazyHourlyRate: 30},
	}
}
