package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"

	"nextstep/config"
	"nextstep/internal/domain/service"
	"nextstep/internal/errors"
)

type otpGenerator struct {
	length int
}

// NewOTPGenerator returns a generator of numeric verification codes.
func NewOTPGenerator(cfg *config.Config) service.OTPGenerator {
	length := 6
	if cfg != nil && cfg.Auth != nil && cfg.Auth.OTPLength > 0 {
		length = cfg.Auth.OTPLength
	}

	return &otpGenerator{length: length}
}

func (g *otpGenerator) Generate() (string, error) {
	var b strings.Builder
	b.Grow(g.length)

	ten := big.NewInt(10)
	for range g.length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}

// Hash returns the hex SHA-256 digest of the trimmed code.
func (g *otpGenerator) Hash(code string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(code)))

	return hex.EncodeToString(sum[:])
}
