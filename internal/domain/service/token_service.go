package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the claims carried by an access token.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Role   string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed caller-id tokens.
type TokenService interface {
	// GenerateToken signs a token for the user that expires after TTL.
	GenerateToken(userID uuid.UUID, role string) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
