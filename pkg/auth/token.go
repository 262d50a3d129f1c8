package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

type TokenServiceInterface interface {
	Generate() (string, error)
}

// TokenService issues opaque session tokens. Tokens carry no claims; the
// sessions table is the source of truth for ownership and expiry.
type TokenService struct{}

// Generate returns a v4 UUID extended with 8 random bytes, 53 characters
// total.
func (s *TokenService) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate token suffix: %w", err)
	}

	return id.String() + "-" + hex.EncodeToString(suffix), nil
}
