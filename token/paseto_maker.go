package token

import (
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"golang.org/x/crypto/chacha20poly1305"
)

// PasetoMaker issues and verifies symmetric PASETO v2 tokens. One maker is
// shared by the login handlers and the auth middleware, so both sides of
// the access/refresh cookie flow agree on the key.
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

// NewPasetoMaker builds a maker from TOKEN_SYMMETRIC_KEY. The key length is
// fixed by the chacha20poly1305 cipher; anything else is a configuration
// mistake worth failing fast on.
func NewPasetoMaker(symmetricKey string) (Maker, error) {
	if len(symmetricKey) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("token key must be exactly %d bytes, got %d", chacha20poly1305.KeySize, len(symmetricKey))
	}

	return &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: []byte(symmetricKey),
	}, nil
}

// CreateToken encrypts a fresh payload for the given email and lifetime
func (maker *PasetoMaker) CreateToken(email string, duration time.Duration) (string, error) {
	payload, err := NewPayload(email, duration)
	if err != nil {
		return "", fmt.Errorf("failed to create token payload: %w", err)
	}

	encrypted, err := maker.paseto.Encrypt(maker.symmetricKey, payload, nil)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt token: %w", err)
	}

	return encrypted, nil
}

// VerifyToken decrypts a token and checks its expiry, returning the payload
func (maker *PasetoMaker) VerifyToken(token string) (*Payload, error) {
	payload := &Payload{}

	if err := maker.paseto.Decrypt(token, maker.symmetricKey, payload, nil); err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if err := payload.Valid(); err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return payload, nil
}
