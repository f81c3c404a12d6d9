package token

import "time"

// Maker creates and verifies auth tokens. Keeping it behind an interface
// lets the middleware and tests swap implementations.
type Maker interface {
	CreateToken(email string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
