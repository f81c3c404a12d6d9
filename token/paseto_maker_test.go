package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSymmetricKey = "01234567890123456789012345678901"

func TestPasetoMaker_RoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	email := "admin@example.com"
	issuedAt := time.Now()
	token, err := maker.CreateToken(email, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := maker.VerifyToken(token)
	require.NoError(t, err)
	require.NotNil(t, payload)

	assert.NotZero(t, payload.ID)
	assert.Equal(t, email, payload.Email)
	assert.WithinDuration(t, issuedAt, payload.IssuedAt, time.Second)
	assert.WithinDuration(t, issuedAt.Add(time.Minute), payload.ExpiredAt, time.Second)
}

func TestPasetoMaker_ExpiredToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	token, err := maker.CreateToken("admin@example.com", time.Millisecond)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	payload, err := maker.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpired)
	assert.Nil(t, payload)
}

func TestPasetoMaker_TamperedToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	token, err := maker.CreateToken("admin@example.com", time.Minute)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + strings.Repeat("x", 2)
	payload, err := maker.VerifyToken(tampered)
	require.Error(t, err)
	assert.Nil(t, payload)
}

func TestNewPasetoMaker_RejectsShortKey(t *testing.T) {
	maker, err := NewPasetoMaker("too-short")
	require.Error(t, err)
	assert.Nil(t, maker)
}
