package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenStr, payload, err := maker.CreateToken(42, "royce@example.com", "customer", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	require.NotNil(t, payload)

	verified, err := maker.VerifyToken(tokenStr)
	require.NoError(t, err)
	require.Equal(t, payload.ID, verified.ID)
	require.Equal(t, uint(42), verified.UserID)
	require.Equal(t, "royce@example.com", verified.UPN)
	require.Equal(t, "customer", verified.Role)
}

func TestJWTMakerExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenStr, _, err := maker.CreateToken(42, "royce@example.com", "customer", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(tokenStr)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTMakerInvalidToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	_, err = maker.VerifyToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMakerTamperedToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenStr, _, err := maker.CreateToken(42, "royce@example.com", "customer", time.Minute)
	require.NoError(t, err)

	// 換掉簽章
	parts := strings.Split(tokenStr, ".")
	require.Len(t, parts, 3)
	parts[2] = "tampered"

	_, err = maker.VerifyToken(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMakerShortSecret(t *testing.T) {
	_, err := NewJWTMaker("too-short")
	require.Error(t, err)
}
