package jwtinfra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_EmptySecret(t *testing.T) {
	_, err := NewProvider("", time.Hour)
	require.Error(t, err)
}

func TestSignAndDecode(t *testing.T) {
	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := p.Sign("account-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := p.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "account-1", claims.Subject)
}

func TestDecode_WrongSecret(t *testing.T) {
	signer, err := NewProvider("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewProvider("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := signer.Sign("account-1")
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	require.Error(t, err)
}

func TestDecode_ExpiredToken(t *testing.T) {
	p, err := NewProvider("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := p.Sign("account-1")
	require.NoError(t, err)

	_, err = p.Decode(token)
	require.Error(t, err)
}

func TestDecode_Garbage(t *testing.T) {
	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = p.Decode("not.a.token")
	require.Error(t, err)
}
