package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Generate(42)
	req.NoError(err)
	req.NotEmpty(token)

	userID, err := issuer.Verify(token)
	req.NoError(err)
	req.Equal(int64(42), userID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	req := require.New(t)

	token, err := NewTokenIssuer("secret-a", time.Hour).Generate(42)
	req.NoError(err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Verify(token)
	req.Error(err)
}

func TestTokenExpiredRejected(t *testing.T) {
	req := require.New(t)

	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Generate(42)
	req.NoError(err)

	_, err = issuer.Verify(token)
	req.Error(err)
}

func TestTokenGarbageRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	_, err := issuer.Verify("not.a.token")
	require.Error(t, err)
}
