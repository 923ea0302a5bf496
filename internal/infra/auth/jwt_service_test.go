package auth

import (
	"strings"
	"testing"
	"time"

	"loomtrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "test_secret_key_very_long_for_testing"
	cfg.Auth.TokenDuration = ttl

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("buyer@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims.Email)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.TokenDuration = time.Hour

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsTamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("buyer@example.com")
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := parts[2]
	last := sig[len(sig)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	parts[2] = sig[:len(sig)-1] + string(replacement)

	claims, err := svc.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue("buyer@example.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsTokenFromOtherSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.Auth.Secret = "a_completely_different_secret_key"
	otherCfg.Auth.TokenDuration = time.Hour
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue("buyer@example.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
