package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coach/config"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	if ttl > 0 {
		cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}
	}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(newTestConfig("", 0))
	require.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_DefaultTTLIsOneWeek(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test-secret", 0))
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, svc.AccessTokenDuration())
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewJWTService(newTestConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue("user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTService_VerifyRejectsMalformedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err = svc.Verify(token)
		assert.Error(t, err)
	}
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	// A negative TTL is not a valid configuration, so build the service by
	// hand to mint an already-expired token.
	svc := &jwtService{secret: "test-secret", accessTTL: -time.Minute}

	token, err := svc.Issue("user@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestJWTService_VerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("user@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	require.Error(t, err)
}
