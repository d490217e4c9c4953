package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-course-platform/internal/domain"
)

func newTestJWTer() *JWTer {
	return &JWTer{
		Secret: []byte("test-secret"),
		Issuer: "course-platform",
		TTL:    24 * time.Hour,
	}
}

func TestJWTer_RoundTrip(t *testing.T) {
	j := newTestJWTer()

	token, exp, err := j.Issue("u42")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(j.TTL), exp, time.Minute)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u42", claims.UID)
	assert.Equal(t, "u42", claims.Subject)
}

func TestJWTer_Expired(t *testing.T) {
	// TTL past the default 60s leeway.
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "course-platform", TTL: -2 * time.Minute}

	token, _, err := j.Issue("u42")
	require.NoError(t, err)

	_, err = j.Parse(token)
	require.Error(t, err)
	assert.Equal(t, domain.CodeExpired, domain.CodeOf(err))
}

func TestJWTer_LeewayToleratesClockDrift(t *testing.T) {
	// Expired 30s ago: inside the 60s leeway window, so still accepted.
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "course-platform", TTL: -30 * time.Second}

	token, _, err := j.Issue("u42")
	require.NoError(t, err)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u42", claims.UID)
}

func TestJWTer_TamperedSignature(t *testing.T) {
	j := newTestJWTer()

	token, _, err := j.Issue("u42")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	mid := len(parts[2]) / 2
	parts[2] = parts[2][:mid] + flip(parts[2][mid]) + parts[2][mid+1:]

	_, err = j.Parse(strings.Join(parts, "."))
	require.Error(t, err)
	assert.Equal(t, domain.CodeBadSignature, domain.CodeOf(err))
}

func TestJWTer_TamperedPayload(t *testing.T) {
	j := newTestJWTer()

	token, _, err := j.Issue("u42")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	// Flip a char in the middle of the payload; the last char may carry
	// only padding bits.
	mid := len(parts[1]) / 2
	parts[1] = parts[1][:mid] + flip(parts[1][mid]) + parts[1][mid+1:]

	_, err = j.Parse(strings.Join(parts, "."))
	require.Error(t, err)
	code := domain.CodeOf(err)
	assert.Contains(t,
		[]domain.Code{domain.CodeBadSignature, domain.CodeMalformedToken, domain.CodeUnauthenticated},
		code)
}

func TestJWTer_WrongSecret(t *testing.T) {
	j := newTestJWTer()
	token, _, err := j.Issue("u42")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("rotated-secret"), Issuer: "course-platform", TTL: 24 * time.Hour}
	_, err = other.Parse(token)
	require.Error(t, err)
	assert.Equal(t, domain.CodeBadSignature, domain.CodeOf(err))
}

func TestJWTer_Malformed(t *testing.T) {
	j := newTestJWTer()

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := j.Parse(tok)
		require.Error(t, err, "token %q", tok)
		assert.Equal(t, domain.CodeMalformedToken, domain.CodeOf(err), "token %q", tok)
	}
}

func flip(b byte) string {
	if b == 'A' {
		return "B"
	}
	return "A"
}
