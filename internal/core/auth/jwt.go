package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-course-platform/internal/domain"
)

type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// JWTer issues and verifies HS256 tokens. Verification is a pure function of
// token + secret + clock, so any process holding the same secret can verify
// tokens minted by any other — no call back to the issuer.
type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	// Leeway absorbs clock drift between independently deployed verifiers.
	Leeway time.Duration
}

const DefaultLeeway = 60 * time.Second

func (j *JWTer) leeway() time.Duration {
	if j.Leeway > 0 {
		return j.Leeway
	}
	return DefaultLeeway
}

// Issue mints a token for uid and returns it with its expiry time.
func (j *JWTer) Issue(uid string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(j.TTL)
	claims := Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies signature and validity window and returns the claims.
// Failures carry distinct domain codes so tests can tell an expired token
// from a forged one; the HTTP gate flattens them all to UNAUTHENTICATED.
func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg %v", token.Header["alg"])
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(j.leeway()))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.Wrap(domain.CodeExpired, "token expired", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.Wrap(domain.CodeBadSignature, "bad signature", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.Wrap(domain.CodeMalformedToken, "malformed token", err)
		default:
			return nil, domain.Wrap(domain.CodeUnauthenticated, "invalid token", err)
		}
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.UID == "" {
		return nil, domain.E(domain.CodeUnauthenticated, "invalid token")
	}
	return c, nil
}
