// Package token issues and verifies the signed session tokens carried in the
// auth cookie. Tokens are stateless: verification is signature + expiry only
// and never consults the user store, so an identity whose role was changed
// (or that was deleted) after sign-in keeps its minted claims until expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

const DefaultTTL = 7 * 24 * time.Hour

var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token signature invalid")

// Issuer signs and verifies session tokens with a symmetric key loaded once
// at startup. It is safe for concurrent use: the key is never mutated.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints an HS256-signed token embedding the identity's id, email and
// role, expiring after the configured TTL.
func (i *Issuer) Issue(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id": identity.ID,
		"email":   identity.Email,
		"role":    identity.Role,
		"exp":     time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify validates signature and expiry and reconstructs the embedded
// identity. It performs no I/O.
func (i *Issuer) Verify(tokenString string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return domain.Identity{}, ErrTokenMalformed
		default:
			return domain.Identity{}, ErrTokenInvalid
		}
	}
	if !tkn.Valid {
		return domain.Identity{}, ErrTokenInvalid
	}

	id, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id == "" || !domain.ValidRole(role) {
		return domain.Identity{}, ErrTokenMalformed
	}

	return domain.Identity{ID: id, Email: email, Role: role}, nil
}
