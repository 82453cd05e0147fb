package service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// TokenClaims is the payload embedded in every signed token: just enough
// to identify the subject. No expiry claim is set, so issued tokens stay
// valid until the signing secret changes.
type TokenClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies bearer tokens with the process-wide HS256
// secret. Both access tokens and email-verification tokens share it.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue returns a signed, URL-safe token identifying the given subject.
func (tc *TokenCodec) Issue(id, username string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{ID: id, Username: username})
	return t.SignedString(tc.secret)
}

// Decode verifies the signature and returns the embedded claims. Any
// parse, signature or missing-claim failure yields domain.ErrInvalidToken.
func (tc *TokenCodec) Decode(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
