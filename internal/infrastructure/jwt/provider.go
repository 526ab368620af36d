package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the account id travels as the registered
// subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Provider signs and decodes HS256 JWTs with a shared secret.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(secret string, expiry time.Duration) (*Provider, error) {
	if secret == "" {
		return nil, errors.New("jwt: signing secret must not be empty")
	}
	return &Provider{secret: []byte(secret), expiry: expiry}, nil
}

// Sign issues a token carrying sub as subject, expiring after the
// configured duration.
func (p *Provider) Sign(sub string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Decode verifies the signature and expiry and returns the claims.
func (p *Provider) Decode(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
