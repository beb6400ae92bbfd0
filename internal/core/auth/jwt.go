package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretNotSet = errors.New("jwt secret is not set")
	ErrInvalidToken = errors.New("invalid token")
)

// Payload is the identity carried by every issued token.
type Payload struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Claims struct {
	Payload
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret   []byte
	Issuer   string
	LoginTTL time.Duration // issued on login, default 3h
	TTL      time.Duration // everything else, default 24h
}

func (j *JWTer) Issue(p Payload, ttl time.Duration) (string, error) {
	if len(j.Secret) == 0 {
		return "", ErrSecretNotSet
	}
	if ttl == 0 {
		ttl = j.TTL
	}
	now := time.Now()
	claims := Claims{
		Payload: p,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	if len(j.Secret) == 0 {
		return nil, ErrSecretNotSet
	}
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, ErrInvalidToken
}
