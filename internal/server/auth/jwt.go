// Package auth issues and verifies the signed bearer tokens handed out at
// login.
package auth

import (
	"errors"
	"time"

	"github.com/foodprint-app/foodprint/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered claims and the account identity. Nothing
// else goes into a token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenIssuer signs and verifies session tokens with a process-wide HMAC
// secret. The secret is injected once at construction; it is read-only
// afterwards and safe to share across requests.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

// NewTokenIssuer returns a TokenIssuer. An empty secret is a configuration
// fault and is rejected here so the process fails at startup rather than on
// the first login.
func NewTokenIssuer(secret []byte, validity time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is not configured")
	}
	return &TokenIssuer{secret: secret, validity: validity}, nil
}

// Issue creates a signed token bound to the given account id, valid from now
// for the configured duration.
func (i *TokenIssuer) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the account id bound to the
// token. Every failure mode (bad signature, malformed structure, expiry)
// comes back as common.ErrInvalidToken; a token is binary valid or invalid.
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
