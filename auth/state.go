package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	apperrors "github.com/paletogarage/auth-gateway/internal/errors"
)

// The OAuth state parameter is a short-lived signed token minted when the
// login redirect is issued and required back on the callback. It is
// self-contained, the gateway keeps no in-flight login state.

// NewStateToken signs a state token valid for ttl.
func NewStateToken(secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", apperrors.Wrapf(err, "sign state token")
	}
	return token, nil
}

// VerifyStateToken checks the signature and expiry of a callback's state
// parameter. Any failure maps to ErrInvalidState.
func VerifyStateToken(secret []byte, token string) error {
	if token == "" {
		return apperrors.ErrInvalidState
	}

	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidState, "parse state token: %v", err)
	}
	return nil
}
