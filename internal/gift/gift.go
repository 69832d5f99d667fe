// Package gift wraps arbitrary JSON into an HS256 signed JWT carried by the
// "gift" cookie and unwraps it again.
package gift

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the wrapped gift.
const CookieName = "gift"

var (
	ErrInvalid = errors.New("invalid gift")
	ErrExpired = errors.New("gift expired")
)

type claims struct {
	JSON string `json:"json"`
	jwt.RegisteredClaims
}

// Wrap signs the compact form of the JSON document v. The token expires ttl
// after now.
func Wrap(v json.RawMessage, secret []byte, now time.Time, ttl time.Duration) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, v); err != nil {
		return "", ErrInvalid
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		JSON: compact.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

// Unwrap checks the token signature and expiry and returns the wrapped JSON.
// Only HS256 tokens carrying an expiry are accepted.
func Unwrap(token string, secret []byte, now time.Time) (json.RawMessage, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case err != nil:
		return nil, ErrInvalid
	}

	if !json.Valid([]byte(c.JSON)) {
		return nil, ErrInvalid
	}
	return json.RawMessage(c.JSON), nil
}
