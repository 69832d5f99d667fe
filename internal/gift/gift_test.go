package gift

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap(t *testing.T) {
	secret := []byte("secret")
	now := time.Unix(1_700_000_000, 0)

	tok, err := Wrap([]byte(`{"cookie": "yum", "n": [1, 2]}`), secret, now, time.Hour)
	require.NoError(t, err)
	assert.Len(t, strings.Split(tok, "."), 3)

	got, err := Unwrap(tok, secret, now.Add(time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cookie":"yum","n":[1,2]}`, string(got))
}

func TestWrap_HeaderIsHS256(t *testing.T) {
	tok, err := Wrap([]byte(`1`), []byte("s"), time.Now(), time.Hour)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(strings.Split(tok, ".")[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(raw))
}

func TestWrap_InvalidJSON(t *testing.T) {
	_, err := Wrap([]byte(`{"open":`), []byte("s"), time.Now(), time.Hour)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUnwrap_Expired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	tok, err := Wrap([]byte(`true`), []byte("s"), now, time.Hour)
	require.NoError(t, err)

	_, err = Unwrap(tok, []byte("s"), now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestUnwrap_Invalid(t *testing.T) {
	now := time.Now()
	tok, err := Wrap([]byte(`"present"`), []byte("s"), now, time.Hour)
	require.NoError(t, err)

	tests := map[string]string{
		"wrong secret": tok,
		"tampered":     tok + "x",
		"two parts":    strings.Join(strings.Split(tok, ".")[:2], "."),
		"garbage":      "not-a-token",
	}
	for name, token := range tests {
		secret := []byte("s")
		if name == "wrong secret" {
			secret = []byte("other")
		}
		_, err := Unwrap(token, secret, now)
		assert.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestUnwrap_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	secret := []byte("s")
	c := claims{
		JSON:             `"present"`,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString(secret)
	require.NoError(t, err)
	_, err = Unwrap(hs512, secret, now)
	assert.ErrorIs(t, err, ErrInvalid)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = Unwrap(none, secret, now)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUnwrap_RequiresExpiry(t *testing.T) {
	secret := []byte("s")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{JSON: `1`}).SignedString(secret)
	require.NoError(t, err)

	_, err = Unwrap(tok, secret, time.Now())
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUnwrap_ClaimMustBeJSON(t *testing.T) {
	now := time.Now()
	secret := []byte("s")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		JSON:             "{not json",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = Unwrap(tok, secret, now)
	assert.ErrorIs(t, err, ErrInvalid)
}
