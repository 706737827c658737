package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-123"

func testCodec() *Codec {
	return NewCodec(testSecret, 15*time.Minute, 7*24*time.Hour)
}

func TestCodec_AccessRoundTrip(t *testing.T) {
	codec := testCodec()

	signed, err := codec.SignAccess("user-1", "test@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := codec.VerifyAccess(signed)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestCodec_RefreshRoundTrip(t *testing.T) {
	codec := testCodec()

	signed, err := codec.SignRefresh("user-1")
	assert.NoError(t, err)

	claims, err := codec.VerifyRefresh(signed)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Empty(t, claims.Email)
	assert.Equal(t, TypeRefresh, claims.Type)
}

func TestCodec_RefreshTokenFailsAccessCheck(t *testing.T) {
	codec := testCodec()

	refresh, err := codec.SignRefresh("user-1")
	assert.NoError(t, err)

	_, err = codec.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrMalformedClaims)
}

func TestCodec_AccessTokenFailsRefreshCheck(t *testing.T) {
	codec := testCodec()

	access, err := codec.SignAccess("user-1", "test@example.com")
	assert.NoError(t, err)

	_, err = codec.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrMalformedClaims)
}

func TestVerifier_WrongSecret(t *testing.T) {
	codec := testCodec()
	signed, err := codec.SignAccess("user-1", "test@example.com")
	assert.NoError(t, err)

	other := NewVerifier("completely-different-secret")
	_, err = other.VerifyAccess(signed)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifier_Expired(t *testing.T) {
	codec := testCodec()
	codec.now = func() time.Time { return time.Now().Add(-time.Hour) }

	signed, err := codec.SignAccess("user-1", "test@example.com")
	assert.NoError(t, err)

	_, err = codec.VerifyAccess(signed)
	assert.ErrorIs(t, err, ErrExpired)

	refresh, err := codec.SignRefresh("user-1")
	assert.NoError(t, err)
	_, err = codec.VerifyRefresh(refresh)
	assert.NoError(t, err, "refresh TTL is much longer than an hour")
}

func TestVerifier_Garbage(t *testing.T) {
	v := NewVerifier(testSecret)

	_, err := v.VerifyAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrMalformedClaims)

	_, err = v.VerifyRefresh("")
	assert.ErrorIs(t, err, ErrMalformedClaims)
}

func TestCodec_RefreshExpiry(t *testing.T) {
	codec := testCodec()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return base }

	assert.Equal(t, base.Add(7*24*time.Hour), codec.RefreshExpiry())
	assert.Equal(t, 15*time.Minute, codec.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, codec.RefreshTTL())
}
