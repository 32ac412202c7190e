package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	secret := []byte("test-secret")
	tok, claims, err := GenerateJWT("admin", time.Hour, secret)
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)

	got, err := VerifyJWT(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, claims.ID, got.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyJWTRejects(t *testing.T) {
	secret := []byte("test-secret")

	expired, _, err := GenerateJWT("admin", -time.Minute, secret)
	require.NoError(t, err)
	_, err = VerifyJWT(expired, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, _, err := GenerateJWT("admin", time.Hour, secret)
	require.NoError(t, err)
	_, err = VerifyJWT(valid, []byte("other-secret"))
	assert.Error(t, err)

	_, err = VerifyJWT("garbled.token.value", secret)
	assert.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "admin"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = VerifyJWT(unsigned, secret)
	assert.Error(t, err)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	_, _, err := GenerateJWT("admin", time.Hour, nil)
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "argon2id$v=19$"))

	assert.NoError(t, VerifyPassword(hash, "s3cret"))
	assert.ErrorIs(t, VerifyPassword(hash, "wrong"), ErrPasswordMismatch)
	assert.Error(t, VerifyPassword("not-a-hash", "s3cret"))

	other, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salts must differ")
}

func TestConstantTimeEqual(t *testing.T) {
	assert.True(t, ConstantTimeEqual("admin", "admin"))
	assert.False(t, ConstantTimeEqual("admin", "admin2"))
	assert.False(t, ConstantTimeEqual("", "admin"))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"photo.png":            "photo.png",
		"my photo (1).jpg":     "my-photo--1-.jpg",
		"../../etc/passwd":     "passwd",
		"C:\\Users\\me\\a.gif": "a.gif",
		"":                     "upload",
		"ünï.png":              "n-.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFileName(in), in)
	}
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret(32)
	require.NoError(t, err)
	b, err := RandomSecret(32)
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
