package payway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignerEmptyKey(t *testing.T) {
	_, err := NewSigner(nil)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewSigner([]byte{})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSignerMatchesReference(t *testing.T) {
	key := []byte("test-api-key")
	s, err := NewSigner(key)
	require.NoError(t, err)

	message := "2026-08-31 10:00:0020260831100000001ec461963" + `1.00[{"name":"Test Product","quantity":1,"price":1}]abapay_khqr`

	mac := hmac.New(sha512.New, key)
	mac.Write([]byte(message))
	want := mac.Sum(nil)

	assert.Equal(t, base64.StdEncoding.EncodeToString(want), s.SignBase64(message))
	assert.Equal(t, hex.EncodeToString(want), s.SignHex(message))
}

func TestSignerDeterministic(t *testing.T) {
	s, err := NewSigner([]byte("k"))
	require.NoError(t, err)

	assert.Equal(t, s.SignBase64("msg"), s.SignBase64("msg"))
	assert.NotEqual(t, s.SignBase64("msg"), s.SignBase64("msg2"))
}

func TestSignerKeySensitivity(t *testing.T) {
	a, err := NewSigner([]byte("key-a"))
	require.NoError(t, err)
	b, err := NewSigner([]byte("key-b"))
	require.NoError(t, err)

	assert.NotEqual(t, a.SignBase64("msg"), b.SignBase64("msg"))
}

func TestHashEqual(t *testing.T) {
	assert.True(t, HashEqual("abc", "abc"))
	assert.False(t, HashEqual("abc", "abd"))
	assert.False(t, HashEqual("abc", "ab"))
	assert.False(t, HashEqual("", "a"))
}
