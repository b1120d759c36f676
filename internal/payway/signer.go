package payway

import (
	"crypto/hmac"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// Signer computes the keyed HMAC-SHA512 hashes the gateway requires on
// every purchase request and pushback.
type Signer struct {
	key []byte
}

// NewSigner creates a signer for the merchant's API key.
func NewSigner(key []byte) (*Signer, error) {
	if len(key) == 0 {
		return nil, ErrConfiguration
	}
	return &Signer{key: key}, nil
}

// SignBase64 returns the Base64-encoded hash of message. This is the
// encoding the purchase endpoint expects.
func (s *Signer) SignBase64(message string) string {
	return base64.StdEncoding.EncodeToString(s.sum(message))
}

// SignHex returns the hex-encoded hash of message. The older generate-qr
// endpoint accepts hex digests.
func (s *Signer) SignHex(message string) string {
	return hex.EncodeToString(s.sum(message))
}

func (s *Signer) sum(message string) []byte {
	mac := hmac.New(sha512.New, s.key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// HashEqual compares two encoded hashes in constant time.
func HashEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
