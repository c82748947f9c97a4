package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
)

// otpCodeSpace covers every 6-digit value, 000000 through 999999.
var otpCodeSpace = big.NewInt(1000000)

// refreshSecretBytes is the entropy of a refresh token secret.
const refreshSecretBytes = 32

// GenerateOTPCode returns a zero-padded 6-digit code drawn from a
// cryptographically secure source.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// GenerateRefreshSecret returns a 256-bit random secret encoded as
// unpadded base64url. This plaintext is handed to the client once and is
// never persisted.
func GenerateRefreshSecret() (string, error) {
	buf := make([]byte, refreshSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashRefreshSecret computes the hex HMAC-SHA256 of a refresh secret under
// the server's refresh key. Only this value is stored, so a database read
// yields neither the plaintext nor anything that verifies as one.
func HashRefreshSecret(secret, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}
