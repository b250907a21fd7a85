package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashToken: HMAC-SHA256(access_token) dalam hex. Yang disimpan di
// token_blacklist hanya hash ini, bukan JWT mentah.
func HashToken(rawAccessToken, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(strings.TrimSpace(rawAccessToken)))
	return hex.EncodeToString(m.Sum(nil))
}
