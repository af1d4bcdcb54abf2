package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// APIKeyPrefix starts every project API key.
	APIKeyPrefix = "mk_"

	apiKeyBodyLen  = 26
	apiKeyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateAPIKey returns a new project key: the mk_ prefix followed by 26
// random lowercase alphanumerics drawn from crypto/rand.
func GenerateAPIKey() (string, error) {
	var b strings.Builder
	b.Grow(len(APIKeyPrefix) + apiKeyBodyLen)
	b.WriteString(APIKeyPrefix)

	max := big.NewInt(int64(len(apiKeyAlphabet)))
	for range apiKeyBodyLen {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate api key: %w", err)
		}
		b.WriteByte(apiKeyAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// IsAPIKeyFormat reports whether key looks like a key from GenerateAPIKey.
func IsAPIKeyFormat(key string) bool {
	body, ok := strings.CutPrefix(key, APIKeyPrefix)
	if !ok || len(body) != apiKeyBodyLen {
		return false
	}
	for i := 0; i < len(body); i++ {
		if !strings.ContainsRune(apiKeyAlphabet, rune(body[i])) {
			return false
		}
	}
	return true
}
