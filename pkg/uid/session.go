package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateTokenID generates a random ID that tags a single issued game token
func GenerateTokenID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate token ID: %v", err)
	}
	return hex.EncodeToString(bytes), nil
}
