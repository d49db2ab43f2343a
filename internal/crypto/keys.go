package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	// SaltSize - размер соли для хеширования паролей в байтах
	SaltSize = 16
	// TokenSize - количество случайных байт в токене сессии
	TokenSize = 32
)

// GenerateSalt генерирует криптографически случайную соль указанного размера
func GenerateSalt(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("salt size must be positive, got %d", size)
	}
	salt := make([]byte, size)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateToken создает новый случайный токен сессии (base64url, без padding)
func GenerateToken() (string, error) {
	tokenBytes, err := GenerateSalt(TokenSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(tokenBytes), nil
}

// TokenPrefix returns a short prefix of a token that is safe to log.
func TokenPrefix(token string) string {
	const n = 8
	if len(token) <= n {
		return "***"
	}
	return token[:n] + "..."
}
