package validation

import (
	"fmt"
	"regexp"
)

// ProviderPattern определяет допустимый ключ провайдера
var ProviderPattern = regexp.MustCompile(`^[a-z0-9_]{2,32}$`)

// ValidateProvider проверяет ключ провайдера API
func ValidateProvider(provider string) error {
	if provider == "" {
		return fmt.Errorf("provider cannot be empty")
	}

	if !ProviderPattern.MatchString(provider) {
		return fmt.Errorf("provider must be 2-32 characters of lowercase letters, numbers and underscores")
	}

	return nil
}
