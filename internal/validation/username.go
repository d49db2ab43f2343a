package validation

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// UsernamePattern определяет допустимый формат username
// Латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_) и иероглифы CJK
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\x{4e00}-\x{9fa5}]+$`)

const (
	// MinUsernameLen минимальная длина username (в символах)
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username (в символах)
	MaxUsernameLen = 20

	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxPasswordLen максимальная длина пароля
	MaxPasswordLen = 50
)

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: латинские буквы, цифры, нижнее подчеркивание и иероглифы
// Длина: 3-20 символов
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	n := utf8.RuneCountInString(username)
	if n < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if n > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores and Chinese characters")
	}

	return nil
}

// ValidatePassword проверяет требования к паролю
// Длина 6-50 символов, минимум одна буква и одна цифра
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	n := utf8.RuneCountInString(password)
	if n < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	if n > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		// только ASCII буквы и цифры
		switch {
		case r < utf8.RuneSelf && unicode.IsLetter(r):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain both letters and numbers")
	}

	return nil
}
