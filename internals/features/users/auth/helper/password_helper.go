package helpers

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	reHasLetter = regexp.MustCompile(`[A-Za-z]`)
	reHasNumber = regexp.MustCompile(`[0-9]`)
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

func isAlphaNumeric(s string) bool {
	return reHasLetter.MatchString(s) && reHasNumber.MatchString(s)
}

// ValidatePasswordStrength: min 8 karakter, ada huruf dan angka
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	if !isAlphaNumeric(password) {
		return errors.New("password harus mengandung huruf dan angka")
	}
	return nil
}
