package utils

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPasswordPolicy applique la règle des comptes : 7 caractères minimum
// et jamais le mot « password » dedans, quelle que soit la casse.
func CheckPasswordPolicy(password string) error {
	if len(password) < 7 {
		return errors.New("Le mot de passe doit contenir au moins 7 caractères.")
	}
	if strings.Contains(strings.ToLower(password), "password") {
		return errors.New("Le mot de passe ne peut pas contenir « password ».")
	}
	return nil
}
