// Package password concentra la política de hash de contraseñas.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash hashea con bcrypt (costo por defecto).
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Matches compara una contraseña en claro con su hash.
func Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
