package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrEmptyEmail = errors.New("email is required")
)

// Email é um value object que garante que emails sejam sempre normalizados
// (sem espaços nas pontas e em minúsculas). Formato não é validado.
type Email struct {
	value string
}

// NewEmail cria um novo Email normalizado
func NewEmail(email string) (Email, error) {
	email = NormalizeEmail(email)

	if email == "" {
		return Email{}, ErrEmptyEmail
	}

	return Email{value: email}, nil
}

// NormalizeEmail aplica trim e lower-case
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// Equals compara dois emails normalizados
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
