package entities

import (
	"github.com/rafabene/blog-backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema
type User struct {
	ID           uint
	Name         string
	Email        valueobjects.Email
	PasswordHash string
}

// Rename troca o nome de login do usuário
func (u *User) Rename(name string) {
	u.Name = name
}

// ChangeEmail troca o email do usuário
func (u *User) ChangeEmail(email valueobjects.Email) {
	u.Email = email
}

// ChangePasswordHash substitui o hash de senha
func (u *User) ChangePasswordHash(hash string) {
	u.PasswordHash = hash
}
