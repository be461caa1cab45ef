package security

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/blog-backend/internal/domain/ports"
)

// BcryptHasher implementa ports.PasswordHasher com bcrypt.
// A senha passa antes por SHA-256 + base64 (44 bytes): bcrypt só aceita
// até 72 bytes e senhas de qualquer tamanho precisam continuar válidas.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo informado
func NewBcryptHasher(cost int) ports.PasswordHasher {
	return &BcryptHasher{cost: cost}
}

// Hash retorna o hash bcrypt (com salt) da senha
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prehash(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Verify compara hash e senha em tempo constante
func (h *BcryptHasher) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(plain)) == nil
}

func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
