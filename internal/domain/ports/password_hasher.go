package ports

// PasswordHasher gera e verifica hashes de senha
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}
