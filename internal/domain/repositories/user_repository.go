package repositories

import (
	"context"
	"errors"

	"github.com/rafabene/blog-backend/internal/domain/entities"
)

// Erros reportados pelo store
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// UserRepository define a interface para persistência de usuários.
// Buscas retornam (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByName(ctx context.Context, name string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// ExistsByNameOrEmail verifica as duas colunas em uma única query
	ExistsByNameOrEmail(ctx context.Context, name, email string) (bool, error)
	// NamesByIDs resolve nomes de autores; ids inexistentes ficam fora do mapa
	NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
	Update(ctx context.Context, user *entities.User) error
}
