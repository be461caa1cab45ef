package repositories

import (
	"context"

	"github.com/rafabene/blog-backend/internal/domain/entities"
)

// PostRepository define a interface para persistência de posts
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) error
	FindByID(ctx context.Context, id uint) (*entities.Post, error)
	Update(ctx context.Context, post *entities.Post) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters PostFilters) ([]*entities.Post, error)
}

// PostFilters contém filtros para listagem de posts.
// Resultados sempre ordenados por created_at desc (id desc no empate).
type PostFilters struct {
	AuthorID *uint
}
