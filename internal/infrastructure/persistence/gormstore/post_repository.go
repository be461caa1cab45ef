package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/blog-backend/internal/domain/entities"
	"github.com/rafabene/blog-backend/internal/domain/repositories"
)

// PostRepository implementa repositories.PostRepository
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository cria um novo PostRepository
func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	model := toPostModel(post)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err)
	}

	post.ID = model.ID
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uint) (*entities.Post, error) {
	var model PostModel

	db := dbFromContext(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toPostEntity(&model), nil
}

func (r *PostRepository) Update(ctx context.Context, post *entities.Post) error {
	model := toPostModel(post)

	db := dbFromContext(ctx, r.db)
	// Select explícito para gravar image_url = NULL quando o ponteiro é nil
	result := db.Model(&PostModel{ID: model.ID}).
		Select("title", "content", "image_url", "updated_at").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	result := db.Delete(&PostModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

func (r *PostRepository) List(ctx context.Context, filters repositories.PostFilters) ([]*entities.Post, error) {
	var models []*PostModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&PostModel{})

	// Aplicar filtros
	if filters.AuthorID != nil {
		query = query.Where("author_id = ?", *filters.AuthorID)
	}

	// Mais recentes primeiro; id desempata posts criados no mesmo instante
	query = query.Order("created_at DESC").Order("id DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	posts := make([]*entities.Post, 0, len(models))
	for _, m := range models {
		posts = append(posts, toPostEntity(m))
	}

	return posts, nil
}

// Conversores
func toPostModel(post *entities.Post) *PostModel {
	return &PostModel{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		AuthorID:  post.AuthorID,
	}
}

func toPostEntity(model *PostModel) *entities.Post {
	return &entities.Post{
		ID:        model.ID,
		Title:     model.Title,
		Content:   model.Content,
		ImageURL:  model.ImageURL,
		CreatedAt: model.CreatedAt.UTC(),
		UpdatedAt: model.UpdatedAt.UTC(),
		AuthorID:  model.AuthorID,
	}
}
