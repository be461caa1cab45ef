package services

import (
	"context"
	errs "errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rafabene/blog-backend/internal/domain/entities"
	"github.com/rafabene/blog-backend/internal/domain/errors"
	"github.com/rafabene/blog-backend/internal/domain/ports"
	"github.com/rafabene/blog-backend/internal/domain/repositories"
)

// PostService contém a lógica de negócio para posts
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
	now      func() time.Time
}

// NewPostService cria um novo PostService
func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
		now:      defaultClock,
	}
}

// WithClock troca a fonte de tempo (testes)
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

// Microssegundos: mesma precisão no SQLite e no PostgreSQL
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// PostWithAuthor é um post com o nome do autor já resolvido
type PostWithAuthor struct {
	*entities.Post
	Author string
}

// CreatePostInput representa os dados para criar um post
type CreatePostInput struct {
	Title    string
	Content  string
	ImageURL *string
	AuthorID uint
}

// Validate exige título, conteúdo e autor
func (in CreatePostInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Content, validation.Required),
		validation.Field(&in.AuthorID, validation.Required),
	)
}

// UpdatePostInput contém os campos opcionais da atualização.
// Title/Content vazios significam "não informado"; ImageURL vale
// sempre que ImageURLSet for true, inclusive nil (limpa a imagem).
type UpdatePostInput struct {
	Title       string
	Content     string
	ImageURL    *string
	ImageURLSet bool
}

// ListPosts lista todos os posts, mais recentes primeiro
func (s *PostService) ListPosts(ctx context.Context) ([]*PostWithAuthor, error) {
	posts, err := s.postRepo.List(ctx, repositories.PostFilters{})
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}
	return s.withAuthors(ctx, posts)
}

// ListPostsByUser lista os posts de um autor
func (s *PostService) ListPostsByUser(ctx context.Context, userID uint) ([]*PostWithAuthor, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	posts, err := s.postRepo.List(ctx, repositories.PostFilters{AuthorID: &user.ID})
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}

	result := make([]*PostWithAuthor, 0, len(posts))
	for _, p := range posts {
		result = append(result, &PostWithAuthor{Post: p, Author: user.Name})
	}
	return result, nil
}

// CreatePost cria um post para um autor existente
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*PostWithAuthor, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)

	if err := input.Validate(); err != nil {
		return nil, errors.ErrPostFieldsRequired
	}

	author, err := s.userRepo.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}
	if author == nil {
		return nil, errors.ErrAuthorNotFound
	}

	post := entities.NewPost(input.Title, input.Content, input.ImageURL, author.ID, s.now())

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.postRepo.Create(txCtx, post)
	})
	if err != nil {
		s.logger.Warn("create post failed", "author_id", input.AuthorID, "error", err)
		// FK violada: autor removido entre a checagem e o insert
		return nil, translateStoreError(err, nil, errors.ErrAuthorNotFound, errors.MsgStoreFailed)
	}

	s.logger.Info("post created", "post_id", post.ID, "author_id", post.AuthorID)
	return &PostWithAuthor{Post: post, Author: author.Name}, nil
}

// GetPost busca um post por ID
func (s *PostService) GetPost(ctx context.Context, id uint) (*PostWithAuthor, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	result, err := s.withAuthors(ctx, []*entities.Post{post})
	if err != nil {
		return nil, err
	}
	return result[0], nil
}

// UpdatePost altera título, conteúdo e/ou imagem e renova updated_at.
// Não há checagem de autoria.
func (s *PostService) UpdatePost(ctx context.Context, id uint, input UpdatePostInput) (*PostWithAuthor, error) {
	var updated *entities.Post
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		post, err := s.postRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if post == nil {
			return errors.ErrPostNotFound
		}

		if input.Title != "" {
			post.Title = input.Title
		}
		if input.Content != "" {
			post.Content = input.Content
		}
		if input.ImageURLSet {
			post.ImageURL = input.ImageURL
		}
		post.Touch(s.now())

		if err := s.postRepo.Update(txCtx, post); err != nil {
			if errs.Is(err, repositories.ErrNotFound) {
				return errors.ErrPostNotFound
			}
			return err
		}

		updated = post
		return nil
	})
	if err != nil {
		s.logger.Warn("update post failed", "post_id", id, "error", err)
		return nil, translateStoreError(err, nil, nil, errors.MsgUpdatePostFailed)
	}

	s.logger.Info("post updated", "post_id", updated.ID)

	result, err := s.withAuthors(ctx, []*entities.Post{updated})
	if err != nil {
		return nil, err
	}
	return result[0], nil
}

// DeletePost remove o post definitivamente
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		post, err := s.postRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if post == nil {
			return errors.ErrPostNotFound
		}

		if err := s.postRepo.Delete(txCtx, id); err != nil {
			if errs.Is(err, repositories.ErrNotFound) {
				return errors.ErrPostNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return translateStoreError(err, nil, nil, errors.MsgStoreFailed)
	}

	s.logger.Info("post deleted", "post_id", id)
	return nil
}

// withAuthors resolve os nomes dos autores com uma única consulta
func (s *PostService) withAuthors(ctx context.Context, posts []*entities.Post) ([]*PostWithAuthor, error) {
	ids := make([]uint, 0, len(posts))
	seen := make(map[uint]bool, len(posts))
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}

	names, err := s.userRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}

	result := make([]*PostWithAuthor, 0, len(posts))
	for _, p := range posts {
		result = append(result, &PostWithAuthor{Post: p, Author: names[p.AuthorID]})
	}
	return result, nil
}
