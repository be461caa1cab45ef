package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/blog-backend/internal/domain/errors"
	"github.com/rafabene/blog-backend/internal/handlers/dto"
	"github.com/rafabene/blog-backend/internal/services"
)

// PostHandler lida com requisições HTTP de posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler cria um novo PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts lista todos os posts
//
//	@Summary	List posts
//	@Tags		posts
//	@Produce	json
//	@Success	200	{array}		dto.PostResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/api/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// CreatePost cria um post
//
//	@Summary	Create a post
//	@Tags		posts
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreatePostRequest	true	"New post"
//	@Success	201		{object}	dto.PostEnvelope
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/api/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), services.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PostEnvelope{
		Success: true,
		Post:    dto.ToPostResponse(post),
	})
}

// GetPost busca um post por ID
//
//	@Summary	Get a post
//	@Tags		posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	dto.PostResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c, errors.ErrPostNotFound)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// UpdatePost altera título, conteúdo e/ou imagem
//
//	@Summary	Update a post
//	@Tags		posts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Post ID"
//	@Param		body	body		dto.UpdatePostRequest	true	"Fields to change"
//	@Success	200		{object}	dto.PostEnvelope
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/api/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c, errors.ErrPostNotFound)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), id, services.UpdatePostInput{
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL.Value,
		ImageURLSet: req.ImageURL.Set,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{
		Success: true,
		Post:    dto.ToPostResponse(post),
	})
}

// DeletePost remove um post
//
//	@Summary	Delete a post
//	@Tags		posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c, errors.ErrPostNotFound)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponseI18n(c, "message.post_deleted"))
}

// ListPostsByUser lista os posts de um usuário
//
//	@Summary	List a user's posts
//	@Tags		posts
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{array}		dto.PostResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/users/{id}/posts [get]
func (h *PostHandler) ListPostsByUser(c *gin.Context) {
	id, ok := parseID(c, errors.ErrUserNotFound)
	if !ok {
		return
	}

	posts, err := h.postService.ListPostsByUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}
