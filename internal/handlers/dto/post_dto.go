package dto

import (
	"encoding/json"
	"time"

	"github.com/rafabene/blog-backend/internal/services"
)

// OptionalString distingue campo ausente de campo presente (inclusive null)
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON só é chamado quando a chave está presente no JSON
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// CreatePostRequest representa a requisição para criar um post
type CreatePostRequest struct {
	Title    string  `json:"title" binding:"max=200"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url" binding:"omitempty,max=2048"`
	AuthorID uint    `json:"author_id"`
}

// UpdatePostRequest: title/content vazios são ignorados; image_url vale pela presença
type UpdatePostRequest struct {
	Title    string         `json:"title" binding:"max=200"`
	Content  string         `json:"content"`
	ImageURL OptionalString `json:"image_url"`
}

// PostResponse representa a resposta de um post
type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Author    string    `json:"author"`
	AuthorID  uint      `json:"author_id"`
}

// PostEnvelope envolve um post em respostas de criação/atualização
type PostEnvelope struct {
	Success bool         `json:"success"`
	Post    PostResponse `json:"post"`
}

// ToPostResponse converte um post com autor resolvido
func ToPostResponse(post *services.PostWithAuthor) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		Author:    post.Author,
		AuthorID:  post.AuthorID,
	}
}

// ToPostResponses converte uma lista de posts
func ToPostResponses(posts []*services.PostWithAuthor) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToPostResponse(post)
	}
	return responses
}
