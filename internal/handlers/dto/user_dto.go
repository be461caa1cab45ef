package dto

import (
	"github.com/rafabene/blog-backend/internal/domain/entities"
)

// RegisterRequest representa a requisição de cadastro.
// Presença dos campos é verificada pelo serviço.
type RegisterRequest struct {
	Name     string `json:"name" binding:"max=80"`
	Email    string `json:"email" binding:"max=120"`
	Password string `json:"password"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário.
// String vazia equivale a campo ausente.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"max=80"`
	Email    string `json:"email" binding:"max=120"`
	Password string `json:"password"`
}

// UserResponse representa a resposta de um usuário (sem hash de senha)
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserEnvelope envolve um usuário em respostas de sucesso
type UserEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}

// LoginResponse não emite token; o cliente guarda user_id
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	UserID  uint         `json:"user_id"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email.String(),
	}
}
