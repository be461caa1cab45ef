package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/blog-backend/internal/domain/errors"
)

// ErrorResponse mantém o envelope {success, message} dos clientes existentes
// e acrescenta os campos de RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// MessageResponse é a resposta de sucesso sem payload
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewErrorResponse monta o envelope de erro para um erro de domínio
func NewErrorResponse(c *gin.Context, err error, status int) ErrorResponse {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	message := MessageFor(c, err)
	problem := problems.NewDetailedProblem(status, message)

	return ErrorResponse{
		Success:  false,
		Message:  message,
		Type:     baseURL + errors.ProblemTypeOf(errors.KindOf(err)),
		Title:    problem.Title,
		Status:   problem.Status,
		Instance: c.Request.URL.Path,
	}
}

// NewMessageResponseI18n cria uma resposta de sucesso com mensagem traduzida
func NewMessageResponseI18n(c *gin.Context, messageKey string) MessageResponse {
	return MessageResponse{
		Success: true,
		Message: T(c, messageKey),
	}
}
