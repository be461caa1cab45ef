package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/blog-backend/internal/domain/errors"
	"github.com/rafabene/blog-backend/internal/handlers/middleware"
)

// T traduz uma chave no idioma negociado para a requisição
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	return middleware.Translate(c, key, params...)
}

// MessageFor traduz a mensagem de um erro de domínio.
// Erros fora da taxonomia viram a mensagem genérica de falha interna.
func MessageFor(c *gin.Context, err error) string {
	return T(c, errors.MessageOf(err))
}
