package http

import (
	errs "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/blog-backend/internal/domain/errors"
	"github.com/rafabene/blog-backend/internal/handlers/dto"
)

// statusFor mapeia a categoria do erro de domínio para o status HTTP
func statusFor(kind errors.Kind) int {
	switch kind {
	case errors.KindValidation:
		return http.StatusBadRequest
	case errors.KindConflict:
		return http.StatusConflict
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError escreve o envelope de erro; detalhes internos só vão para o log
func respondError(c *gin.Context, err error) {
	kind := errors.KindOf(err)
	status := statusFor(kind)

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.JSON(status, dto.NewErrorResponse(c, err, status))
}

// bindJSON decodifica o corpo; corpo vazio equivale a {}.
// Campo com tipo ou tamanho inválido gera a lista de erros por campo.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || errs.Is(err, io.EOF) {
		return true
	}

	fields := dto.FieldErrors(err)
	cause := errors.ErrInvalidBody
	if len(fields) > 0 {
		cause = errors.ErrInvalidFields
	}

	response := dto.NewErrorResponse(c, cause, http.StatusBadRequest)
	response.Errors = fields
	c.JSON(http.StatusBadRequest, response)
	return false
}

// parseID lê o parâmetro de rota; ids não numéricos não casam com nenhum recurso
func parseID(c *gin.Context, notFound error) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, notFound)
		return 0, false
	}
	return uint(id), true
}
