package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/blog-backend/internal/domain/ports"
)

const (
	internalErrorKey  = "error.internal.detail"
	internalErrorType = "/problems/internal-error"
)

// Recovery converte pânicos em 500 com o mesmo envelope de erro da API
func Recovery(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					"request_id", c.GetString(RequestIDContextKey),
					"path", c.Request.URL.Path,
					"panic", rec,
				)

				message := Translate(c, internalErrorKey)
				problem := problems.NewDetailedProblem(http.StatusInternalServerError, message)
				c.AbortWithStatusJSON(problem.Status, gin.H{
					"success":  false,
					"message":  message,
					"type":     c.GetString("base_url") + internalErrorType,
					"title":    problem.Title,
					"status":   problem.Status,
					"instance": c.Request.URL.Path,
				})
			}
		}()

		c.Next()
	}
}
