package services

import (
	errs "errors"

	"github.com/rafabene/blog-backend/internal/domain/errors"
	"github.com/rafabene/blog-backend/internal/domain/repositories"
)

// translateStoreError converte erros vindos de uma escrita em erros de domínio.
// Erros de domínio passam intactos; violações de constraint detectadas no
// commit viram onDuplicate / onForeignKey; o resto vira falha de persistência.
func translateStoreError(err error, onDuplicate, onForeignKey error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.KindOf(err) != errors.KindUnknown:
		return err
	case onDuplicate != nil && errs.Is(err, repositories.ErrDuplicateKey):
		return onDuplicate
	case onForeignKey != nil && errs.Is(err, repositories.ErrForeignKeyViolation):
		return onForeignKey
	default:
		return errors.Persistence(message, err)
	}
}
