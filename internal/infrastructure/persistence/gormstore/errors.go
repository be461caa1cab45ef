package gormstore

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/blog-backend/internal/domain/repositories"
)

// translateError converte erros traduzidos pelo dialeto em erros do domínio
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", repositories.ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", repositories.ErrForeignKeyViolation, err)
	default:
		return err
	}
}
