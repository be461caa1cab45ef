package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações
type UnitOfWork interface {
	// WithTransaction executa fn dentro de uma transação; qualquer erro
	// retornado por fn (ou panic) descarta todas as escritas pendentes
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
