package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Componentes-api/internal/application/stock"
	"github.com/jhoicas/Componentes-api/internal/application/usecase"
	"github.com/jhoicas/Componentes-api/internal/domain"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner y usecase.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los
// errores de contención (serialization, deadlock, lock timeout) se traducen
// a domain.ErrTxConflict para que el caller sepa que puede reintentar.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Todo o nada: si fn falla no queda ningún efecto.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	partRepo repository.PartRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	partRepo := NewPartRepository(tx)

	if err := fn(stockRepo, movRepo, partRepo); err != nil {
		if isRetryable(err) {
			return domain.ErrTxConflict
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isRetryable(err) {
			return domain.ErrTxConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
