package stock

import (
	"context"

	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de stock:
// o se confirman todos los efectos de la operación, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		partRepo repository.PartRepository,
	) error) error
}
