package usecase

import (
	"context"

	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Lo usa el borrado en cascada de Part: stock
// y parte se eliminan juntos o no se elimina nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		partRepo repository.PartRepository,
	) error) error
}
