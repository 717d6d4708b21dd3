package repository

import "github.com/jhoicas/Componentes-api/internal/domain/entity"

// StockMovementRepository puerto para el registro de movimientos de stock.
// Append-only: no hay update ni delete individual.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByPart(partID int64, limit, offset int) ([]*entity.StockMovement, error)
}
