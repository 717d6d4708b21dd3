package repository

import "github.com/jhoicas/Componentes-api/internal/domain/entity"

// StockRepository puerto para el libro de stock por (parte, ubicación).
// Usado dentro de transacciones para garantizar consistencia.
// Get/GetForUpdate devuelven (nil, nil) si no existe fila para el par.
// Create devuelve domain.ErrDuplicateEntry si el par ya tiene fila (la
// unicidad la garantiza el índice único del almacén, no un check-then-act).
// Update estampa updated_at con el reloj del almacén.
type StockRepository interface {
	Get(partID int64, locationID int64) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(partID int64, locationID int64) (*entity.Stock, error)
	Create(stock *entity.Stock) error
	Update(stock *entity.Stock) error
	ListByPart(partID int64) ([]*entity.Stock, error)
	DeleteByPart(partID int64) (int64, error)
}
