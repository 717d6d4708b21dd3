package repository

import (
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InventoryFilter filtros para la vista de inventario. Los punteros en nil
// no filtran. La búsqueda de texto libre no vive aquí: el caso de uso la
// aplica con normalización de acentos sobre las filas devueltas.
type InventoryFilter struct {
	CategoryID  *int64
	FootprintID *int64
	MinValue    *decimal.Decimal
	MaxValue    *decimal.Decimal
	Limit       int
	Offset      int
}

// InventoryRepository puerto de solo lectura sobre la vista `inventory`.
// Refleja el último estado confirmado de sus fuentes en el momento de la
// lectura; no es una caché.
type InventoryRepository interface {
	Search(filter InventoryFilter) ([]*entity.InventoryRow, error)
}
