package entity

import "github.com/shopspring/decimal"

// InventoryRow fila derivada de la vista `inventory`: una por cada par
// (parte, entrada de stock), o una sola con campos de stock en nil si la
// parte no tiene stock en ninguna ubicación (left-outer desde parts). Solo
// lectura; no tiene estado propio.
type InventoryRow struct {
	PartID    int64
	MPN       *string
	Category  *string
	Footprint *string
	Value     *decimal.Decimal
	Location  *string
	Quantity  *int64
	Staged    *int64
	Comments  *string
}
