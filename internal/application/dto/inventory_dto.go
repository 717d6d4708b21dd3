package dto

import "github.com/shopspring/decimal"

// InventorySearchRequest filtros de la vista de inventario. q es búsqueda de
// texto libre sobre mpn y comments, insensible a mayúsculas y acentos.
type InventorySearchRequest struct {
	CategoryID  *int64           `query:"category_id"`
	FootprintID *int64           `query:"footprint_id"`
	MinValue    *decimal.Decimal `query:"min_value"`
	MaxValue    *decimal.Decimal `query:"max_value"`
	Text        string           `query:"q"`
	PageRequest
}

// InventoryRowResponse fila de la vista de inventario. Los campos de stock
// vienen en null cuando la parte no tiene stock en ninguna ubicación.
type InventoryRowResponse struct {
	PartID    int64            `json:"part_id"`
	MPN       *string          `json:"mpn,omitempty"`
	Category  *string          `json:"category,omitempty"`
	Footprint *string          `json:"footprint,omitempty"`
	Value     *decimal.Decimal `json:"value,omitempty"`
	Location  *string          `json:"location,omitempty"`
	Quantity  *int64           `json:"quantity,omitempty"`
	Staged    *int64           `json:"staged,omitempty"`
	Comments  *string          `json:"comments,omitempty"`
}

// InventorySearchResponse resultado de la búsqueda.
type InventorySearchResponse struct {
	Total int                    `json:"total"`
	Items []InventoryRowResponse `json:"items"`
}
