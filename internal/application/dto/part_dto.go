package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest entrada para crear una parte. category_id es
// obligatorio; footprint_id, mpn, ratings y textos son opcionales.
type CreatePartRequest struct {
	CategoryID  int64            `json:"category_id"`
	FootprintID *int64           `json:"footprint_id"`
	MPN         *string          `json:"mpn"`
	Value       *decimal.Decimal `json:"value"`
	VoltRating  *decimal.Decimal `json:"volt_rating"`
	WattRating  *decimal.Decimal `json:"watt_rating"`
	AmpRating   *decimal.Decimal `json:"amp_rating"`
	PercentTol  *decimal.Decimal `json:"percent_tol"`
	Stats       *string          `json:"stats"`
	Comments    *string          `json:"comments"`
}

// PartResponse salida de una parte.
type PartResponse struct {
	ID          int64            `json:"id"`
	CategoryID  int64            `json:"category_id"`
	FootprintID *int64           `json:"footprint_id,omitempty"`
	MPN         *string          `json:"mpn,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	VoltRating  *decimal.Decimal `json:"volt_rating,omitempty"`
	WattRating  *decimal.Decimal `json:"watt_rating,omitempty"`
	AmpRating   *decimal.Decimal `json:"amp_rating,omitempty"`
	PercentTol  *decimal.Decimal `json:"percent_tol,omitempty"`
	Stats       *string          `json:"stats,omitempty"`
	Comments    *string          `json:"comments,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PartListResponse lista paginada de partes.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageRequest    `json:"page"`
}
