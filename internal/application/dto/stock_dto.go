package dto

import "time"

// CreateStockEntryRequest entrada para crear explícitamente la fila de stock
// de un par (parte, ubicación) con cantidad inicial >= 0.
type CreateStockEntryRequest struct {
	PartID     int64  `json:"part_id"`
	LocationID int64  `json:"location_id"`
	Quantity   int64  `json:"quantity"`
	Staged     *int64 `json:"staged"`
}

// AdjustStockRequest entrada para aplicar un delta de cantidad.
type AdjustStockRequest struct {
	PartID     int64 `json:"part_id"`
	LocationID int64 `json:"location_id"`
	Delta      int64 `json:"delta"`
}

// SetStagedRequest entrada para fijar el contador staged. Staged en null
// limpia el contador ("no rastreado"), distinto de 0.
type SetStagedRequest struct {
	PartID     int64  `json:"part_id"`
	LocationID int64  `json:"location_id"`
	Staged     *int64 `json:"staged"`
}

// MoveStockRequest entrada para mover cantidad entre dos ubicaciones.
type MoveStockRequest struct {
	PartID         int64 `json:"part_id"`
	FromLocationID int64 `json:"from_location_id"`
	ToLocationID   int64 `json:"to_location_id"`
	Amount         int64 `json:"amount"`
}

// StockMovementResponse registro de auditoría de una mutación de stock.
type StockMovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	PartID        int64     `json:"part_id"`
	LocationID    *int64    `json:"location_id,omitempty"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ID         int64     `json:"id"`
	PartID     int64     `json:"part_id"`
	LocationID *int64    `json:"location_id,omitempty"`
	Quantity   int64     `json:"quantity"`
	Staged     *int64    `json:"staged,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
