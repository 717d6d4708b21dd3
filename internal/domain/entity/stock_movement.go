package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeRECEIVE  = "RECEIVE"
	MovementTypeCONSUME  = "CONSUME"
	MovementTypeTRANSFER = "TRANSFER"
	MovementTypeSTAGE    = "STAGE"
)

// StockMovement registro de auditoría de cada mutación de stock. Las dos
// patas de una transferencia comparten TransactionID. Append-only.
type StockMovement struct {
	ID            int64
	TransactionID string
	PartID        int64
	LocationID    *int64
	Type          string
	Quantity      int64
	CreatedAt     time.Time
}
