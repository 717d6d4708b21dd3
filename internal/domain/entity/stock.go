package entity

import "time"

// Stock la unidad contable del sistema: cantidad de una parte en una
// ubicación. A lo sumo una fila por par (part_id, location_id). Quantity y
// Staged son contadores independientes, ambos >= 0; Staged en nil significa
// "no rastreado", distinto de 0. UpdatedAt se estampa en cada mutación.
type Stock struct {
	ID         int64
	PartID     int64
	LocationID *int64
	Quantity   int64
	UpdatedAt  time.Time
	Staged     *int64
}
