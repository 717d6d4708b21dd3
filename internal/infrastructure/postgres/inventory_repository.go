package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo lectura de la vista `inventory`. Solo SELECT: la vista se
// deriva de parts/stock/locations/categories/footprints y refleja el último
// estado confirmado sin bloquear a los escritores.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Search consulta la vista aplicando los filtros presentes. El filtro por
// categoría/huella se hace por id contra las tablas base para no depender
// del nombre mostrado.
func (r *InventoryRepo) Search(f repository.InventoryFilter) ([]*entity.InventoryRow, error) {
	query := `
		SELECT i.id, i.mpn, i.category, i.footprint, i.value, i.location, i.quantity, i.staged, i.comments
		FROM inventory i
		JOIN parts p ON p.id = i.id`
	var conds []string
	var args []any

	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if f.FootprintID != nil {
		args = append(args, *f.FootprintID)
		conds = append(conds, fmt.Sprintf("p.footprint_id = $%d", len(args)))
	}
	if f.MinValue != nil {
		args = append(args, *f.MinValue)
		conds = append(conds, fmt.Sprintf("i.value >= $%d", len(args)))
	}
	if f.MaxValue != nil {
		args = append(args, *f.MaxValue)
		conds = append(conds, fmt.Sprintf("i.value <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY i.category, i.mpn, i.location"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRow
	for rows.Next() {
		var row entity.InventoryRow
		if err := rows.Scan(
			&row.PartID, &row.MPN, &row.Category, &row.Footprint, &row.Value,
			&row.Location, &row.Quantity, &row.Staged, &row.Comments,
		); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
