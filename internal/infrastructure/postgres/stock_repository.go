package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Componentes-api/internal/domain"
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx). La unicidad por (part_id, location_id) la garantiza el índice
// único de la tabla; las carreras de inserción concurrente llegan aquí como
// 23505 y se traducen a ErrDuplicateEntry.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, part_id, location_id, quantity, updated_at, staged`

// Get obtiene la fila de stock para el par (parte, ubicación).
// Devuelve (nil, nil) si el par aún no tiene fila.
func (r *StockRepo) Get(partID, locationID int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE part_id = $1 AND location_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, partID, locationID))
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
// Devuelve (nil, nil) si el par aún no tiene fila.
func (r *StockRepo) GetForUpdate(partID, locationID int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE part_id = $1 AND location_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, partID, locationID))
}

// Create inserta la fila inicial del par. updated_at lo estampa el almacén.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (part_id, location_id, quantity, staged, updated_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		stock.PartID, stock.LocationID, stock.Quantity, stock.Staged,
	).Scan(&stock.ID, &stock.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEntry
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		if isCheckViolation(err) {
			return domain.ErrNegativeQuantity
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// Update escribe quantity y staged, estampando updated_at en cada mutación.
// El CHECK de la tabla respalda la no-negatividad que valida el caso de uso.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stock SET quantity = $2, staged = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(context.Background(), query,
		stock.ID, stock.Quantity, stock.Staged,
	).Scan(&stock.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return domain.ErrNegativeQuantity
		}
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// ListByPart lista las filas de stock de una parte.
func (r *StockRepo) ListByPart(partID int64) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE part_id = $1 ORDER BY location_id`
	rows, err := r.q.Query(context.Background(), query, partID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.PartID, &s.LocationID, &s.Quantity, &s.UpdatedAt, &s.Staged); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteByPart elimina todas las filas de stock de una parte y devuelve
// cuántas borró. Lo usa el cascade de deletePart dentro de una transacción.
func (r *StockRepo) DeleteByPart(partID int64) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE part_id = $1`, partID)
	if err != nil {
		return 0, fmt.Errorf("delete stock by part: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *StockRepo) scanOne(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.PartID, &s.LocationID, &s.Quantity, &s.UpdatedAt, &s.Staged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}
