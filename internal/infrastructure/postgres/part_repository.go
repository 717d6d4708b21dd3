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

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación del puerto PartRepository sobre PostgreSQL
// (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para partes.
// Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

const partColumns = `id, category_id, footprint_id, mpn, value, volt_rating,
	watt_rating, amp_rating, percent_tol, stats, comments, created_at`

// Create persiste una nueva parte. created_at lo fija el almacén al instante
// de creación y no se vuelve a escribir. La violación del índice único de
// mpn (carrera entre el pre-chequeo del caso de uso y el insert) se traduce
// a ErrDuplicateMPN.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (category_id, footprint_id, mpn, value, volt_rating, watt_rating, amp_rating, percent_tol, stats, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		part.CategoryID, part.FootprintID, part.MPN, part.Value, part.VoltRating,
		part.WattRating, part.AmpRating, part.PercentTol, part.Stats, part.Comments,
	).Scan(&part.ID, &part.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateMPN
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene una parte por ID. Devuelve (nil, nil) si no existe.
func (r *PartRepo) GetByID(id int64) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByMPN obtiene una parte por mpn. Devuelve (nil, nil) si no existe.
func (r *PartRepo) GetByMPN(mpn string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE mpn = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, mpn))
}

// List lista partes con paginación, las más recientes primero.
func (r *PartRepo) List(limit, offset int) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.FootprintID, &p.MPN, &p.Value, &p.VoltRating,
			&p.WattRating, &p.AmpRating, &p.PercentTol, &p.Stats, &p.Comments, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina la fila de parts. El caso de uso borra antes el stock
// dependiente dentro de la misma transacción.
func (r *PartRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PartRepo) scanOne(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.FootprintID, &p.MPN, &p.Value, &p.VoltRating,
		&p.WattRating, &p.AmpRating, &p.PercentTol, &p.Stats, &p.Comments, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}
