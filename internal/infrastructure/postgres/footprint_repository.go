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

var _ repository.FootprintRepository = (*FootprintRepo)(nil)

// FootprintRepo implementación del puerto FootprintRepository sobre
// PostgreSQL (usable con pool o tx).
type FootprintRepo struct {
	q Querier
}

// NewFootprintRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFootprintRepository(q Querier) *FootprintRepo {
	return &FootprintRepo{q: q}
}

// Create persiste una nueva huella y asigna el ID generado.
func (r *FootprintRepo) Create(footprint *entity.Footprint) error {
	query := `INSERT INTO footprints (name) VALUES ($1) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, footprint.Name).Scan(&footprint.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert footprint: %w", err)
	}
	return nil
}

// GetByID obtiene una huella por ID. Devuelve (nil, nil) si no existe.
func (r *FootprintRepo) GetByID(id int64) (*entity.Footprint, error) {
	var f entity.Footprint
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM footprints WHERE id = $1`, id,
	).Scan(&f.ID, &f.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get footprint: %w", err)
	}
	return &f, nil
}

// List lista todas las huellas ordenadas por nombre.
func (r *FootprintRepo) List() ([]*entity.Footprint, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM footprints ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list footprints: %w", err)
	}
	defer rows.Close()
	var list []*entity.Footprint
	for rows.Next() {
		var f entity.Footprint
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("scan footprint: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina una huella; rechazado mientras alguna parte la referencie.
func (r *FootprintRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM footprints WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferentialConflict
		}
		return fmt.Errorf("delete footprint: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
