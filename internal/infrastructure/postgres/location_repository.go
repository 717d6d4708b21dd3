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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL
// (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación y asigna el ID generado.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `INSERT INTO locations (name, description) VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, location.Name, location.Description).
		Scan(&location.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID. Devuelve (nil, nil) si no existe.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description FROM locations WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List lista todas las ubicaciones ordenadas por nombre.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Description); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina una ubicación. El FK desde stock es ON DELETE RESTRICT:
// mientras exista stock en la ubicación el borrado se rechaza, nunca se
// propaga en cascada (a diferencia de Part).
func (r *LocationRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferentialConflict
		}
		return fmt.Errorf("delete location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
