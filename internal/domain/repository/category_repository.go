package repository

import "github.com/jhoicas/Componentes-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
// Create devuelve domain.ErrDuplicateName si el nombre ya existe;
// Delete devuelve domain.ErrReferentialConflict mientras alguna parte la
// referencie y domain.ErrNotFound si el id no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Delete(id int64) error
}
