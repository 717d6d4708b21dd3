package repository

import "github.com/jhoicas/Componentes-api/internal/domain/entity"

// FootprintRepository puerto de persistencia para huellas. Mismas reglas de
// ciclo de vida que CategoryRepository.
type FootprintRepository interface {
	Create(footprint *entity.Footprint) error
	GetByID(id int64) (*entity.Footprint, error)
	List() ([]*entity.Footprint, error)
	Delete(id int64) error
}
