package repository

import "github.com/jhoicas/Componentes-api/internal/domain/entity"

// LocationRepository puerto de persistencia para ubicaciones.
// Delete se rechaza (domain.ErrReferentialConflict) mientras exista stock
// que referencie la ubicación: restrict, nunca cascade.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	List() ([]*entity.Location, error)
	Delete(id int64) error
}
