package repository

import "github.com/jhoicas/Componentes-api/internal/domain/entity"

// PartRepository puerto de persistencia para partes.
// Create asigna el ID generado en part.ID; devuelve domain.ErrDuplicateMPN
// si el mpn ya está en uso y domain.ErrForeignKey si category_id o
// footprint_id no existen. Delete elimina solo la fila de parts: el borrado
// en cascada del stock lo orquesta el caso de uso dentro de una transacción.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id int64) (*entity.Part, error)
	GetByMPN(mpn string) (*entity.Part, error)
	List(limit, offset int) ([]*entity.Part, error)
	Delete(id int64) error
}
