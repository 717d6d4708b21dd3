package usecase

import (
	"strings"

	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/domain"
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// CatalogUseCase casos de uso para las tablas de catálogo (categorías y
// huellas). Ambas comparten semántica: nombre único con match exacto, datos
// de solo-agregar, eliminación bloqueada mientras una parte las referencie.
type CatalogUseCase struct {
	categoryRepo  repository.CategoryRepository
	footprintRepo repository.FootprintRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categoryRepo repository.CategoryRepository, footprintRepo repository.FootprintRepository) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, footprintRepo: footprintRepo}
}

// CreateCategory crea una categoría. Nombre vacío se rechaza; la colisión de
// nombre (exacta, sensible a mayúsculas, igual que el constraint) devuelve
// ErrDuplicateName.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateNameRequest) (*dto.NameResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{Name: name}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: c.ID, Name: c.Name}, nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories() ([]dto.NameResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.NameResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.NameResponse{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

// DeleteCategory elimina una categoría; ErrReferentialConflict si alguna
// parte todavía la referencia.
func (uc *CatalogUseCase) DeleteCategory(id int64) error {
	return uc.categoryRepo.Delete(id)
}

// CreateFootprint crea una huella. Mismas reglas que CreateCategory.
func (uc *CatalogUseCase) CreateFootprint(in dto.CreateNameRequest) (*dto.NameResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	f := &entity.Footprint{Name: name}
	if err := uc.footprintRepo.Create(f); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: f.ID, Name: f.Name}, nil
}

// ListFootprints lista todas las huellas.
func (uc *CatalogUseCase) ListFootprints() ([]dto.NameResponse, error) {
	list, err := uc.footprintRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.NameResponse, 0, len(list))
	for _, f := range list {
		items = append(items, dto.NameResponse{ID: f.ID, Name: f.Name})
	}
	return items, nil
}

// DeleteFootprint elimina una huella; ErrReferentialConflict si alguna parte
// todavía la referencia.
func (uc *CatalogUseCase) DeleteFootprint(id int64) error {
	return uc.footprintRepo.Delete(id)
}
