package usecase

import (
	"strings"

	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/domain"
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// LocationUseCase casos de uso del registro de ubicaciones.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación; ErrDuplicateName en colisión de nombre.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	l := &entity.Location{Name: name, Description: in.Description}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// List lista todas las ubicaciones.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Delete elimina una ubicación. Restrict: si hay stock que la referencia la
// eliminación se rechaza con ErrReferentialConflict y la ubicación y su
// stock quedan intactos.
func (uc *LocationUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{ID: l.ID, Name: l.Name, Description: l.Description}
}
