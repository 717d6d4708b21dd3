package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/domain"
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// PartUseCase casos de uso del registro de partes.
type PartUseCase struct {
	txRunner      TxRunner
	partRepo      repository.PartRepository
	categoryRepo  repository.CategoryRepository
	footprintRepo repository.FootprintRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(
	txRunner TxRunner,
	partRepo repository.PartRepository,
	categoryRepo repository.CategoryRepository,
	footprintRepo repository.FootprintRepository,
) *PartUseCase {
	return &PartUseCase{
		txRunner:      txRunner,
		partRepo:      partRepo,
		categoryRepo:  categoryRepo,
		footprintRepo: footprintRepo,
	}
}

// Create crea una parte. Valida que la categoría exista (y la huella, si
// viene) antes de insertar: ErrForeignKey con referencia inexistente,
// ErrDuplicateMPN si el mpn ya está en uso. El pre-chequeo de mpn da un
// error temprano legible; la carrera residual la cierra el índice único
// (el repo también traduce 23505 a ErrDuplicateMPN). created_at lo fija el
// almacén al instante de creación, inmutable después.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrForeignKey
	}
	if in.FootprintID != nil {
		footprint, err := uc.footprintRepo.GetByID(*in.FootprintID)
		if err != nil {
			return nil, err
		}
		if footprint == nil {
			return nil, domain.ErrForeignKey
		}
	}
	mpn := normalizeMPN(in.MPN)
	if mpn != nil {
		existing, err := uc.partRepo.GetByMPN(*mpn)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateMPN
		}
	}

	p := &entity.Part{
		CategoryID:  in.CategoryID,
		FootprintID: in.FootprintID,
		MPN:         mpn,
		Value:       in.Value,
		VoltRating:  in.VoltRating,
		WattRating:  in.WattRating,
		AmpRating:   in.AmpRating,
		PercentTol:  in.PercentTol,
		Stats:       in.Stats,
		Comments:    in.Comments,
	}
	if err := uc.partRepo.Create(p); err != nil {
		return nil, err
	}
	return toPartResponse(p), nil
}

// GetByID obtiene una parte; ErrNotFound si no existe.
func (uc *PartUseCase) GetByID(id int64) (*dto.PartResponse, error) {
	p, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPartResponse(p), nil
}

// List lista partes con paginación.
func (uc *PartUseCase) List(page dto.PageRequest) (*dto.PartListResponse, error) {
	page.DefaultPage()
	list, err := uc.partRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return &dto.PartListResponse{Items: items, Page: page}, nil
}

// Delete elimina la parte y todo su stock en una sola transacción: las dos
// eliminaciones, o ninguna. La vista de inventario deja de mostrar la parte
// en cuanto la transacción confirma.
func (uc *PartUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.StockMovementRepository,
		partRepo repository.PartRepository,
	) error {
		if _, err := stockRepo.DeleteByPart(id); err != nil {
			return err
		}
		return partRepo.Delete(id)
	})
}

// normalizeMPN recorta espacios y trata el mpn vacío como ausente: el
// constraint único solo aplica a mpn presentes.
func normalizeMPN(mpn *string) *string {
	if mpn == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*mpn)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		FootprintID: p.FootprintID,
		MPN:         p.MPN,
		Value:       p.Value,
		VoltRating:  p.VoltRating,
		WattRating:  p.WattRating,
		AmpRating:   p.AmpRating,
		PercentTol:  p.PercentTol,
		Stats:       p.Stats,
		Comments:    p.Comments,
		CreatedAt:   p.CreatedAt,
	}
}
