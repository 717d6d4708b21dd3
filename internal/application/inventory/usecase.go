package inventory

import (
	"strings"

	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// UseCase lectura de la proyección de inventario. Sin operaciones de
// escritura: la vista se deriva por completo de catálogo, partes,
// ubicaciones y stock, y refleja su último estado confirmado.
type UseCase struct {
	repo repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Search consulta la vista. Los filtros por id y rango de valor bajan a SQL;
// la búsqueda de texto libre (mpn, comments) se aplica aquí con normalización
// de acentos, y en ese caso la paginación también se resuelve aquí, después
// de filtrar.
func (uc *UseCase) Search(in dto.InventorySearchRequest) (*dto.InventorySearchResponse, error) {
	in.DefaultPage()
	filter := repository.InventoryFilter{
		CategoryID:  in.CategoryID,
		FootprintID: in.FootprintID,
		MinValue:    in.MinValue,
		MaxValue:    in.MaxValue,
	}

	needle := Fold(strings.TrimSpace(in.Text))
	if needle == "" {
		filter.Limit = in.Limit
		filter.Offset = in.Offset
	}

	rows, err := uc.repo.Search(filter)
	if err != nil {
		return nil, err
	}

	if needle != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if matches(needle, row.MPN, row.Comments) {
				filtered = append(filtered, row)
			}
		}
		rows = paginate(filtered, in.Offset, in.Limit)
	}

	items := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toRowResponse(row))
	}
	return &dto.InventorySearchResponse{Total: len(items), Items: items}, nil
}

func paginate(rows []*entity.InventoryRow, offset, limit int) []*entity.InventoryRow {
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func toRowResponse(row *entity.InventoryRow) dto.InventoryRowResponse {
	return dto.InventoryRowResponse{
		PartID:    row.PartID,
		MPN:       row.MPN,
		Category:  row.Category,
		Footprint: row.Footprint,
		Value:     row.Value,
		Location:  row.Location,
		Quantity:  row.Quantity,
		Staged:    row.Staged,
		Comments:  row.Comments,
	}
}
