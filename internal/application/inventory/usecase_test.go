package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/application/inventory"
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de la vista
// ──────────────────────────────────────────────────────────────────────────────

// memInventoryRepo devuelve filas fijas y captura el filtro recibido, para
// verificar qué baja a SQL y qué se resuelve en el caso de uso.
type memInventoryRepo struct {
	rows       []*entity.InventoryRow
	lastFilter repository.InventoryFilter
}

func (r *memInventoryRepo) Search(filter repository.InventoryFilter) ([]*entity.InventoryRow, error) {
	r.lastFilter = filter
	out := r.rows
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func str(s string) *string { return &s }
func i64(v int64) *int64   { return &v }

func row(partID int64, mpn, comments *string) *entity.InventoryRow {
	return &entity.InventoryRow{PartID: partID, MPN: mpn, Comments: comments}
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin texto libre, limit/offset bajan al repositorio tal cual.
func TestSearch_PaginacionEnSQL(t *testing.T) {
	repo := &memInventoryRepo{rows: []*entity.InventoryRow{
		row(1, str("A"), nil), row(2, str("B"), nil), row(3, str("C"), nil),
	}}
	uc := inventory.NewUseCase(repo)

	out, err := uc.Search(dto.InventorySearchRequest{
		PageRequest: dto.PageRequest{Limit: 2, Offset: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lastFilter.Limit, "el limit debe bajar a SQL")
	assert.Equal(t, 1, repo.lastFilter.Offset, "el offset debe bajar a SQL")
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(2), out.Items[0].PartID)
}

// Caso 2: con texto libre la paginación se resuelve después de filtrar, no
// en SQL.
func TestSearch_TextoLibrePaginaEnMemoria(t *testing.T) {
	repo := &memInventoryRepo{rows: []*entity.InventoryRow{
		row(1, str("RES-100"), nil),
		row(2, nil, str("resistencia 1k")),
		row(3, str("CAP-10"), nil),
		row(4, nil, str("otra resisténcia")),
	}}
	uc := inventory.NewUseCase(repo)

	out, err := uc.Search(dto.InventorySearchRequest{
		Text:        "resistencia",
		PageRequest: dto.PageRequest{Limit: 1, Offset: 1},
	})
	require.NoError(t, err)
	assert.Zero(t, repo.lastFilter.Limit, "con texto libre el repo no debe paginar")
	assert.Zero(t, repo.lastFilter.Offset)
	require.Len(t, out.Items, 1, "la paginación aplica sobre el resultado filtrado")
	assert.Equal(t, int64(4), out.Items[0].PartID)
}

// Caso 3: la búsqueda de texto es insensible a acentos y mayúsculas en ambos
// lados.
func TestSearch_TextoInsensibleAAcentos(t *testing.T) {
	repo := &memInventoryRepo{rows: []*entity.InventoryRow{
		row(1, nil, str("Condensádor electrolítico")),
		row(2, str("NE555"), nil),
	}}
	uc := inventory.NewUseCase(repo)

	out, err := uc.Search(dto.InventorySearchRequest{Text: "CONDENSADOR"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].PartID)
	assert.Equal(t, 1, out.Total)
}

// Caso 4: los filtros por id y rango de valor bajan al repositorio.
func TestSearch_FiltrosBajanAlRepo(t *testing.T) {
	repo := &memInventoryRepo{}
	uc := inventory.NewUseCase(repo)

	minV := decimal.NewFromInt(100)
	maxV := decimal.NewFromInt(10000)
	_, err := uc.Search(dto.InventorySearchRequest{
		CategoryID:  i64(3),
		FootprintID: i64(7),
		MinValue:    &minV,
		MaxValue:    &maxV,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.CategoryID)
	assert.Equal(t, int64(3), *repo.lastFilter.CategoryID)
	require.NotNil(t, repo.lastFilter.FootprintID)
	assert.Equal(t, int64(7), *repo.lastFilter.FootprintID)
	require.NotNil(t, repo.lastFilter.MinValue)
	assert.True(t, repo.lastFilter.MinValue.Equal(minV))
	require.NotNil(t, repo.lastFilter.MaxValue)
	assert.True(t, repo.lastFilter.MaxValue.Equal(maxV))
}

// Caso 5: sin filas que coincidan, la respuesta es vacía con total 0.
func TestSearch_SinResultados(t *testing.T) {
	repo := &memInventoryRepo{rows: []*entity.InventoryRow{row(1, str("NE555"), nil)}}
	uc := inventory.NewUseCase(repo)

	out, err := uc.Search(dto.InventorySearchRequest{Text: "zzz"})
	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Empty(t, out.Items)
}
