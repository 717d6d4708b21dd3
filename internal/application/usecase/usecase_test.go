package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/application/usecase"
	"github.com/jhoicas/Componentes-api/internal/domain"
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memNameRepo tabla de catálogo en memoria (categorías o huellas): nombre
// único con match exacto, eliminación bloqueada mientras haya referencias.
type memNameRepo struct {
	seq  int64
	rows map[int64]string
	refs map[int64]int // referencias vivas por id
}

func newMemNameRepo() *memNameRepo {
	return &memNameRepo{rows: map[int64]string{}, refs: map[int64]int{}}
}

func (r *memNameRepo) create(name string) (int64, error) {
	for _, existing := range r.rows {
		if existing == name {
			return 0, domain.ErrDuplicateName
		}
	}
	r.seq++
	r.rows[r.seq] = name
	return r.seq, nil
}

func (r *memNameRepo) delete(id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	if r.refs[id] > 0 {
		return domain.ErrReferentialConflict
	}
	delete(r.rows, id)
	return nil
}

type memCategoryRepo struct{ *memNameRepo }

func (r memCategoryRepo) Create(c *entity.Category) error {
	id, err := r.create(c.Name)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r memCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	name, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &entity.Category{ID: id, Name: name}, nil
}

func (r memCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for id, name := range r.rows {
		out = append(out, &entity.Category{ID: id, Name: name})
	}
	return out, nil
}

func (r memCategoryRepo) Delete(id int64) error { return r.delete(id) }

type memFootprintRepo struct{ *memNameRepo }

func (r memFootprintRepo) Create(f *entity.Footprint) error {
	id, err := r.create(f.Name)
	if err != nil {
		return err
	}
	f.ID = id
	return nil
}

func (r memFootprintRepo) GetByID(id int64) (*entity.Footprint, error) {
	name, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &entity.Footprint{ID: id, Name: name}, nil
}

func (r memFootprintRepo) List() ([]*entity.Footprint, error) {
	var out []*entity.Footprint
	for id, name := range r.rows {
		out = append(out, &entity.Footprint{ID: id, Name: name})
	}
	return out, nil
}

func (r memFootprintRepo) Delete(id int64) error { return r.delete(id) }

// memPartRepo registro de partes en memoria con índice único de mpn.
type memPartRepo struct {
	seq  int64
	rows map[int64]*entity.Part
}

func newMemPartRepo() *memPartRepo { return &memPartRepo{rows: map[int64]*entity.Part{}} }

func (r *memPartRepo) Create(p *entity.Part) error {
	if p.MPN != nil {
		for _, existing := range r.rows {
			if existing.MPN != nil && *existing.MPN == *p.MPN {
				return domain.ErrDuplicateMPN
			}
		}
	}
	r.seq++
	p.ID = r.seq
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *memPartRepo) GetByID(id int64) (*entity.Part, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPartRepo) GetByMPN(mpn string) (*entity.Part, error) {
	for _, p := range r.rows {
		if p.MPN != nil && *p.MPN == mpn {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPartRepo) List(limit, offset int) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.rows {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPartRepo) Delete(id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// memStockRows stock mínimo para el borrado en cascada de partes.
type memStockRows struct {
	rows map[int64][]*entity.Stock // por part_id
}

func (r *memStockRows) Get(partID, locationID int64) (*entity.Stock, error)          { return nil, nil }
func (r *memStockRows) GetForUpdate(partID, locationID int64) (*entity.Stock, error) { return nil, nil }
func (r *memStockRows) Create(s *entity.Stock) error                                 { return nil }
func (r *memStockRows) Update(s *entity.Stock) error                                 { return nil }

func (r *memStockRows) ListByPart(partID int64) ([]*entity.Stock, error) {
	return r.rows[partID], nil
}

func (r *memStockRows) DeleteByPart(partID int64) (int64, error) {
	n := int64(len(r.rows[partID]))
	delete(r.rows, partID)
	return n, nil
}

// memTxRunner emula la transacción del borrado en cascada: si fn falla, el
// stock eliminado se restaura.
type memTxRunner struct {
	stock *memStockRows
	parts *memPartRepo
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	partRepo repository.PartRepository,
) error) error {
	snap := make(map[int64][]*entity.Stock, len(tx.stock.rows))
	for k, v := range tx.stock.rows {
		snap[k] = append([]*entity.Stock(nil), v...)
	}
	if err := fn(tx.stock, nil, tx.parts); err != nil {
		tx.stock.rows = snap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func str(s string) *string { return &s }
func i64(v int64) *int64   { return &v }

type partFixture struct {
	uc         *usecase.PartUseCase
	parts      *memPartRepo
	categories memCategoryRepo
	footprints memFootprintRepo
	stock      *memStockRows
	categoryID int64
}

func newPartFixture(t *testing.T) *partFixture {
	t.Helper()
	categories := memCategoryRepo{newMemNameRepo()}
	footprints := memFootprintRepo{newMemNameRepo()}
	parts := newMemPartRepo()
	stock := &memStockRows{rows: map[int64][]*entity.Stock{}}

	categoryID, err := categories.create("Resistencias")
	require.NoError(t, err)

	uc := usecase.NewPartUseCase(&memTxRunner{stock: stock, parts: parts}, parts, categories, footprints)
	return &partFixture{uc: uc, parts: parts, categories: categories,
		footprints: footprints, stock: stock, categoryID: categoryID}
}

// ──────────────────────────────────────────────────────────────────────────────
// CatalogUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: crear categoría con nombre nuevo.
func TestCatalog_CrearCategoria(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memCategoryRepo{newMemNameRepo()}, memFootprintRepo{newMemNameRepo()})

	out, err := uc.CreateCategory(dto.CreateNameRequest{Name: "  Condensadores  "})
	require.NoError(t, err)
	assert.Equal(t, "Condensadores", out.Name, "el nombre debe recortarse")
	assert.NotZero(t, out.ID)
}

// Caso 2: nombre duplicado (match exacto) → ErrDuplicateName; la distinción
// de mayúsculas es un nombre distinto.
func TestCatalog_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memCategoryRepo{newMemNameRepo()}, memFootprintRepo{newMemNameRepo()})

	_, err := uc.CreateCategory(dto.CreateNameRequest{Name: "Diodos"})
	require.NoError(t, err)

	_, err = uc.CreateCategory(dto.CreateNameRequest{Name: "Diodos"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = uc.CreateCategory(dto.CreateNameRequest{Name: "diodos"})
	assert.NoError(t, err, "el match es sensible a mayúsculas")
}

// Caso 3: nombre vacío o solo espacios → ErrInvalidInput.
func TestCatalog_NombreVacio(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memCategoryRepo{newMemNameRepo()}, memFootprintRepo{newMemNameRepo()})

	_, err := uc.CreateFootprint(dto.CreateNameRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 4: eliminar una categoría referenciada por una parte se rechaza y la
// categoría sobrevive.
func TestCatalog_EliminarCategoriaReferenciada(t *testing.T) {
	categories := memCategoryRepo{newMemNameRepo()}
	uc := usecase.NewCatalogUseCase(categories, memFootprintRepo{newMemNameRepo()})

	out, err := uc.CreateCategory(dto.CreateNameRequest{Name: "Bobinas"})
	require.NoError(t, err)
	categories.refs[out.ID] = 1

	err = uc.DeleteCategory(out.ID)
	assert.ErrorIs(t, err, domain.ErrReferentialConflict)

	got, err := categories.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "la categoría debe sobrevivir al rechazo")
}

// ──────────────────────────────────────────────────────────────────────────────
// PartUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: crear parte con categoría válida; solo category_id es obligatorio.
func TestPart_CrearMinima(t *testing.T) {
	f := newPartFixture(t)

	out, err := f.uc.Create(dto.CreatePartRequest{CategoryID: f.categoryID})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Nil(t, out.MPN)
	assert.Nil(t, out.FootprintID)
}

// Caso 2: categoría inexistente → ErrForeignKey.
func TestPart_CategoriaInexistente(t *testing.T) {
	f := newPartFixture(t)

	_, err := f.uc.Create(dto.CreatePartRequest{CategoryID: 999})
	assert.ErrorIs(t, err, domain.ErrForeignKey)
}

// Caso 3: huella inexistente → ErrForeignKey.
func TestPart_HuellaInexistente(t *testing.T) {
	f := newPartFixture(t)

	_, err := f.uc.Create(dto.CreatePartRequest{CategoryID: f.categoryID, FootprintID: i64(999)})
	assert.ErrorIs(t, err, domain.ErrForeignKey)
}

// Caso 4: mpn duplicado → ErrDuplicateMPN.
func TestPart_MPNDuplicado(t *testing.T) {
	f := newPartFixture(t)

	_, err := f.uc.Create(dto.CreatePartRequest{CategoryID: f.categoryID, MPN: str("LM358")})
	require.NoError(t, err)

	_, err = f.uc.Create(dto.CreatePartRequest{CategoryID: f.categoryID, MPN: str("LM358")})
	assert.ErrorIs(t, err, domain.ErrDuplicateMPN)
}

// Caso 5: mpn vacío o solo espacios se trata como ausente, y varias partes
// sin mpn conviven sin conflicto.
func TestPart_MPNVacioEsAusente(t *testing.T) {
	f := newPartFixture(t)

	first, err := f.uc.Create(dto.CreatePartRequest{CategoryID: f.categoryID, MPN: str("   ")})
	require.NoError(t, err)
	assert.Nil(t, first.MPN, "mpn en blanco debe normalizarse a ausente")

	_, err = f.uc.Create(dto.CreatePartRequest{CategoryID: f.categoryID})
	assert.NoError(t, err, "la unicidad de mpn no aplica a partes sin mpn")
}

// Caso 6: GetByID de una parte inexistente → ErrNotFound.
func TestPart_GetByIDInexistente(t *testing.T) {
	f := newPartFixture(t)

	_, err := f.uc.GetByID(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 7: eliminar una parte elimina su stock en la misma transacción.
func TestPart_DeleteEnCascada(t *testing.T) {
	f := newPartFixture(t)

	out, err := f.uc.Create(dto.CreatePartRequest{CategoryID: f.categoryID, MPN: str("NE555")})
	require.NoError(t, err)
	loc := int64(10)
	f.stock.rows[out.ID] = []*entity.Stock{{PartID: out.ID, LocationID: &loc, Quantity: 30}}

	require.NoError(t, f.uc.Delete(context.Background(), out.ID))

	_, err = f.uc.GetByID(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.stock.rows[out.ID], "el stock de la parte debe eliminarse con ella")
}

// Caso 8: si la parte no existe, el borrado falla y el stock (de otras
// partes) no se toca.
func TestPart_DeleteInexistenteRevierte(t *testing.T) {
	f := newPartFixture(t)
	loc := int64(10)
	f.stock.rows[42] = []*entity.Stock{{PartID: 42, LocationID: &loc, Quantity: 5}}

	err := f.uc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, f.stock.rows[42], 1, "la transacción debe revertir el borrado de stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// LocationUseCase
// ──────────────────────────────────────────────────────────────────────────────

// memLocationRepo registro de ubicaciones en memoria.
type memLocationRepo struct {
	*memNameRepo
	descriptions map[int64]*string
}

func (r *memLocationRepo) Create(l *entity.Location) error {
	id, err := r.create(l.Name)
	if err != nil {
		return err
	}
	l.ID = id
	r.descriptions[id] = l.Description
	return nil
}

func (r *memLocationRepo) GetByID(id int64) (*entity.Location, error) {
	name, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &entity.Location{ID: id, Name: name, Description: r.descriptions[id]}, nil
}

func (r *memLocationRepo) List() ([]*entity.Location, error) {
	var out []*entity.Location
	for id, name := range r.rows {
		out = append(out, &entity.Location{ID: id, Name: name, Description: r.descriptions[id]})
	}
	return out, nil
}

func (r *memLocationRepo) Delete(id int64) error { return r.delete(id) }

// Caso 1: crear y listar ubicaciones.
func TestLocation_CrearYListar(t *testing.T) {
	repo := &memLocationRepo{memNameRepo: newMemNameRepo(), descriptions: map[int64]*string{}}
	uc := usecase.NewLocationUseCase(repo)

	out, err := uc.Create(dto.CreateLocationRequest{Name: "Cajón A3", Description: str("estantería del taller")})
	require.NoError(t, err)
	assert.Equal(t, "Cajón A3", out.Name)
	require.NotNil(t, out.Description)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// Caso 2: nombre de ubicación duplicado → ErrDuplicateName.
func TestLocation_NombreDuplicado(t *testing.T) {
	repo := &memLocationRepo{memNameRepo: newMemNameRepo(), descriptions: map[int64]*string{}}
	uc := usecase.NewLocationUseCase(repo)

	_, err := uc.Create(dto.CreateLocationRequest{Name: "Cajón A3"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateLocationRequest{Name: "Cajón A3"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

// Caso 3: eliminar una ubicación con stock se rechaza; ubicación y stock
// quedan intactos.
func TestLocation_EliminarConStock(t *testing.T) {
	repo := &memLocationRepo{memNameRepo: newMemNameRepo(), descriptions: map[int64]*string{}}
	uc := usecase.NewLocationUseCase(repo)

	out, err := uc.Create(dto.CreateLocationRequest{Name: "Cajón B1"})
	require.NoError(t, err)
	repo.refs[out.ID] = 2 // dos filas de stock la referencian

	err = uc.Delete(out.ID)
	assert.ErrorIs(t, err, domain.ErrReferentialConflict)

	got, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
