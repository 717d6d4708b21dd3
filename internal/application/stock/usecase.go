package stock

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/domain"
	"github.com/jhoicas/Componentes-api/internal/domain/entity"
	"github.com/jhoicas/Componentes-api/internal/domain/repository"
)

// UseCase operaciones contables sobre el libro de stock, todas
// transaccionales y con bloqueo de fila (SELECT FOR UPDATE). La
// no-negatividad se valida aquí y la respalda el CHECK del almacén: nunca se
// recorta a cero en silencio, siempre se rechaza.
type UseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockRepository
	movRepo   repository.StockMovementRepository
}

// NewUseCase construye el caso de uso. stockRepo y movRepo son adaptadores
// atados al pool, solo para lecturas fuera de transacción.
func NewUseCase(txRunner TxRunner, stockRepo repository.StockRepository, movRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, stockRepo: stockRepo, movRepo: movRepo}
}

// CreateEntry crea explícitamente la fila de stock de un par (parte,
// ubicación) con cantidad inicial >= 0. Si el par ya tiene fila devuelve
// ErrDuplicateEntry: la unicidad la decide el índice único, no un
// check-then-act.
func (uc *UseCase) CreateEntry(ctx context.Context, in dto.CreateStockEntryRequest) (*dto.StockResponse, error) {
	if in.Quantity < 0 || (in.Staged != nil && *in.Staged < 0) {
		return nil, domain.ErrNegativeQuantity
	}
	locationID := in.LocationID
	s := &entity.Stock{PartID: in.PartID, LocationID: &locationID, Quantity: in.Quantity, Staged: in.Staged}
	txID := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		_ repository.PartRepository,
	) error {
		if err := stockRepo.Create(s); err != nil {
			return err
		}
		if s.Quantity == 0 {
			return nil
		}
		return movRepo.Create(&entity.StockMovement{
			TransactionID: txID,
			PartID:        s.PartID,
			LocationID:    s.LocationID,
			Type:          entity.MovementTypeRECEIVE,
			Quantity:      s.Quantity,
		})
	})
	if err != nil {
		return nil, err
	}
	return toStockResponse(s), nil
}

// Adjust aplica un delta a la cantidad del par. Si el par no tiene fila y el
// delta es >= 0, el delta actúa como cantidad inicial explícita y crea la
// fila; un delta negativo sobre fila inexistente es error del caller
// (ErrNotFound). Un resultado < 0 se rechaza con ErrNegativeQuantity y la
// cantidad previa queda intacta. Toda mutación exitosa estampa updated_at.
func (uc *UseCase) Adjust(ctx context.Context, in dto.AdjustStockRequest) (*dto.StockResponse, error) {
	var result *entity.Stock
	txID := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		_ repository.PartRepository,
	) error {
		s, err := stockRepo.GetForUpdate(in.PartID, in.LocationID)
		if err != nil {
			return err
		}
		if s == nil {
			if in.Delta < 0 {
				return domain.ErrNotFound
			}
			locationID := in.LocationID
			s = &entity.Stock{PartID: in.PartID, LocationID: &locationID, Quantity: in.Delta}
			if err := stockRepo.Create(s); err != nil {
				return err
			}
		} else {
			newQty := s.Quantity + in.Delta
			if newQty < 0 {
				return domain.ErrNegativeQuantity
			}
			s.Quantity = newQty
			if err := stockRepo.Update(s); err != nil {
				return err
			}
		}
		result = s
		movType := entity.MovementTypeRECEIVE
		if in.Delta < 0 {
			movType = entity.MovementTypeCONSUME
		}
		return movRepo.Create(&entity.StockMovement{
			TransactionID: txID,
			PartID:        in.PartID,
			LocationID:    s.LocationID,
			Type:          movType,
			Quantity:      in.Delta,
		})
	})
	if err != nil {
		return nil, err
	}
	return toStockResponse(result), nil
}

// SetStaged fija el contador staged del par. Staged en nil limpia el
// contador ("no rastreado", distinto de 0); un valor negativo se rechaza.
// Falla con ErrNotFound si el par no tiene fila: staged no crea filas.
func (uc *UseCase) SetStaged(ctx context.Context, in dto.SetStagedRequest) (*dto.StockResponse, error) {
	if in.Staged != nil && *in.Staged < 0 {
		return nil, domain.ErrNegativeQuantity
	}
	var result *entity.Stock
	txID := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		_ repository.PartRepository,
	) error {
		s, err := stockRepo.GetForUpdate(in.PartID, in.LocationID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		s.Staged = in.Staged
		if err := stockRepo.Update(s); err != nil {
			return err
		}
		result = s
		var staged int64
		if in.Staged != nil {
			staged = *in.Staged
		}
		return movRepo.Create(&entity.StockMovement{
			TransactionID: txID,
			PartID:        in.PartID,
			LocationID:    s.LocationID,
			Type:          entity.MovementTypeSTAGE,
			Quantity:      staged,
		})
	})
	if err != nil {
		return nil, err
	}
	return toStockResponse(result), nil
}

// Move transfiere amount unidades de una ubicación a otra en una sola
// transacción: resta en origen, suma en destino (creando la fila destino si
// no existe) y guarda las dos patas del movimiento con el mismo
// transaction_id. Si cualquier pata falla, ambas se revierten.
func (uc *UseCase) Move(ctx context.Context, in dto.MoveStockRequest) error {
	if in.Amount <= 0 || in.FromLocationID == in.ToLocationID {
		return domain.ErrInvalidInput
	}
	txID := uuid.New().String()
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		_ repository.PartRepository,
	) error {
		// Bloquea la fila origen
		origin, err := stockRepo.GetForUpdate(in.PartID, in.FromLocationID)
		if err != nil {
			return err
		}
		if origin == nil {
			return domain.ErrNotFound
		}
		if origin.Quantity < in.Amount {
			return domain.ErrNegativeQuantity
		}
		origin.Quantity -= in.Amount
		if err := stockRepo.Update(origin); err != nil {
			return err
		}

		dest, err := stockRepo.GetForUpdate(in.PartID, in.ToLocationID)
		if err != nil {
			return err
		}
		if dest == nil {
			toLocationID := in.ToLocationID
			dest = &entity.Stock{PartID: in.PartID, LocationID: &toLocationID, Quantity: in.Amount}
			if err := stockRepo.Create(dest); err != nil {
				return err
			}
		} else {
			dest.Quantity += in.Amount
			if err := stockRepo.Update(dest); err != nil {
				return err
			}
		}

		out := &entity.StockMovement{
			TransactionID: txID,
			PartID:        in.PartID,
			LocationID:    origin.LocationID,
			Type:          entity.MovementTypeTRANSFER,
			Quantity:      -in.Amount,
		}
		if err := movRepo.Create(out); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			TransactionID: txID,
			PartID:        in.PartID,
			LocationID:    dest.LocationID,
			Type:          entity.MovementTypeTRANSFER,
			Quantity:      in.Amount,
		})
	})
}

// ListByPart lista las filas de stock de una parte (lectura sin bloqueo).
func (uc *UseCase) ListByPart(partID int64) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListByPart(partID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return items, nil
}

// ListMovements lista el historial de movimientos de una parte, los más
// recientes primero.
func (uc *UseCase) ListMovements(partID int64, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	page.DefaultPage()
	list, err := uc.movRepo.ListByPart(partID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			PartID:        m.PartID,
			LocationID:    m.LocationID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			CreatedAt:     m.CreatedAt,
		})
	}
	return items, nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:         s.ID,
		PartID:     s.PartID,
		LocationID: s.LocationID,
		Quantity:   s.Quantity,
		Staged:     s.Staged,
		UpdatedAt:  s.UpdatedAt,
	}
}
