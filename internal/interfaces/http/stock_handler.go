package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP del libro de stock.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// CreateEntry godoc
// @Summary      Crear fila de stock para (parte, ubicación)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockEntryRequest  true  "part_id, location_id, quantity inicial >= 0, staged opcional"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *StockHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.CreateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateEntry(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Adjust godoc
// @Summary      Aplicar delta de cantidad
// @Description  Suma delta a la cantidad del par (parte, ubicación). Con fila
//
//	inexistente, un delta >= 0 crea la fila con esa cantidad inicial; un
//	resultado negativo se rechaza, nunca se recorta a cero.
//
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "part_id, location_id, delta"
// @Success      200   {object}  dto.StockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Adjust(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStaged godoc
// @Summary      Fijar contador staged
// @Description  staged en null limpia el contador (no rastreado, distinto de 0).
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetStagedRequest  true  "part_id, location_id, staged (null limpia)"
// @Success      200   {object}  dto.StockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/staged [put]
func (h *StockHandler) SetStaged(c *fiber.Ctx) error {
	var in dto.SetStagedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStaged(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Mover cantidad entre ubicaciones
// @Description  Resta en origen y suma en destino atómicamente; las dos patas
//
//	comparten transaction_id en el registro de movimientos.
//
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveStockRequest  true  "part_id, from_location_id, to_location_id, amount > 0"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/move [post]
func (h *StockHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Move(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento aplicado"})
}

// Movements godoc
// @Summary      Historial de movimientos de una parte
// @Description  Registro append-only; las dos patas de una transferencia
//
//	comparten transaction_id.
//
// @Tags         stock
// @Produce      json
// @Param        part_id  query  int  true   "ID de la parte"
// @Param        limit    query  int  false  "Límite"  default(50)
// @Param        offset   query  int  false  "Offset"  default(0)
// @Success      200  {array}   dto.StockMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	partID := c.QueryInt("part_id")
	if partID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "part_id es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListMovements(int64(partID), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByPart godoc
// @Summary      Listar stock de una parte
// @Tags         stock
// @Produce      json
// @Param        part_id  query  int  true  "ID de la parte"
// @Success      200  {array}   dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) ListByPart(c *fiber.Ctx) error {
	partID := c.QueryInt("part_id")
	if partID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "part_id es requerido"})
	}
	out, err := h.uc.ListByPart(int64(partID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
