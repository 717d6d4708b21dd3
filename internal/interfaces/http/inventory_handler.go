package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/application/inventory"
	"github.com/shopspring/decimal"
)

// InventoryHandler maneja las consultas sobre la vista de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Search godoc
// @Summary      Consultar la vista de inventario
// @Description  Una fila por (parte, stock); partes sin stock aparecen con
//
//	campos de stock en null. q busca sobre mpn y comments sin
//	distinguir mayúsculas ni acentos.
//
// @Tags         inventory
// @Produce      json
// @Param        category_id   query  int     false  "Filtrar por categoría"
// @Param        footprint_id  query  int     false  "Filtrar por huella"
// @Param        min_value     query  number  false  "Valor mínimo"
// @Param        max_value     query  number  false  "Valor máximo"
// @Param        q             query  string  false  "Búsqueda de texto libre"
// @Param        limit         query  int     false  "Límite"  default(50)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.InventorySearchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Search(c *fiber.Ctx) error {
	in, err := parseSearchRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Search(*in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseSearchRequest arma el request a mano: los filtros opcionales deben
// distinguir "ausente" de "cero", y los valores son decimales.
func parseSearchRequest(c *fiber.Ctx) (*dto.InventorySearchRequest, error) {
	in := dto.InventorySearchRequest{Text: c.Query("q")}
	in.Limit = c.QueryInt("limit", 0)
	in.Offset = c.QueryInt("offset", 0)

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		in.CategoryID = &id
	}
	if raw := c.Query("footprint_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		in.FootprintID = &id
	}
	if raw := c.Query("min_value"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		in.MinValue = &v
	}
	if raw := c.Query("max_value"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		in.MaxValue = &v
	}
	return &in, nil
}
