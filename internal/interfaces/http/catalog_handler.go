package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/application/usecase"
)

// CatalogHandler maneja las peticiones HTTP de categorías y huellas.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNameRequest  true  "Nombre de la categoría"
// @Success      201   {object}  dto.NameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCategory(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.NameResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.DeleteCategory(int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateFootprint godoc
// @Summary      Crear huella
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNameRequest  true  "Nombre de la huella"
// @Success      201   {object}  dto.NameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/footprints [post]
func (h *CatalogHandler) CreateFootprint(c *fiber.Ctx) error {
	var in dto.CreateNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateFootprint(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListFootprints godoc
// @Summary      Listar huellas
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.NameResponse
// @Router       /api/footprints [get]
func (h *CatalogHandler) ListFootprints(c *fiber.Ctx) error {
	out, err := h.uc.ListFootprints()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteFootprint godoc
// @Summary      Eliminar huella
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID de la huella"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/footprints/{id} [delete]
func (h *CatalogHandler) DeleteFootprint(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.DeleteFootprint(int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
