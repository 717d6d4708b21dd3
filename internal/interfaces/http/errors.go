package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Componentes-api/internal/application/dto"
	"github.com/jhoicas/Componentes-api/internal/domain"
)

// respondError traduce un error de dominio a código HTTP y cuerpo. Cada
// violación llega al caller con su tipo concreto, nunca como fallo genérico:
// 404 para no-encontrado, 409 para conflictos de estado (incluida la
// contención transaccional, marcada RETRY), 400 para entrada a corregir.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateMPN):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_MPN", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateEntry):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ENTRY", Message: err.Error()})
	case errors.Is(err, domain.ErrReferentialConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REFERENTIAL_CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrNegativeQuantity):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrTxConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RETRY", Message: err.Error()})
	case errors.Is(err, domain.ErrForeignKey):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FK_VIOLATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
