package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"yggdrasil/internal/application/dto"
	"yggdrasil/internal/domain"
	"yggdrasil/pkg/password"
)

// respondError mapea errores de dominio a HTTP: ErrNotFound -> 404,
// ErrDuplicateData y política de contraseñas -> 400, resto -> 500.
// Los errores de dominio llegan envueltos con el detalle legible, por lo que
// err.Error() ya trae el mensaje completo.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateData):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_DATA", Message: err.Error()})
	case errors.Is(err, password.ErrInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PASSWORD", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
