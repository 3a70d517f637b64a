package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Prediccion-api/internal/application/dto"
	"github.com/jhoicas/Prediccion-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// respondError mapea errores de dominio a un único contrato de error HTTP:
// not-found -> 404, todo lo demás -> 500. El servicio original mezclaba 200
// con cuerpo de error y 500 según el endpoint; aquí se normaliza.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInsumoNotFound) || errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "insumo no encontrado",
		})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL_ERROR", Message: err.Error(),
	})
}

// respondInvalidParam respuesta 400 para parámetros de ruta o query inválidos.
func respondInvalidParam(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: message,
	})
}
