package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Prediccion-api/internal/application/dto"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
)

// SaludHandler banner de la API y prueba de conectividad con la base.
type SaludHandler struct {
	repo repository.InsumoRepository
}

// NewSaludHandler construye el handler.
func NewSaludHandler(repo repository.InsumoRepository) *SaludHandler {
	return &SaludHandler{repo: repo}
}

// Banner godoc
// @Summary      Banner de la API
// @Tags         salud
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       / [get]
func (h *SaludHandler) Banner(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{
		Message: "API del Laboratorio - Predicción de Insumos",
	})
}

// TestDB godoc
// @Summary      Prueba de conexión a PostgreSQL
// @Tags         salud
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /test-db [get]
func (h *SaludHandler) TestDB(c *fiber.Ctx) error {
	if err := h.repo.Ping(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Conexión a PostgreSQL exitosa"})
}
