package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Prediccion-api/internal/application/dto"
	"github.com/jhoicas/Prediccion-api/internal/application/usecase"
)

// ModeloHandler maneja los endpoints de estadísticas y precisión del modelo.
type ModeloHandler struct {
	uc *usecase.ModeloUseCase
}

// NewModeloHandler construye el handler.
func NewModeloHandler(uc *usecase.ModeloUseCase) *ModeloHandler {
	return &ModeloHandler{uc: uc}
}

// Estadisticas godoc
// @Summary      Estadísticas de dispersión del consumo de 30 días
// @Tags         modelo
// @Produce      json
// @Success      200  {object}  dto.EstadisticasModeloDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /modelo/estadisticas [get]
func (h *ModeloHandler) Estadisticas(c *fiber.Ctx) error {
	est, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if est == nil {
		return c.JSON(dto.MensajeResponse{
			Mensaje: "No hay datos de consumo en los últimos 30 días",
		})
	}
	return c.JSON(est)
}

// Precision godoc
// @Summary      Precisión del modelo (100 - coeficiente de variación)
// @Tags         modelo
// @Produce      json
// @Success      200  {object}  dto.PrecisionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /precision [get]
func (h *ModeloHandler) Precision(c *fiber.Ctx) error {
	precision, err := h.uc.Precision(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PrecisionDTO{Precision: precision})
}
