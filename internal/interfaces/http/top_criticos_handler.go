package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Prediccion-api/internal/application/usecase"
)

// TopCriticosHandler maneja el ranking de insumos más urgentes.
type TopCriticosHandler struct {
	uc *usecase.TopCriticosUseCase
}

// NewTopCriticosHandler construye el handler.
func NewTopCriticosHandler(uc *usecase.TopCriticosUseCase) *TopCriticosHandler {
	return &TopCriticosHandler{uc: uc}
}

// Listar godoc
// @Summary      Top 10 de insumos bajos de stock por días restantes
// @Tags         prediccion
// @Produce      json
// @Success      200  {array}   dto.TopCriticoDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /top-criticos [get]
func (h *TopCriticosHandler) Listar(c *fiber.Ctx) error {
	criticos, err := h.uc.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(criticos)
}
