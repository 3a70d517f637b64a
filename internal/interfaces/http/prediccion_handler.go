package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Prediccion-api/internal/application/usecase"
)

// PrediccionHandler maneja el endpoint de predicción por insumo.
type PrediccionHandler struct {
	uc *usecase.PrediccionUseCase
}

// NewPrediccionHandler construye el handler.
func NewPrediccionHandler(uc *usecase.PrediccionUseCase) *PrediccionHandler {
	return &PrediccionHandler{uc: uc}
}

// Predecir godoc
// @Summary      Predicción de agotamiento de un insumo
// @Description  Proyección lineal de 30 días a partir del consumo reciente,
//               con nivel de riesgo y cantidad sugerida de pedido.
// @Tags         prediccion
// @Produce      json
// @Param        insumoId  path  int  true  "ID del insumo"
// @Success      200  {object}  dto.PrediccionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /predecir/{insumoId} [get]
func (h *PrediccionHandler) Predecir(c *fiber.Ctx) error {
	insumoID, err := c.ParamsInt("insumoId")
	if err != nil || insumoID <= 0 {
		return respondInvalidParam(c, "insumoId debe ser un entero positivo")
	}

	prediccion, err := h.uc.Predecir(c.Context(), int64(insumoID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prediccion)
}
