package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Prediccion-api/internal/application/usecase"
)

// ConsumoHandler maneja el historial y la tendencia de consumo por insumo.
type ConsumoHandler struct {
	uc *usecase.ConsumoUseCase
}

// NewConsumoHandler construye el handler.
func NewConsumoHandler(uc *usecase.ConsumoUseCase) *ConsumoHandler {
	return &ConsumoHandler{uc: uc}
}

// Historico godoc
// @Summary      Egresos del insumo en la ventana de días indicada
// @Tags         consumo
// @Produce      json
// @Param        insumoId  path   int  true   "ID del insumo"
// @Param        dias      query  int  false  "Días de historial (default 30, max 365)"
// @Success      200  {array}   dto.SalidaDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /consumo/historico/{insumoId} [get]
func (h *ConsumoHandler) Historico(c *fiber.Ctx) error {
	insumoID, err := c.ParamsInt("insumoId")
	if err != nil || insumoID <= 0 {
		return respondInvalidParam(c, "insumoId debe ser un entero positivo")
	}
	dias := c.QueryInt("dias", 0)

	salidas, err := h.uc.Historico(c.Context(), int64(insumoID), dias)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(salidas)
}

// Tendencia godoc
// @Summary      Tendencia de consumo (últimos 30 días vs 30 anteriores)
// @Tags         consumo
// @Produce      json
// @Param        insumoId  path  int  true  "ID del insumo"
// @Success      200  {object}  dto.TendenciaDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /consumo/tendencia/{insumoId} [get]
func (h *ConsumoHandler) Tendencia(c *fiber.Ctx) error {
	insumoID, err := c.ParamsInt("insumoId")
	if err != nil || insumoID <= 0 {
		return respondInvalidParam(c, "insumoId debe ser un entero positivo")
	}

	tendencia, err := h.uc.Tendencia(c.Context(), int64(insumoID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tendencia)
}
