package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Prediccion-api/internal/application/dto"
	"github.com/jhoicas/Prediccion-api/internal/domain/forecast"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var decimalCien = decimal.NewFromInt(100)

const (
	diasHistoricoDefault = 30
	diasHistoricoMax     = 365

	// Variación porcentual a partir de la cual el consumo se considera
	// creciente o decreciente al comparar las dos últimas ventanas de 30 días.
	umbralTendenciaPct = 10
)

// Clasificación de tendencia de consumo.
const (
	TendenciaCreciente   = "creciente"
	TendenciaDecreciente = "decreciente"
	TendenciaEstable     = "estable"
)

// ConsumoUseCase consultas de historial y tendencia de consumo por insumo.
type ConsumoUseCase struct {
	repo repository.InsumoRepository
}

// NewConsumoUseCase construye el caso de uso.
func NewConsumoUseCase(repo repository.InsumoRepository) *ConsumoUseCase {
	return &ConsumoUseCase{repo: repo}
}

// Historico devuelve los egresos del insumo en los últimos `dias` días, el más
// reciente primero. dias fuera de [1, 365] se normaliza al default de 30.
// Propaga domain.ErrInsumoNotFound cuando el id no existe.
func (uc *ConsumoUseCase) Historico(ctx context.Context, insumoID int64, dias int) ([]dto.SalidaDTO, error) {
	if _, err := uc.repo.GetInsumo(ctx, insumoID); err != nil {
		return nil, err
	}

	if dias <= 0 || dias > diasHistoricoMax {
		dias = diasHistoricoDefault
	}
	hoy, _ := ventanaConsumo(time.Now())
	desde := hoy.AddDate(0, 0, -dias)

	salidas, err := uc.repo.ListSalidas(ctx, insumoID, desde)
	if err != nil {
		return nil, fmt.Errorf("consumo: historico del insumo %d: %w", insumoID, err)
	}

	resultado := make([]dto.SalidaDTO, 0, len(salidas))
	for _, s := range salidas {
		resultado = append(resultado, dto.SalidaDTO{
			Fecha:    s.Fecha.Format("2006-01-02"),
			Cantidad: s.Cantidad.InexactFloat64(),
		})
	}
	return resultado, nil
}

// Tendencia compara el consumo de los últimos 30 días contra la ventana de 30
// días anterior: variación mayor a +10% es creciente, menor a -10% decreciente
// y el resto estable. Sin consumo en la ventana anterior la tendencia es
// estable y la variación porcentual va en null.
func (uc *ConsumoUseCase) Tendencia(ctx context.Context, insumoID int64) (*dto.TendenciaDTO, error) {
	if _, err := uc.repo.GetInsumo(ctx, insumoID); err != nil {
		return nil, err
	}

	hoy, desde := ventanaConsumo(time.Now())
	desdeAnterior := hoy.AddDate(0, 0, -2*forecast.DiasVentana)

	reciente, err := uc.repo.ConsumoTotal(ctx, insumoID, desde)
	if err != nil {
		return nil, fmt.Errorf("consumo: ventana reciente del insumo %d: %w", insumoID, err)
	}
	anterior, err := uc.repo.ConsumoTotalEntre(ctx, insumoID, desdeAnterior, desde)
	if err != nil {
		return nil, fmt.Errorf("consumo: ventana anterior del insumo %d: %w", insumoID, err)
	}

	resultado := &dto.TendenciaDTO{
		InsumoID:        insumoID,
		Tendencia:       TendenciaEstable,
		ConsumoReciente: reciente.InexactFloat64(),
		ConsumoAnterior: anterior.InexactFloat64(),
	}
	if !anterior.IsPositive() {
		return resultado, nil
	}

	variacion := reciente.Sub(anterior).
		Div(anterior).
		Mul(decimalCien).
		Round(2)
	pct := variacion.InexactFloat64()
	resultado.VariacionPct = &pct

	switch {
	case pct > umbralTendenciaPct:
		resultado.Tendencia = TendenciaCreciente
	case pct < -umbralTendenciaPct:
		resultado.Tendencia = TendenciaDecreciente
	}
	return resultado, nil
}
