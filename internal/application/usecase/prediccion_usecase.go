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

// PrediccionUseCase genera la predicción de agotamiento de un insumo a partir
// de su existencia actual y el consumo de la ventana móvil de 30 días.
type PrediccionUseCase struct {
	repo repository.InsumoRepository
}

// NewPrediccionUseCase construye el caso de uso.
func NewPrediccionUseCase(repo repository.InsumoRepository) *PrediccionUseCase {
	return &PrediccionUseCase{repo: repo}
}

// Predecir arma la predicción completa del insumo: promedio diario, días
// restantes, nivel de riesgo, cantidad sugerida de pedido y la proyección de
// 30 días. Propaga domain.ErrInsumoNotFound cuando el id no existe.
func (uc *PrediccionUseCase) Predecir(ctx context.Context, insumoID int64) (*dto.PrediccionDTO, error) {
	insumo, err := uc.repo.GetInsumo(ctx, insumoID)
	if err != nil {
		return nil, err
	}

	hoy, desde := ventanaConsumo(time.Now())
	consumo, err := uc.repo.ConsumoTotal(ctx, insumoID, desde)
	if err != nil {
		return nil, fmt.Errorf("prediccion: consumo 30d del insumo %d: %w", insumoID, err)
	}

	p := forecast.Calcular(insumo.Existencia, consumo, hoy)

	proyeccion := make([]dto.PuntoProyeccionDTO, 0, len(p.Proyeccion))
	for _, punto := range p.Proyeccion {
		proyeccion = append(proyeccion, dto.PuntoProyeccionDTO{
			Dia:           punto.Dia,
			Fecha:         punto.Fecha.Format("2006-01-02"),
			StockEstimado: punto.StockEstimado.InexactFloat64(),
		})
	}

	return &dto.PrediccionDTO{
		InsumoID:               insumo.ID,
		Nombre:                 insumo.Nombre,
		ExistenciaActual:       insumo.Existencia.InexactFloat64(),
		PromedioDiario:         p.PromedioDiario.Round(2).InexactFloat64(),
		DiasRestantes:          redondear2Opcional(p.DiasRestantes),
		NivelRiesgo:            string(p.Nivel),
		Recomendacion:          p.Recomendacion,
		CantidadSugeridaPedido: p.CantidadPedido,
		Proyeccion30Dias:       proyeccion,
	}, nil
}

// ventanaConsumo devuelve la fecha de hoy (sin hora) y el inicio de la ventana
// móvil de 30 días, en la zona horaria local.
func ventanaConsumo(now time.Time) (hoy, desde time.Time) {
	hoy = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return hoy, hoy.AddDate(0, 0, -forecast.DiasVentana)
}

// redondear2Opcional redondea a 2 decimales preservando el null.
func redondear2Opcional(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.Round(2).InexactFloat64()
	return &v
}
