package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Prediccion-api/internal/application/dto"
	"github.com/jhoicas/Prediccion-api/internal/domain/forecast"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
)

// ModeloUseCase calcula las estadísticas de dispersión del consumo que sirven
// de proxy de precisión del modelo de proyección.
type ModeloUseCase struct {
	repo repository.InsumoRepository
}

// NewModeloUseCase construye el caso de uso.
func NewModeloUseCase(repo repository.InsumoRepository) *ModeloUseCase {
	return &ModeloUseCase{repo: repo}
}

// Estadisticas devuelve media, desviación estándar, coeficiente de variación y
// precisión del consumo de los últimos 30 días. Devuelve (nil, nil) cuando no
// hay registros en la ventana: el handler responde con un mensaje informativo.
func (uc *ModeloUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasModeloDTO, error) {
	_, desde := ventanaConsumo(time.Now())

	cantidades, err := uc.repo.ListCantidadesConsumo(ctx, desde)
	if err != nil {
		return nil, fmt.Errorf("modelo: cantidades de consumo: %w", err)
	}

	est, ok := forecast.CalcularEstadisticas(cantidades)
	if !ok {
		return nil, nil
	}

	return &dto.EstadisticasModeloDTO{
		PromedioConsumo30D:   est.Promedio,
		DesviacionEstandar:   est.DesviacionEstandar,
		CoeficienteVariacion: est.CoeficienteVariacion,
		PrecisionModelo:      est.Precision,
	}, nil
}

// Precision devuelve solo la precisión del modelo (100 - coeficiente de
// variación). Sin datos en la ventana devuelve cero.
func (uc *ModeloUseCase) Precision(ctx context.Context) (float64, error) {
	est, err := uc.Estadisticas(ctx)
	if err != nil {
		return 0, err
	}
	if est == nil {
		return 0, nil
	}
	return est.PrecisionModelo, nil
}
