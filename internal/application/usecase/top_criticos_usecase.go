package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Prediccion-api/internal/application/dto"
	"github.com/jhoicas/Prediccion-api/internal/domain/forecast"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	// umbralStockBajo existencia por debajo de la cual un insumo entra al ranking.
	umbralStockBajo = 20
	// maxTopCriticos tamaño máximo del ranking devuelto.
	maxTopCriticos = 10
	// diasSinConsumo sentinela de orden para insumos sin consumo reciente:
	// quedan al final del ranking, no al principio.
	diasSinConsumo = 9999
)

// TopCriticosUseCase arma el ranking de insumos más urgentes: los de stock
// bajo ordenados por días restantes hasta el agotamiento.
type TopCriticosUseCase struct {
	repo repository.InsumoRepository
}

// NewTopCriticosUseCase construye el caso de uso.
func NewTopCriticosUseCase(repo repository.InsumoRepository) *TopCriticosUseCase {
	return &TopCriticosUseCase{repo: repo}
}

// Listar devuelve hasta 10 insumos con existencia < 20 ordenados ascendente
// por días restantes. Los insumos sin consumo en la ventana (días restantes
// indefinidos) se ordenan con el sentinela 9999 y por tanto quedan últimos.
func (uc *TopCriticosUseCase) Listar(ctx context.Context) ([]dto.TopCriticoDTO, error) {
	insumos, err := uc.repo.ListInsumosBajoStock(ctx, decimal.NewFromInt(umbralStockBajo))
	if err != nil {
		return nil, fmt.Errorf("top criticos: insumos bajo stock: %w", err)
	}

	_, desde := ventanaConsumo(time.Now())

	type entrada struct {
		dto   dto.TopCriticoDTO
		orden float64
	}
	entradas := make([]entrada, 0, len(insumos))

	for _, insumo := range insumos {
		consumo, err := uc.repo.ConsumoTotal(ctx, insumo.ID, desde)
		if err != nil {
			return nil, fmt.Errorf("top criticos: consumo 30d del insumo %d: %w", insumo.ID, err)
		}

		var promedio decimal.Decimal
		var dias *decimal.Decimal
		if consumo.IsPositive() {
			promedio = consumo.Div(decimal.NewFromInt(forecast.DiasVentana))
			d := insumo.Existencia.Div(promedio)
			dias = &d
		}

		orden := float64(diasSinConsumo)
		if dias != nil {
			orden = dias.InexactFloat64()
		}

		entradas = append(entradas, entrada{
			dto: dto.TopCriticoDTO{
				InsumoID:       insumo.ID,
				Nombre:         insumo.Nombre,
				StockActual:    insumo.Existencia.InexactFloat64(),
				TotalConsumo30: consumo.InexactFloat64(),
				PromedioDiario: promedio.Round(2).InexactFloat64(),
				DiasRestantes:  redondear2Opcional(dias),
			},
			orden: orden,
		})
	}

	sort.SliceStable(entradas, func(i, j int) bool {
		return entradas[i].orden < entradas[j].orden
	})
	if len(entradas) > maxTopCriticos {
		entradas = entradas[:maxTopCriticos]
	}

	resultado := make([]dto.TopCriticoDTO, 0, len(entradas))
	for _, e := range entradas {
		resultado = append(resultado, e.dto)
	}
	return resultado, nil
}
