package forecast

import (
	"time"

	"github.com/shopspring/decimal"
)

// NivelRiesgo clasificación de urgencia de reposición de un insumo.
type NivelRiesgo string

const (
	RiesgoSinConsumo NivelRiesgo = "SIN_CONSUMO_RECIENTE"
	RiesgoCritico    NivelRiesgo = "CRITICO"
	RiesgoModerado   NivelRiesgo = "MODERADO"
	RiesgoNormal     NivelRiesgo = "NORMAL"
)

// Textos de recomendación que consume el frontend.
const (
	RecomendacionMonitorear = "Monitorear"
	RecomendacionUrgente    = "URGENTE: Pedir inmediatamente"
	RecomendacionProgramar  = "Programar pedido"
)

const (
	// DiasVentana ventana móvil de consumo sobre la que se proyecta.
	DiasVentana = 30

	// Umbrales de días restantes para cada nivel de riesgo.
	umbralCritico  = 7
	umbralModerado = 30

	// Días de cobertura del pedido sugerido según el nivel.
	coberturaPedidoCritico  = 60
	coberturaPedidoModerado = 45
)

var diasVentana = decimal.NewFromInt(DiasVentana)

// PuntoProyeccion stock estimado para un día futuro.
type PuntoProyeccion struct {
	Dia           int
	Fecha         time.Time
	StockEstimado decimal.Decimal // nunca negativo
}

// Prediccion resultado del motor de proyección para un insumo.
// DiasRestantes es nil cuando no hubo consumo en la ventana (indefinido, no cero).
type Prediccion struct {
	Existencia     decimal.Decimal
	Consumo30d     decimal.Decimal
	PromedioDiario decimal.Decimal
	DiasRestantes  *decimal.Decimal
	Nivel          NivelRiesgo
	Recomendacion  string
	CantidadPedido int64
	Proyeccion     []PuntoProyeccion
}

// Calcular proyecta el agotamiento de stock por extrapolación lineal del
// promedio diario de consumo de los últimos 30 días:
//
//  1. promedio diario = consumo30d / 30
//  2. días restantes  = existencia / promedio (solo si promedio > 0)
//  3. nivel de riesgo por primera regla que aplique:
//     sin consumo → SIN_CONSUMO_RECIENTE; < 7 días → CRITICO;
//     < 30 días → MODERADO; resto → NORMAL
//  4. proyección de 30 puntos con el stock clampado en cero
//
// La cantidad sugerida de pedido cubre 60 días de consumo en nivel crítico
// y 45 en moderado.
func Calcular(existencia, consumo30d decimal.Decimal, hoy time.Time) Prediccion {
	p := Prediccion{
		Existencia: existencia,
		Consumo30d: consumo30d,
	}

	if consumo30d.IsPositive() {
		p.PromedioDiario = consumo30d.Div(diasVentana)
		dias := existencia.Div(p.PromedioDiario)
		p.DiasRestantes = &dias
	}

	switch {
	case !consumo30d.IsPositive():
		p.Nivel = RiesgoSinConsumo
		p.Recomendacion = RecomendacionMonitorear
	case p.DiasRestantes.LessThan(decimal.NewFromInt(umbralCritico)):
		p.Nivel = RiesgoCritico
		p.Recomendacion = RecomendacionUrgente
		p.CantidadPedido = cantidadPedido(p.PromedioDiario, coberturaPedidoCritico)
	case p.DiasRestantes.LessThan(decimal.NewFromInt(umbralModerado)):
		p.Nivel = RiesgoModerado
		p.Recomendacion = RecomendacionProgramar
		p.CantidadPedido = cantidadPedido(p.PromedioDiario, coberturaPedidoModerado)
	default:
		p.Nivel = RiesgoNormal
		p.Recomendacion = RecomendacionMonitorear
	}

	p.Proyeccion = proyectar(existencia, p.PromedioDiario, hoy)
	return p
}

// proyectar genera la serie de 30 puntos (día 1..30) con el stock estimado
// redondeado a 2 decimales y clampado en cero.
func proyectar(existencia, promedioDiario decimal.Decimal, hoy time.Time) []PuntoProyeccion {
	puntos := make([]PuntoProyeccion, 0, DiasVentana)
	for dia := 1; dia <= DiasVentana; dia++ {
		estimado := existencia.
			Sub(promedioDiario.Mul(decimal.NewFromInt(int64(dia)))).
			Round(2)
		if estimado.IsNegative() {
			estimado = decimal.Zero
		}
		puntos = append(puntos, PuntoProyeccion{
			Dia:           dia,
			Fecha:         hoy.AddDate(0, 0, dia),
			StockEstimado: estimado,
		})
	}
	return puntos
}

// cantidadPedido redondea al entero la cantidad que cubre `dias` de consumo.
func cantidadPedido(promedioDiario decimal.Decimal, dias int64) int64 {
	return promedioDiario.Mul(decimal.NewFromInt(dias)).Round(0).IntPart()
}
