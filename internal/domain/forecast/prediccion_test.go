package forecast

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hoy = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

// Escenario: existencia 100, consumo 300 → promedio 10, 10 días restantes,
// riesgo moderado y pedido para 45 días de cobertura.
func TestCalcular_EscenarioModerado(t *testing.T) {
	p := Calcular(decimal.NewFromInt(100), decimal.NewFromInt(300), hoy)

	assert.Equal(t, "10", p.PromedioDiario.String())
	require.NotNil(t, p.DiasRestantes)
	assert.Equal(t, "10", p.DiasRestantes.String())
	assert.Equal(t, RiesgoModerado, p.Nivel)
	assert.Equal(t, RecomendacionProgramar, p.Recomendacion)
	assert.Equal(t, int64(450), p.CantidadPedido)
}

// Escenario: existencia 5, consumo 900 → promedio 30, 0.17 días restantes,
// riesgo crítico y pedido para 60 días de cobertura.
func TestCalcular_EscenarioCritico(t *testing.T) {
	p := Calcular(decimal.NewFromInt(5), decimal.NewFromInt(900), hoy)

	assert.Equal(t, "30", p.PromedioDiario.String())
	require.NotNil(t, p.DiasRestantes)
	assert.Equal(t, "0.17", p.DiasRestantes.Round(2).String())
	assert.Equal(t, RiesgoCritico, p.Nivel)
	assert.Equal(t, RecomendacionUrgente, p.Recomendacion)
	assert.Equal(t, int64(1800), p.CantidadPedido)
}

// Sin consumo en la ventana el nivel es SIN_CONSUMO_RECIENTE sea cual sea el
// stock, los días restantes quedan indefinidos y no se sugiere pedido.
func TestCalcular_SinConsumoReciente(t *testing.T) {
	for _, existencia := range []int64{0, 3, 500} {
		p := Calcular(decimal.NewFromInt(existencia), decimal.Zero, hoy)

		assert.Equal(t, RiesgoSinConsumo, p.Nivel)
		assert.Equal(t, RecomendacionMonitorear, p.Recomendacion)
		assert.Nil(t, p.DiasRestantes)
		assert.Zero(t, p.CantidadPedido)

		// Sin consumo la proyección es plana: el stock no baja.
		for _, punto := range p.Proyeccion {
			assert.True(t, punto.StockEstimado.Equal(decimal.NewFromInt(existencia)))
		}
	}
}

// Existencia agotada con consumo activo: cero días restantes es crítico.
func TestCalcular_ExistenciaCeroConConsumo(t *testing.T) {
	p := Calcular(decimal.Zero, decimal.NewFromInt(300), hoy)

	require.NotNil(t, p.DiasRestantes)
	assert.True(t, p.DiasRestantes.IsZero())
	assert.Equal(t, RiesgoCritico, p.Nivel)
	assert.Equal(t, int64(600), p.CantidadPedido)
}

// Stock holgado: más de 30 días de cobertura → NORMAL sin pedido sugerido.
func TestCalcular_NivelNormal(t *testing.T) {
	p := Calcular(decimal.NewFromInt(1000), decimal.NewFromInt(300), hoy)

	require.NotNil(t, p.DiasRestantes)
	assert.Equal(t, "100", p.DiasRestantes.String())
	assert.Equal(t, RiesgoNormal, p.Nivel)
	assert.Equal(t, RecomendacionMonitorear, p.Recomendacion)
	assert.Zero(t, p.CantidadPedido)
}

// La proyección siempre tiene 30 puntos con fechas estrictamente crecientes,
// stock nunca negativo y clampado en cero una vez agotado.
func TestCalcular_Proyeccion(t *testing.T) {
	p := Calcular(decimal.NewFromInt(50), decimal.NewFromInt(300), hoy) // agota en 5 días

	require.Len(t, p.Proyeccion, 30)
	for i, punto := range p.Proyeccion {
		assert.Equal(t, i+1, punto.Dia)
		assert.Equal(t, hoy.AddDate(0, 0, i+1), punto.Fecha)
		assert.False(t, punto.StockEstimado.IsNegative(),
			"el stock estimado nunca puede ser negativo")
	}

	// Día 5 queda exactamente en cero y de ahí en adelante se mantiene.
	assert.True(t, p.Proyeccion[4].StockEstimado.IsZero())
	assert.True(t, p.Proyeccion[29].StockEstimado.IsZero())

	// Antes del agotamiento la serie desciende linealmente.
	assert.Equal(t, "40", p.Proyeccion[0].StockEstimado.String())
	assert.Equal(t, "10", p.Proyeccion[3].StockEstimado.String())
}

// El redondeo del stock proyectado es a 2 decimales.
func TestCalcular_ProyeccionRedondeo(t *testing.T) {
	// promedio = 100/30 = 3.333...
	p := Calcular(decimal.NewFromInt(10), decimal.NewFromInt(100), hoy)

	assert.Equal(t, "6.67", p.Proyeccion[0].StockEstimado.String())
	assert.Equal(t, "3.33", p.Proyeccion[1].StockEstimado.String())
	assert.Equal(t, "0", p.Proyeccion[2].StockEstimado.String())
}
