package forecast

import (
	"math"

	"github.com/shopspring/decimal"
)

// Estadisticas dispersión del consumo de la ventana de 30 días.
// El coeficiente de variación se usa como proxy inverso de la confiabilidad
// del modelo: a mayor dispersión, menor precisión.
type Estadisticas struct {
	Promedio             float64
	DesviacionEstandar   float64
	CoeficienteVariacion float64 // porcentaje
	Precision            float64 // 100 - coeficiente de variación
}

// CalcularEstadisticas calcula media, desviación estándar poblacional (divisor n),
// coeficiente de variación y precisión sobre las cantidades egresadas.
// Devuelve ok=false cuando no hay registros en la ventana (caso informativo, no error).
// Se opera en float64 por la raíz cuadrada; los resultados van redondeados a 2 decimales.
func CalcularEstadisticas(cantidades []decimal.Decimal) (Estadisticas, bool) {
	n := len(cantidades)
	if n == 0 {
		return Estadisticas{}, false
	}

	valores := make([]float64, n)
	var suma float64
	for i, c := range cantidades {
		valores[i] = c.InexactFloat64()
		suma += valores[i]
	}
	media := suma / float64(n)

	var sumaCuadrados float64
	for _, v := range valores {
		d := v - media
		sumaCuadrados += d * d
	}
	varianza := sumaCuadrados / float64(n)
	desviacion := math.Sqrt(varianza)

	coefVariacion := 0.0
	if media > 0 {
		coefVariacion = desviacion / media * 100
	}

	return Estadisticas{
		Promedio:             redondear2(media),
		DesviacionEstandar:   redondear2(desviacion),
		CoeficienteVariacion: redondear2(coefVariacion),
		Precision:            redondear2(100 - coefVariacion),
	}, true
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}
