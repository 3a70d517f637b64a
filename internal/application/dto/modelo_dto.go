package dto

// EstadisticasModeloDTO respuesta de GET /modelo/estadisticas.
// Todos los valores van redondeados a 2 decimales.
type EstadisticasModeloDTO struct {
	PromedioConsumo30D   float64 `json:"promedio_consumo_30d"`
	DesviacionEstandar   float64 `json:"desviacion_estandar"`
	CoeficienteVariacion float64 `json:"coeficiente_variacion"`
	PrecisionModelo      float64 `json:"precision_modelo"`
}
