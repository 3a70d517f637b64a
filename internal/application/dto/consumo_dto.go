package dto

// SalidaDTO un egreso del historial de consumo.
type SalidaDTO struct {
	Fecha    string  `json:"fecha"` // YYYY-MM-DD
	Cantidad float64 `json:"cantidad"`
}

// TendenciaDTO respuesta de GET /consumo/tendencia/:insumoId.
// VariacionPct es null cuando la ventana anterior no tuvo consumo.
type TendenciaDTO struct {
	InsumoID        int64    `json:"insumo_id"`
	Tendencia       string   `json:"tendencia"` // creciente | decreciente | estable
	ConsumoReciente float64  `json:"consumo_reciente"`
	ConsumoAnterior float64  `json:"consumo_anterior"`
	VariacionPct    *float64 `json:"variacion_pct"`
}
