package dto

// PuntoProyeccionDTO stock estimado de un día futuro en la serie de proyección.
type PuntoProyeccionDTO struct {
	Dia           int     `json:"dia"`
	Fecha         string  `json:"fecha"` // YYYY-MM-DD
	StockEstimado float64 `json:"stock_estimado"`
}

// PrediccionDTO respuesta de GET /predecir/:insumoId.
// Los nombres de campo los consume el frontend Angular; no cambiarlos.
type PrediccionDTO struct {
	InsumoID               int64                `json:"insumo_id"`
	Nombre                 string               `json:"nombre"`
	ExistenciaActual       float64              `json:"existencia_actual"`
	PromedioDiario         float64              `json:"promedio_diario"`
	DiasRestantes          *float64             `json:"dias_restantes"` // null si no hubo consumo
	NivelRiesgo            string               `json:"nivel_riesgo"`
	Recomendacion          string               `json:"recomendacion"`
	CantidadSugeridaPedido int64                `json:"cantidad_sugerida_pedido"`
	Proyeccion30Dias       []PuntoProyeccionDTO `json:"proyeccion_30_dias"`
}

// TopCriticoDTO entrada del ranking de GET /top-criticos.
type TopCriticoDTO struct {
	InsumoID       int64    `json:"insumo_id"`
	Nombre         string   `json:"nombre"`
	StockActual    float64  `json:"stock_actual"`
	TotalConsumo30 float64  `json:"total_consumo_30d"`
	PromedioDiario float64  `json:"promedio_diario"`
	DiasRestantes  *float64 `json:"dias_restantes"`
}

// PrecisionDTO respuesta de GET /precision.
type PrecisionDTO struct {
	Precision float64 `json:"precision"`
}
