package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insumo material de laboratorio registrado en insumos_lab.
// Existencia puede venir NULL en la tabla; la capa de datos la normaliza a cero.
type Insumo struct {
	ID         int64
	Nombre     string // columna descripcion
	Existencia decimal.Decimal
}

// Salida evento de egreso del ledger salidas_lab (una fila por entrega).
type Salida struct {
	InsumoID int64
	Cantidad decimal.Decimal // cantidad_egr
	Fecha    time.Time
}
