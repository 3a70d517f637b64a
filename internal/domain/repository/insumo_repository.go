package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Prediccion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InsumoRepository define las consultas de lectura sobre el stock y el ledger
// de salidas. Las implementaciones son read-only (no modifican datos) y deben
// devolver domain.ErrInsumoNotFound cuando el id no existe.
type InsumoRepository interface {
	// GetInsumo devuelve el insumo con su existencia actual (NULL normalizado a cero).
	GetInsumo(ctx context.Context, id int64) (*entity.Insumo, error)

	// ConsumoTotal suma cantidad_egr del insumo desde la fecha dada (inclusive).
	ConsumoTotal(ctx context.Context, insumoID int64, desde time.Time) (decimal.Decimal, error)

	// ConsumoTotalEntre suma cantidad_egr del insumo en [desde, hasta).
	ConsumoTotalEntre(ctx context.Context, insumoID int64, desde, hasta time.Time) (decimal.Decimal, error)

	// ListInsumosBajoStock devuelve los insumos con existencia menor al umbral.
	ListInsumosBajoStock(ctx context.Context, umbral decimal.Decimal) ([]entity.Insumo, error)

	// ListCantidadesConsumo devuelve todas las cantidades egresadas (todos los
	// insumos) desde la fecha dada, para las estadísticas del modelo.
	ListCantidadesConsumo(ctx context.Context, desde time.Time) ([]decimal.Decimal, error)

	// ListSalidas devuelve los egresos del insumo desde la fecha dada, el más reciente primero.
	ListSalidas(ctx context.Context, insumoID int64, desde time.Time) ([]entity.Salida, error)

	// Ping verifica la conectividad con la base de datos.
	Ping(ctx context.Context) error
}
