package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Prediccion-api/internal/domain"
	"github.com/jhoicas/Prediccion-api/internal/domain/entity"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

// InsumoRepo consultas de solo lectura sobre insumos_lab y salidas_lab.
type InsumoRepo struct {
	pool *pgxpool.Pool
}

// NewInsumoRepository construye el adaptador de datos de insumos.
func NewInsumoRepository(pool *pgxpool.Pool) *InsumoRepo {
	return &InsumoRepo{pool: pool}
}

// GetInsumo devuelve el insumo por id con la existencia NULL normalizada a cero.
func (r *InsumoRepo) GetInsumo(ctx context.Context, id int64) (*entity.Insumo, error) {
	const query = `
	SELECT id, descripcion, COALESCE(existencia, 0) AS existencia
	FROM insumos_lab
	WHERE id = $1`

	var insumo entity.Insumo
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&insumo.ID, &insumo.Nombre, &insumo.Existencia)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInsumoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("insumos.GetInsumo: %w", err)
	}
	return &insumo, nil
}

// ConsumoTotal suma cantidad_egr del insumo desde la fecha dada (inclusive).
// COALESCE devuelve cero cuando no hay egresos en la ventana.
func (r *InsumoRepo) ConsumoTotal(ctx context.Context, insumoID int64, desde time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(cantidad_egr), 0) AS total_consumo
	FROM salidas_lab
	WHERE id_insumos = $1
	  AND fecha >= $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, insumoID, desde).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("insumos.ConsumoTotal: %w", err)
	}
	return total, nil
}

// ConsumoTotalEntre suma cantidad_egr del insumo en [desde, hasta).
func (r *InsumoRepo) ConsumoTotalEntre(ctx context.Context, insumoID int64, desde, hasta time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(cantidad_egr), 0) AS total_consumo
	FROM salidas_lab
	WHERE id_insumos = $1
	  AND fecha >= $2
	  AND fecha < $3`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, insumoID, desde, hasta).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("insumos.ConsumoTotalEntre: %w", err)
	}
	return total, nil
}

// ListInsumosBajoStock devuelve los insumos con existencia menor al umbral.
func (r *InsumoRepo) ListInsumosBajoStock(ctx context.Context, umbral decimal.Decimal) ([]entity.Insumo, error) {
	const query = `
	SELECT id, descripcion, COALESCE(existencia, 0) AS existencia
	FROM insumos_lab
	WHERE COALESCE(existencia, 0) < $1
	ORDER BY id`

	rows, err := r.pool.Query(ctx, query, umbral)
	if err != nil {
		return nil, fmt.Errorf("insumos.ListInsumosBajoStock: %w", err)
	}
	defer rows.Close()

	var insumos []entity.Insumo
	for rows.Next() {
		var insumo entity.Insumo
		if err := rows.Scan(&insumo.ID, &insumo.Nombre, &insumo.Existencia); err != nil {
			return nil, fmt.Errorf("insumos.ListInsumosBajoStock scan: %w", err)
		}
		insumos = append(insumos, insumo)
	}
	return insumos, rows.Err()
}

// ListCantidadesConsumo devuelve todas las cantidades egresadas desde la fecha dada.
func (r *InsumoRepo) ListCantidadesConsumo(ctx context.Context, desde time.Time) ([]decimal.Decimal, error) {
	const query = `
	SELECT cantidad_egr
	FROM salidas_lab
	WHERE fecha >= $1`

	rows, err := r.pool.Query(ctx, query, desde)
	if err != nil {
		return nil, fmt.Errorf("insumos.ListCantidadesConsumo: %w", err)
	}
	defer rows.Close()

	var cantidades []decimal.Decimal
	for rows.Next() {
		var c decimal.Decimal
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("insumos.ListCantidadesConsumo scan: %w", err)
		}
		cantidades = append(cantidades, c)
	}
	return cantidades, rows.Err()
}

// ListSalidas devuelve los egresos del insumo desde la fecha dada, el más reciente primero.
func (r *InsumoRepo) ListSalidas(ctx context.Context, insumoID int64, desde time.Time) ([]entity.Salida, error) {
	const query = `
	SELECT id_insumos, cantidad_egr, fecha
	FROM salidas_lab
	WHERE id_insumos = $1
	  AND fecha >= $2
	ORDER BY fecha DESC`

	rows, err := r.pool.Query(ctx, query, insumoID, desde)
	if err != nil {
		return nil, fmt.Errorf("insumos.ListSalidas: %w", err)
	}
	defer rows.Close()

	var salidas []entity.Salida
	for rows.Next() {
		var s entity.Salida
		if err := rows.Scan(&s.InsumoID, &s.Cantidad, &s.Fecha); err != nil {
			return nil, fmt.Errorf("insumos.ListSalidas scan: %w", err)
		}
		salidas = append(salidas, s)
	}
	return salidas, rows.Err()
}

// Ping verifica la conectividad con la base de datos.
func (r *InsumoRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
