package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Prediccion-api/internal/domain"
	"github.com/jhoicas/Prediccion-api/internal/domain/entity"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InsumoRepository = (*fakeRepo)(nil)

// fakeRepo fixture en memoria del repositorio para los tests de casos de uso.
type fakeRepo struct {
	insumos         map[int64]entity.Insumo
	consumos        map[int64]decimal.Decimal // total de la ventana reciente
	consumosPrevios map[int64]decimal.Decimal // total de la ventana anterior
	cantidades      []decimal.Decimal
	salidas         map[int64][]entity.Salida
	pingErr         error
	queryErr        error
}

func (f *fakeRepo) GetInsumo(_ context.Context, id int64) (*entity.Insumo, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	insumo, ok := f.insumos[id]
	if !ok {
		return nil, domain.ErrInsumoNotFound
	}
	return &insumo, nil
}

func (f *fakeRepo) ConsumoTotal(_ context.Context, insumoID int64, _ time.Time) (decimal.Decimal, error) {
	if f.queryErr != nil {
		return decimal.Zero, f.queryErr
	}
	return f.consumos[insumoID], nil
}

func (f *fakeRepo) ConsumoTotalEntre(_ context.Context, insumoID int64, _, _ time.Time) (decimal.Decimal, error) {
	if f.queryErr != nil {
		return decimal.Zero, f.queryErr
	}
	return f.consumosPrevios[insumoID], nil
}

func (f *fakeRepo) ListInsumosBajoStock(_ context.Context, umbral decimal.Decimal) ([]entity.Insumo, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var bajos []entity.Insumo
	for _, insumo := range f.insumos {
		if insumo.Existencia.LessThan(umbral) {
			bajos = append(bajos, insumo)
		}
	}
	sort.Slice(bajos, func(i, j int) bool { return bajos[i].ID < bajos[j].ID })
	return bajos, nil
}

func (f *fakeRepo) ListCantidadesConsumo(_ context.Context, _ time.Time) ([]decimal.Decimal, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.cantidades, nil
}

func (f *fakeRepo) ListSalidas(_ context.Context, insumoID int64, _ time.Time) ([]entity.Salida, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.salidas[insumoID], nil
}

func (f *fakeRepo) Ping(_ context.Context) error {
	return f.pingErr
}
