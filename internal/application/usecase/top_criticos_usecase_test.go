package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jhoicas/Prediccion-api/internal/application/usecase"
	"github.com/jhoicas/Prediccion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCriticos_OrdenPorDiasRestantes(t *testing.T) {
	repo := &fakeRepo{
		insumos: map[int64]entity.Insumo{
			// existencia 10 en todos: días restantes = 300/consumo * 10
			1: {ID: 1, Nombre: "A", Existencia: decimal.NewFromInt(10)},
			2: {ID: 2, Nombre: "B", Existencia: decimal.NewFromInt(10)},
			3: {ID: 3, Nombre: "C", Existencia: decimal.NewFromInt(10)},
			4: {ID: 4, Nombre: "D (sin consumo)", Existencia: decimal.NewFromInt(10)},
			5: {ID: 5, Nombre: "E (stock alto)", Existencia: decimal.NewFromInt(80)},
		},
		consumos: map[int64]decimal.Decimal{
			1: decimal.NewFromInt(60),  // 5 días
			2: decimal.NewFromInt(600), // 0.5 días
			3: decimal.NewFromInt(30),  // 10 días
		},
	}
	uc := usecase.NewTopCriticosUseCase(repo)

	criticos, err := uc.Listar(context.Background())
	require.NoError(t, err)

	// El insumo con existencia 80 no es candidato (umbral < 20).
	require.Len(t, criticos, 4)

	// Orden ascendente por días restantes; el insumo sin consumo va último.
	assert.Equal(t, int64(2), criticos[0].InsumoID)
	assert.Equal(t, int64(1), criticos[1].InsumoID)
	assert.Equal(t, int64(3), criticos[2].InsumoID)
	assert.Equal(t, int64(4), criticos[3].InsumoID)
	assert.Nil(t, criticos[3].DiasRestantes)

	require.NotNil(t, criticos[0].DiasRestantes)
	assert.Equal(t, 0.5, *criticos[0].DiasRestantes)
	assert.Equal(t, 20.0, criticos[0].PromedioDiario)
	assert.Equal(t, 600.0, criticos[0].TotalConsumo30)
}

// El ranking nunca supera las 10 entradas aunque haya más candidatos.
func TestTopCriticos_MaximoDiezEntradas(t *testing.T) {
	repo := &fakeRepo{
		insumos:  make(map[int64]entity.Insumo),
		consumos: make(map[int64]decimal.Decimal),
	}
	for i := int64(1); i <= 15; i++ {
		repo.insumos[i] = entity.Insumo{
			ID:         i,
			Nombre:     fmt.Sprintf("Insumo %d", i),
			Existencia: decimal.NewFromInt(10),
		}
		repo.consumos[i] = decimal.NewFromInt(30 * i) // días restantes decrecientes
	}
	uc := usecase.NewTopCriticosUseCase(repo)

	criticos, err := uc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, criticos, 10)

	// Días restantes no decrecientes entre entradas con valor definido.
	for i := 1; i < len(criticos); i++ {
		require.NotNil(t, criticos[i].DiasRestantes)
		assert.GreaterOrEqual(t, *criticos[i].DiasRestantes, *criticos[i-1].DiasRestantes)
	}
}

func TestTopCriticos_SinCandidatos(t *testing.T) {
	repo := &fakeRepo{
		insumos: map[int64]entity.Insumo{
			1: {ID: 1, Nombre: "Stock holgado", Existencia: decimal.NewFromInt(500)},
		},
	}
	uc := usecase.NewTopCriticosUseCase(repo)

	criticos, err := uc.Listar(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, criticos)
	assert.Empty(t, criticos)
}
