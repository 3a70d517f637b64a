package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Prediccion-api/internal/application/usecase"
	"github.com/jhoicas/Prediccion-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Repo          repository.InsumoRepository
	PrediccionUC  *usecase.PrediccionUseCase
	TopCriticosUC *usecase.TopCriticosUseCase
	ModeloUC      *usecase.ModeloUseCase
	ConsumoUC     *usecase.ConsumoUseCase
}

// Router registra las rutas de la API. Las rutas se mantienen en la raíz (sin
// prefijo /api) por compatibilidad con el proxy del backend principal.
func Router(app *fiber.App, deps RouterDeps) {
	saludHandler := NewSaludHandler(deps.Repo)
	app.Get("/", saludHandler.Banner)
	app.Get("/test-db", saludHandler.TestDB)

	prediccionHandler := NewPrediccionHandler(deps.PrediccionUC)
	app.Get("/predecir/:insumoId", prediccionHandler.Predecir)

	modeloHandler := NewModeloHandler(deps.ModeloUC)
	app.Get("/precision", modeloHandler.Precision)
	app.Get("/modelo/estadisticas", modeloHandler.Estadisticas)

	topCriticosHandler := NewTopCriticosHandler(deps.TopCriticosUC)
	app.Get("/top-criticos", topCriticosHandler.Listar)

	consumoHandler := NewConsumoHandler(deps.ConsumoUC)
	consumo := app.Group("/consumo")
	consumo.Get("/historico/:insumoId", consumoHandler.Historico)
	consumo.Get("/tendencia/:insumoId", consumoHandler.Tendencia)
}
