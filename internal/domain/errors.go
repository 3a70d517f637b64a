package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInsumoNotFound = errors.New("insumo no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
)
