package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrSnapshotNotLoaded indica que todavía no hay un snapshot válido de las
	// cinco colecciones (la carga inicial falló o nunca se ejecutó). El caller
	// debe responder con el estado de error completo + acción de reintento,
	// nunca con datos parciales.
	ErrSnapshotNotLoaded = errors.New("snapshot no cargado")

	// ErrSubmissionInFlight indica que ya hay un registro de entrada de
	// mercancía en vuelo; las escrituras concurrentes no se coordinan, solo
	// se rechazan.
	ErrSubmissionInFlight = errors.New("ya hay un envío en curso")

	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)
