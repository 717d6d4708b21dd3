package domain

import "errors"

// Errores de dominio (sin dependencias externas). Toda operación mutadora
// reporta su fallo de forma síncrona con uno de estos errores; el caller
// distingue "reintentar" (ErrTxConflict) de "corregir entrada" (violaciones
// de constraint) y de "no encontrado".
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrDuplicateName       = errors.New("el nombre ya está registrado")
	ErrDuplicateMPN        = errors.New("el mpn ya está registrado en otra parte")
	ErrDuplicateEntry      = errors.New("ya existe stock para esa parte y ubicación")
	ErrForeignKey          = errors.New("referencia a una entidad inexistente")
	ErrReferentialConflict = errors.New("eliminación bloqueada por registros dependientes")
	ErrNegativeQuantity    = errors.New("la cantidad resultante no puede ser negativa")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrTxConflict          = errors.New("conflicto de concurrencia, reintentar la operación")
)
