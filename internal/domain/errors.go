package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los servicios los envuelven
// con fmt.Errorf("%w: ...") para añadir el detalle legible; errors.Is sigue
// funcionando y el handler HTTP los mapea a códigos estables.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrDuplicateData = errors.New("dato duplicado")
)
