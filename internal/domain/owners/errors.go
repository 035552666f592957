package owners

import "github.com/juju/errors"

const (
	// ErrInvalidArgument: input nulo/faltante o referencia a una entidad
	// que no existe dentro del agregado.
	ErrInvalidArgument = errors.ConstError("invalid argument")

	// ErrInvalidInput: datos de formulario que no pasan validación.
	ErrInvalidInput = errors.ConstError("invalid input")

	// ErrNotFound: owner, mascota o tipo inexistente en el repositorio.
	ErrNotFound = errors.ConstError("not found")
)
