package photos

import "github.com/juju/errors"

const (
	ErrFileTooLarge        = errors.ConstError("file size exceeds maximum limit")
	ErrUnsupportedFileType = errors.ConstError("file type not supported")
	ErrInvalidFilename     = errors.ConstError("invalid filename")

	// ErrNotFound lo devuelven los Store cuando no existe el archivo.
	ErrNotFound = errors.ConstError("photo not found")
)
