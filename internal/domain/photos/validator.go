package photos

import (
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/juju/errors"
)

// MaxFileSize es el límite inclusivo de una foto (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

// NoPhoto es el resultado de ValidateAndName cuando no se subió nada.
const NoPhoto = ""

// DefaultPhoto es la imagen reservada que nunca se borra.
const DefaultPhoto = "default-pet.svg"

var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
}

// Upload es el blob tal como llega del cliente.
type Upload struct {
	Content  []byte
	Filename string
	// Size es el tamaño declarado por el cliente.
	Size int64
}

// ValidateAndName valida el upload y genera un nombre único conservando la
// extensión original tal cual vino (sin pasarla a minúsculas).
// Size == 0 devuelve NoPhoto sin error.
func ValidateAndName(u Upload) (string, error) {
	if u.Size == 0 {
		return NoPhoto, nil
	}
	if u.Size > MaxFileSize {
		return "", errors.Annotatef(ErrFileTooLarge, "%d bytes exceeds maximum limit of 5MB", u.Size)
	}
	if u.Filename == "" {
		return "", ErrInvalidFilename
	}

	ext := extension(u.Filename)
	if _, ok := allowedExtensions[strings.ToLower(ext)]; !ok {
		return "", errors.Annotatef(ErrUnsupportedFileType, "%q: please upload JPG, PNG, or GIF files only", u.Filename)
	}

	return uuid.NewString() + "." + ext, nil
}

// extension devuelve lo que sigue al último punto del nombre base;
// vacío si no hay punto o si el punto es el último carácter.
func extension(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	i := strings.LastIndex(base, ".")
	if i == -1 || i == len(base)-1 {
		return ""
	}
	return base[i+1:]
}
