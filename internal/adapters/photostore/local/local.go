package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"

	"petclinic/internal/domain/photos"
)

// Store guarda las fotos como archivos planos bajo basePath.
type Store struct {
	basePath string
}

var _ photos.Store = (*Store)(nil)

func New(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Annotate(err, "create photo directory")
	}
	return &Store{basePath: basePath}, nil
}

// Save escribe a un temporal y renombra, así nunca queda un archivo a medias
// con el nombre final.
func (s *Store) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	filePath, err := s.safeJoin(name)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(s.basePath, ".upload-*")
	if err != nil {
		return errors.Annotate(err, "create temp file")
	}
	tmp := f.Name()

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errors.Annotate(err, "write file")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Annotate(err, "close file")
	}
	if err := os.Rename(tmp, filePath); err != nil {
		_ = os.Remove(tmp)
		return errors.Annotate(err, "rename file")
	}
	return nil
}

func (s *Store) Get(ctx context.Context, name string) (io.ReadCloser, string, error) {
	filePath, err := s.safeJoin(name)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Annotatef(photos.ErrNotFound, "%s", name)
		}
		return nil, "", errors.Annotate(err, "open file")
	}
	return f, photos.ContentType(name), nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	filePath, err := s.safeJoin(name)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return errors.Annotatef(photos.ErrNotFound, "%s", name)
		}
		return errors.Annotate(err, "delete file")
	}
	return nil
}

// safeJoin resuelve name relativo a basePath y rechaza cualquier salida del directorio.
func (s *Store) safeJoin(name string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", errors.Annotate(err, "invalid base path")
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, name))
	if err != nil {
		return "", errors.Annotate(err, "invalid path")
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", errors.Annotatef(photos.ErrInvalidFilename, "path traversal attempt %q", name)
	}
	return absPath, nil
}
