package photos

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/juju/errors"

	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
)

// Store persiste los bytes de las fotos. Implementaciones: local, memory, gcs.
type Store interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) error
	// Get devuelve ErrNotFound si no existe.
	Get(ctx context.Context, name string) (io.ReadCloser, string, error)
	// Delete devuelve ErrNotFound si no existe.
	Delete(ctx context.Context, name string) error
}

type Service struct {
	store   Store
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewService(store Store, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		log:     log.With(map[string]any{"service": "photos"}),
		metrics: m,
	}
}

// Upload valida, genera el nombre y guarda los bytes.
// Devuelve NoPhoto (sin error) si el upload viene vacío.
func (s *Service) Upload(ctx context.Context, u Upload) (string, error) {
	name, err := ValidateAndName(u)
	if err != nil {
		s.metrics.PhotoUpload(metrics.UploadRejected)
		return "", err
	}
	if name == NoPhoto {
		s.metrics.PhotoUpload(metrics.UploadEmpty)
		return NoPhoto, nil
	}

	if err := s.store.Save(ctx, name, ContentType(name), bytes.NewReader(u.Content)); err != nil {
		s.metrics.PhotoUpload(metrics.UploadFailed)
		return "", errors.Annotatef(err, "store photo %s", name)
	}

	s.metrics.PhotoUpload(metrics.UploadStored)
	s.log.Info("photo stored", map[string]any{"name": name, "size": u.Size})
	return name, nil
}

// Delete es idempotente: ignora el nombre vacío y la foto por defecto,
// tolera que el archivo no exista y solo loguea otros errores.
func (s *Service) Delete(ctx context.Context, name string) {
	if name == "" || name == DefaultPhoto {
		return
	}

	err := s.store.Delete(ctx, name)
	switch {
	case err == nil:
		s.log.Debug("photo deleted", map[string]any{"name": name})
	case errors.Is(err, ErrNotFound):
		s.log.Debug("photo already gone", map[string]any{"name": name})
	default:
		s.log.Warn("failed to delete photo file", map[string]any{"name": name, "error": err.Error()})
	}
}

func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if name == "" {
		return nil, "", ErrNotFound
	}
	return s.store.Get(ctx, name)
}

// ContentType deduce el mime type por extensión.
func ContentType(name string) string {
	switch strings.ToLower(extension(name)) {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "svg":
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}
