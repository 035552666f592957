package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/juju/errors"

	"petclinic/internal/domain/photos"
)

type object struct {
	data        []byte
	contentType string
}

// Store mantiene las fotos en memoria (dev y tests).
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
}

var _ photos.Store = (*Store)(nil)

func New() *Store {
	return &Store{objects: make(map[string]object)}
}

func (s *Store) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Annotate(err, "read photo")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = object{data: data, contentType: contentType}
	return nil
}

func (s *Store) Get(ctx context.Context, name string) (io.ReadCloser, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[name]
	if !ok {
		return nil, "", errors.Annotatef(photos.ErrNotFound, "%s", name)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[name]; !ok {
		return errors.Annotatef(photos.ErrNotFound, "%s", name)
	}
	delete(s.objects, name)
	return nil
}

// Len es la cantidad de fotos guardadas.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
