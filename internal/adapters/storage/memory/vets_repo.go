package memory

import (
	"context"
	"sync"

	"petclinic/internal/domain/vets"
)

type vetsRepo struct {
	mu    sync.RWMutex
	items []*vets.Vet
}

// NewVetsRepo devuelve el staff de ejemplo. El listado es de solo lectura.
func NewVetsRepo() vets.Repository {
	return &vetsRepo{items: seededVets()}
}

func (r *vetsRepo) List(ctx context.Context) ([]*vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*vets.Vet, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v.Clone())
	}
	return out, nil
}
