package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/juju/errors"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/owners"
)

type ownersRepo struct {
	mu   sync.RWMutex
	byID map[int]*owners.Owner
	// secuencias por entidad, como en las tablas SQL
	ownerSeq, petSeq, visitSeq int
	types                      []owners.PetType
}

// NewOwnersRepo crea un repo vacío (solo con los tipos de mascota).
func NewOwnersRepo() owners.Repository {
	return &ownersRepo{
		byID:  make(map[int]*owners.Owner),
		types: append([]owners.PetType(nil), seedPetTypes...),
	}
}

// NewSeededOwnersRepo crea el repo con los datos de ejemplo de la clínica.
func NewSeededOwnersRepo() owners.Repository {
	r := &ownersRepo{
		byID:  seededOwners(),
		types: append([]owners.PetType(nil), seedPetTypes...),
	}
	for id, o := range r.byID {
		r.ownerSeq = max(r.ownerSeq, id)
		for _, p := range o.Pets() {
			r.petSeq = max(r.petSeq, p.ID.Int())
			for _, v := range p.Visits() {
				r.visitSeq = max(r.visitSeq, v.ID.Int())
			}
		}
	}
	return r
}

// Save asigna ids a owner/pets/visits nuevos sobre la instancia recibida
// y guarda una copia, así el caller no comparte estado con el repo.
func (r *ownersRepo) Save(ctx context.Context, o *owners.Owner) error {
	if o == nil {
		return errors.Annotate(owners.ErrInvalidArgument, "owner must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := o.ID.Value(); ok {
		if _, exists := r.byID[id]; !exists {
			return errors.Annotatef(owners.ErrNotFound, "owner %d", id)
		}
	} else {
		r.ownerSeq++
		o.ID = entity.Persisted(r.ownerSeq)
	}

	for _, p := range o.Pets() {
		if p.ID.IsNew() {
			r.petSeq++
			p.ID = entity.Persisted(r.petSeq)
		}
		for _, v := range p.Visits() {
			if v.ID.IsNew() {
				r.visitSeq++
				v.ID = entity.Persisted(r.visitSeq)
			}
		}
	}

	r.byID[o.ID.Int()] = o.Clone()
	return nil
}

func (r *ownersRepo) FindByID(ctx context.Context, id int) (*owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, errors.Annotatef(owners.ErrNotFound, "owner %d", id)
	}
	return o.Clone(), nil
}

// FindByLastName: prefijo sin distinguir mayúsculas, orden por id.
func (r *ownersRepo) FindByLastName(ctx context.Context, prefix string, offset, limit int) ([]*owners.Owner, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix = strings.ToLower(prefix)
	matches := make([]*owners.Owner, 0)
	for _, o := range r.byID {
		if strings.HasPrefix(strings.ToLower(o.LastName), prefix) {
			matches = append(matches, o)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID.Int() < matches[j].ID.Int()
	})

	total := len(matches)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	out := make([]*owners.Owner, 0, end-offset)
	for _, o := range matches[offset:end] {
		out = append(out, o.Clone())
	}
	return out, total, nil
}

func (r *ownersRepo) PetTypes(ctx context.Context) ([]owners.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]owners.PetType(nil), r.types...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
