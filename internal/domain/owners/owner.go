package owners

import (
	"strings"

	"github.com/juju/errors"

	"petclinic/internal/domain/entity"
)

// Pets devuelve las mascotas en el orden guardado.
func (o *Owner) Pets() []*Pet {
	out := make([]*Pet, len(o.pets))
	copy(out, o.pets)
	return out
}

// AddPet agrega la mascota al final. Nombres duplicados son válidos a nivel de modelo;
// la desambiguación ocurre solo en la búsqueda por nombre.
func (o *Owner) AddPet(p *Pet) {
	o.pets = append(o.pets, p)
}

// PetByID busca entre las mascotas persistidas. Una mascota nueva nunca matchea.
func (o *Owner) PetByID(id int) (*Pet, bool) {
	if id <= 0 {
		return nil, false
	}
	for _, p := range o.pets {
		if v, ok := p.ID.Value(); ok && v == id {
			return p, true
		}
	}
	return nil, false
}

// PetByName recorre las mascotas en orden y devuelve la primera cuyo nombre
// coincide sin distinguir mayúsculas. Con ignoreNew se saltan las no guardadas.
//
// Ojo: si hay dos con el mismo nombre gana la primera, aunque sea nueva y la
// segunda esté persistida (con ignoreNew=false).
func (o *Owner) PetByName(name string, ignoreNew bool) (*Pet, bool) {
	if name == "" {
		return nil, false
	}
	for _, p := range o.pets {
		if ignoreNew && p.ID.IsNew() {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// Pet es PetByName(name, false).
func (o *Owner) Pet(name string) (*Pet, bool) {
	return o.PetByName(name, false)
}

// AddVisit es la única mutación que cruza entidades del agregado:
// resuelve la mascota por id y le agrega la visita. Si falla no muta nada.
// No persiste; guardar el owner es responsabilidad del caller.
func (o *Owner) AddVisit(petID entity.ID, visit *Visit) error {
	id, ok := petID.Value()
	if !ok {
		return errors.Annotate(ErrInvalidArgument, "pet identifier must not be null")
	}
	if visit == nil {
		return errors.Annotate(ErrInvalidArgument, "visit must not be null")
	}

	pet, ok := o.PetByID(id)
	if !ok {
		return errors.Annotatef(ErrInvalidArgument, "invalid pet identifier %d: no such pet", id)
	}

	pet.AddVisit(visit)
	return nil
}
