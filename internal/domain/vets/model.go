package vets

import (
	"slices"
	"strings"

	"petclinic/internal/domain/entity"
)

type Specialty struct {
	ID   entity.ID
	Name string
}

type Vet struct {
	ID        entity.ID
	FirstName string
	LastName  string

	specialties []Specialty
}

// Specialties devuelve siempre una copia ordenada por nombre (estable),
// sin importar el orden en que se agregaron.
func (v *Vet) Specialties() []Specialty {
	out := slices.Clone(v.specialties)
	slices.SortStableFunc(out, func(a, b Specialty) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// AddSpecialty agrega al final; no deduplica.
func (v *Vet) AddSpecialty(s Specialty) {
	v.specialties = append(v.specialties, s)
}

func (v *Vet) NrOfSpecialties() int {
	return len(v.specialties)
}

func (v *Vet) Clone() *Vet {
	c := *v
	c.specialties = slices.Clone(v.specialties)
	return &c
}
