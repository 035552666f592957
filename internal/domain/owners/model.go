package owners

import (
	"fmt"
	"time"

	"petclinic/internal/domain/entity"
)

// DefaultPhoto es la imagen que se muestra cuando la mascota no tiene foto propia.
const DefaultPhoto = "default-pet.svg"

// PetType es un value object (cat, dog, ...), referenciado por id.
type PetType struct {
	ID   entity.ID
	Name string
}

// Visit es una entrada del historial de una mascota.
// El id lo asigna la capa de persistencia.
type Visit struct {
	ID          entity.ID
	Date        time.Time
	Description string
}

// NewVisit crea una visita con fecha de hoy.
func NewVisit() *Visit {
	y, m, d := time.Now().Date()
	return &Visit{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Pet pertenece a un único Owner y es dueña exclusiva de sus visitas.
type Pet struct {
	ID        entity.ID
	Name      string
	BirthDate time.Time
	Type      PetType

	// Photo es el nombre del archivo guardado; vacío => DefaultPhoto.
	Photo string

	visits []*Visit
}

// Visits devuelve las visitas en orden de inserción (sin reordenar).
func (p *Pet) Visits() []*Visit {
	out := make([]*Visit, len(p.visits))
	copy(out, p.visits)
	return out
}

// AddVisit agrega al final del historial. No asigna ids.
func (p *Pet) AddVisit(v *Visit) {
	p.visits = append(p.visits, v)
}

// PhotoOrDefault devuelve la foto a mostrar.
func (p *Pet) PhotoOrDefault() string {
	if p.Photo == "" {
		return DefaultPhoto
	}
	return p.Photo
}

// Owner es la raíz del agregado Owner -> Pet -> Visit.
type Owner struct {
	ID        entity.ID
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string

	pets []*Pet
}

func (o *Owner) String() string {
	return fmt.Sprintf(
		"Owner{id=%s, new=%t, lastName=%s, firstName=%s, address=%s, city=%s, telephone=%s}",
		o.ID, o.ID.IsNew(), o.LastName, o.FirstName, o.Address, o.City, o.Telephone,
	)
}

// Clone devuelve una copia profunda del agregado.
// Los repos la usan para que cada request trabaje sobre su propia instancia.
func (o *Owner) Clone() *Owner {
	if o == nil {
		return nil
	}
	c := *o
	c.pets = make([]*Pet, 0, len(o.pets))
	for _, p := range o.pets {
		pc := *p
		pc.visits = make([]*Visit, 0, len(p.visits))
		for _, v := range p.visits {
			vc := *v
			pc.visits = append(pc.visits, &vc)
		}
		c.pets = append(c.pets, &pc)
	}
	return &c
}
