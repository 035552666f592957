package memory

import (
	"time"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/vets"
)

// Datos de ejemplo de la clínica (los mismos que cargan las migraciones SQL).

var seedPetTypes = []owners.PetType{
	{ID: entity.Persisted(1), Name: "cat"},
	{ID: entity.Persisted(2), Name: "dog"},
	{ID: entity.Persisted(3), Name: "lizard"},
	{ID: entity.Persisted(4), Name: "snake"},
	{ID: entity.Persisted(5), Name: "bird"},
	{ID: entity.Persisted(6), Name: "hamster"},
}

type seedPet struct {
	id     int
	owner  int
	name   string
	birth  string
	typeID int
	visits []seedVisit
}

type seedVisit struct {
	id   int
	date string
	desc string
}

var seedOwners = []owners.Owner{
	{ID: entity.Persisted(1), FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"},
	{ID: entity.Persisted(2), FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749"},
	{ID: entity.Persisted(3), FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763"},
	{ID: entity.Persisted(4), FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198"},
	{ID: entity.Persisted(5), FirstName: "Peter", LastName: "McTavish", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765"},
	{ID: entity.Persisted(6), FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654"},
	{ID: entity.Persisted(7), FirstName: "Jeff", LastName: "Black", Address: "1450 Oak Blvd.", City: "Monona", Telephone: "6085555387"},
	{ID: entity.Persisted(8), FirstName: "Maria", LastName: "Escobito", Address: "345 Maple St.", City: "Madison", Telephone: "6085557683"},
	{ID: entity.Persisted(9), FirstName: "David", LastName: "Schroeder", Address: "2749 Blackhawk Trail", City: "Madison", Telephone: "6085559435"},
	{ID: entity.Persisted(10), FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487"},
}

var seedPets = []seedPet{
	{id: 1, owner: 1, name: "Leo", birth: "2010-09-07", typeID: 1},
	{id: 2, owner: 2, name: "Basil", birth: "2012-08-06", typeID: 6},
	{id: 3, owner: 3, name: "Rosy", birth: "2011-04-17", typeID: 2},
	{id: 4, owner: 3, name: "Jewel", birth: "2010-03-07", typeID: 2},
	{id: 5, owner: 4, name: "Iggy", birth: "2010-11-30", typeID: 3},
	{id: 6, owner: 5, name: "George", birth: "2010-01-20", typeID: 4},
	{id: 7, owner: 6, name: "Samantha", birth: "2012-09-04", typeID: 1, visits: []seedVisit{
		{id: 1, date: "2013-01-01", desc: "rabies shot"},
		{id: 4, date: "2013-01-04", desc: "spayed"},
	}},
	{id: 8, owner: 6, name: "Max", birth: "2012-09-04", typeID: 1, visits: []seedVisit{
		{id: 2, date: "2013-01-02", desc: "rabies shot"},
		{id: 3, date: "2013-01-03", desc: "neutered"},
	}},
	{id: 9, owner: 7, name: "Lucky", birth: "2011-08-06", typeID: 5},
	{id: 10, owner: 8, name: "Mulligan", birth: "2007-02-24", typeID: 2},
	{id: 11, owner: 9, name: "Freddy", birth: "2010-03-09", typeID: 5},
	{id: 12, owner: 10, name: "Lucky", birth: "2010-06-24", typeID: 2},
	{id: 13, owner: 10, name: "Sly", birth: "2012-06-08", typeID: 1},
}

var seedSpecialties = []vets.Specialty{
	{ID: entity.Persisted(1), Name: "radiology"},
	{ID: entity.Persisted(2), Name: "surgery"},
	{ID: entity.Persisted(3), Name: "dentistry"},
}

type seedVet struct {
	id          int
	first, last string
	specialties []int
}

var seedVets = []seedVet{
	{id: 1, first: "James", last: "Carter"},
	{id: 2, first: "Helen", last: "Leary", specialties: []int{1}},
	{id: 3, first: "Linda", last: "Douglas", specialties: []int{2, 3}},
	{id: 4, first: "Rafael", last: "Ortega", specialties: []int{2}},
	{id: 5, first: "Henry", last: "Stevens", specialties: []int{1}},
	{id: 6, first: "Sharon", last: "Jenkins"},
}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seededOwners() map[int]*owners.Owner {
	out := make(map[int]*owners.Owner, len(seedOwners))
	for i := range seedOwners {
		o := seedOwners[i]
		out[o.ID.Int()] = &o
	}
	for _, sp := range seedPets {
		p := &owners.Pet{
			ID:        entity.Persisted(sp.id),
			Name:      sp.name,
			BirthDate: mustDate(sp.birth),
			Type:      seedPetTypes[sp.typeID-1],
		}
		for _, sv := range sp.visits {
			p.AddVisit(&owners.Visit{ID: entity.Persisted(sv.id), Date: mustDate(sv.date), Description: sv.desc})
		}
		out[sp.owner].AddPet(p)
	}
	return out
}

func seededVets() []*vets.Vet {
	out := make([]*vets.Vet, 0, len(seedVets))
	for _, sv := range seedVets {
		v := &vets.Vet{ID: entity.Persisted(sv.id), FirstName: sv.first, LastName: sv.last}
		for _, sid := range sv.specialties {
			v.AddSpecialty(seedSpecialties[sid-1])
		}
		out = append(out, v)
	}
	return out
}
