// Package storagetest tiene los casos compartidos que cada implementación de
// owners.Repository y vets.Repository tiene que pasar (memory, sqlite, postgres).
// Todos asumen el repo cargado con los datos de ejemplo.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/vets"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// RunOwners ejecuta los casos de owners.Repository. newRepo debe devolver un
// repo nuevo y sembrado en cada llamada.
func RunOwners(t *testing.T, newRepo func(t *testing.T) owners.Repository) {
	t.Run("find by id loads pets and visits", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		o, err := repo.FindByID(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, "Coleman", o.LastName)
		assert.Equal(t, "6085552654", o.Telephone)

		pets := o.Pets()
		require.Len(t, pets, 2)
		assert.Equal(t, "Samantha", pets[0].Name)
		assert.Equal(t, "Max", pets[1].Name)
		assert.Equal(t, "cat", pets[0].Type.Name)
		assert.True(t, date("2012-09-04").Equal(pets[0].BirthDate))

		visits := pets[0].Visits()
		require.Len(t, visits, 2)
		assert.Equal(t, "rabies shot", visits[0].Description)
		assert.Equal(t, "spayed", visits[1].Description)
		assert.Equal(t, 4, visits[1].ID.Int())
	})

	t.Run("find by id missing", func(t *testing.T) {
		_, err := newRepo(t).FindByID(context.Background(), 999)
		assert.True(t, errors.Is(err, owners.ErrNotFound), "got %v", err)
	})

	t.Run("find by last name prefix", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		found, total, err := repo.FindByLastName(ctx, "Davis", 0, 5)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, found, 2)
		assert.Equal(t, "Betty", found[0].FirstName)
		assert.Equal(t, "Harold", found[1].FirstName)

		found, total, err = repo.FindByLastName(ctx, "dav", 0, 5)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, found, 2)

		found, total, err = repo.FindByLastName(ctx, "Daviss", 0, 5)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, found)
	})

	t.Run("find by last name pages by id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, total, err := repo.FindByLastName(ctx, "", 0, 5)
		require.NoError(t, err)
		assert.Equal(t, 10, total)
		require.Len(t, first, 5)
		assert.Equal(t, 1, first[0].ID.Int())
		assert.Equal(t, 5, first[4].ID.Int())

		second, _, err := repo.FindByLastName(ctx, "", 5, 5)
		require.NoError(t, err)
		require.Len(t, second, 5)
		assert.Equal(t, 6, second[0].ID.Int())
		assert.Equal(t, 10, second[4].ID.Int())

		// el listado también trae las mascotas
		require.Len(t, second[4].Pets(), 2)
	})

	t.Run("pet types sorted by name", func(t *testing.T) {
		types, err := newRepo(t).PetTypes(context.Background())
		require.NoError(t, err)

		names := make([]string, 0, len(types))
		for _, pt := range types {
			assert.False(t, pt.ID.IsNew())
			names = append(names, pt.Name)
		}
		assert.Equal(t, []string{"bird", "cat", "dog", "hamster", "lizard", "snake"}, names)
	})

	t.Run("save new aggregate assigns ids", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		types, err := repo.PetTypes(ctx)
		require.NoError(t, err)

		o := &owners.Owner{FirstName: "Sam", LastName: "Schultz", Address: "4, Evans Street", City: "Wollongong", Telephone: "4444444444"}
		p := &owners.Pet{Name: "Tiny", BirthDate: date("2020-02-02"), Type: types[0]}
		o.AddPet(p)
		v := &owners.Visit{Date: date("2024-05-01"), Description: "checkup"}
		p.AddVisit(v)

		require.NoError(t, repo.Save(ctx, o))
		assert.False(t, o.ID.IsNew())
		assert.False(t, p.ID.IsNew())
		assert.False(t, v.ID.IsNew())

		loaded, err := repo.FindByID(ctx, o.ID.Int())
		require.NoError(t, err)
		assert.Equal(t, "Schultz", loaded.LastName)

		got, ok := loaded.PetByID(p.ID.Int())
		require.True(t, ok)
		assert.Equal(t, "Tiny", got.Name)
		assert.Equal(t, types[0].Name, got.Type.Name)
		require.Len(t, got.Visits(), 1)
		assert.Equal(t, "checkup", got.Visits()[0].Description)
		assert.True(t, v.ID.Equal(got.Visits()[0].ID))
	})

	t.Run("save existing appends visits in order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		o, err := repo.FindByID(ctx, 6)
		require.NoError(t, err)

		require.NoError(t, o.AddVisit(entity.Persisted(7), &owners.Visit{Date: date("2024-01-01"), Description: "first"}))
		require.NoError(t, o.AddVisit(entity.Persisted(7), &owners.Visit{Date: date("2024-01-02"), Description: "second"}))
		require.NoError(t, repo.Save(ctx, o))

		loaded, err := repo.FindByID(ctx, 6)
		require.NoError(t, err)
		pet, ok := loaded.PetByID(7)
		require.True(t, ok)

		descs := make([]string, 0)
		for _, v := range pet.Visits() {
			descs = append(descs, v.Description)
		}
		assert.Equal(t, []string{"rabies shot", "spayed", "first", "second"}, descs)

		other, _ := loaded.PetByID(8)
		assert.Len(t, other.Visits(), 2)
	})

	t.Run("save updates fields and photo", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		o, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		o.City = "Verona"
		pet, ok := o.PetByID(1)
		require.True(t, ok)
		pet.Name = "Leonardo"
		pet.Photo = "abc.png"
		require.NoError(t, repo.Save(ctx, o))

		loaded, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Verona", loaded.City)
		got, _ := loaded.PetByID(1)
		assert.Equal(t, "Leonardo", got.Name)
		assert.Equal(t, "abc.png", got.Photo)
	})

	t.Run("loaded aggregates are independent copies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		a.FirstName = "changed"
		pet, _ := a.PetByID(1)
		pet.AddVisit(&owners.Visit{Description: "unsaved"})

		b, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "George", b.FirstName)
		got, _ := b.PetByID(1)
		assert.Empty(t, got.Visits())
	})

	t.Run("save unknown persisted owner", func(t *testing.T) {
		o := &owners.Owner{ID: entity.Persisted(999), LastName: "Ghost"}
		err := newRepo(t).Save(context.Background(), o)
		assert.True(t, errors.Is(err, owners.ErrNotFound), "got %v", err)
	})
}

// RunVets ejecuta los casos de vets.Repository sobre el staff de ejemplo.
func RunVets(t *testing.T, repo vets.Repository) {
	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 6)

	assert.Equal(t, "Carter", items[0].LastName)
	assert.Zero(t, items[0].NrOfSpecialties())

	douglas := items[2]
	assert.Equal(t, "Douglas", douglas.LastName)
	names := make([]string, 0)
	for _, s := range douglas.Specialties() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"dentistry", "surgery"}, names)
}
