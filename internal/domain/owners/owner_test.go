package owners

import (
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/domain/entity"
)

func george() *Owner {
	o := &Owner{
		ID:        entity.Persisted(1),
		FirstName: "George",
		LastName:  "Franklin",
		Address:   "110 W. Liberty St.",
		City:      "Madison",
		Telephone: "6085551023",
	}
	o.AddPet(&Pet{
		ID:        entity.Persisted(1),
		Name:      "Leo",
		BirthDate: time.Date(2010, 9, 7, 0, 0, 0, 0, time.UTC),
		Type:      PetType{ID: entity.Persisted(1), Name: "cat"},
	})
	o.AddPet(&Pet{
		ID:        entity.Persisted(2),
		Name:      "Bowser",
		BirthDate: time.Date(2012, 6, 8, 0, 0, 0, 0, time.UTC),
		Type:      PetType{ID: entity.Persisted(2), Name: "dog"},
	})
	return o
}

func visitCounts(o *Owner) []int {
	out := []int{}
	for _, p := range o.Pets() {
		out = append(out, len(p.Visits()))
	}
	return out
}

func TestOwner_PetByID_FindsPersistedPets(t *testing.T) {
	o := george()
	for _, p := range o.Pets() {
		id, _ := p.ID.Value()
		got, ok := o.PetByID(id)
		require.True(t, ok)
		assert.Same(t, p, got)
	}
}

func TestOwner_PetByID_AbsentForUnknownIDs(t *testing.T) {
	o := george()
	for _, id := range []int{0, -1, 9999} {
		_, ok := o.PetByID(id)
		assert.False(t, ok, "id=%d", id)
	}
}

func TestOwner_PetByID_NeverMatchesNewPet(t *testing.T) {
	o := george()
	o.AddPet(&Pet{Name: "Unsaved"})

	_, ok := o.PetByID(0)
	assert.False(t, ok)
}

func TestOwner_PetByName_CaseInsensitive(t *testing.T) {
	o := george()

	p, ok := o.PetByName("BOWSER", false)
	require.True(t, ok)
	assert.Equal(t, "Bowser", p.Name)

	p, ok = o.Pet("bowser")
	require.True(t, ok)
	assert.Equal(t, "Bowser", p.Name)
}

func TestOwner_PetByName_IgnoreNewSkipsUnsaved(t *testing.T) {
	o := &Owner{}
	o.AddPet(&Pet{Name: "bowser"})

	_, ok := o.PetByName("bowser", true)
	assert.False(t, ok)

	_, ok = o.PetByName("Bowser", false)
	assert.True(t, ok)
}

func TestOwner_PetByName_FirstMatchWins(t *testing.T) {
	o := &Owner{}
	unsaved := &Pet{Name: "Max"}
	persisted := &Pet{ID: entity.Persisted(3), Name: "max"}
	o.AddPet(unsaved)
	o.AddPet(persisted)

	got, ok := o.PetByName("MAX", false)
	require.True(t, ok)
	assert.Same(t, unsaved, got)

	got, ok = o.PetByName("MAX", true)
	require.True(t, ok)
	assert.Same(t, persisted, got)
}

func TestOwner_PetByName_EmptyOrMissing(t *testing.T) {
	o := george()

	_, ok := o.PetByName("", false)
	assert.False(t, ok)

	_, ok = o.PetByName("nonexistent", false)
	assert.False(t, ok)
}

func TestOwner_AddPet_AllowsDuplicateNames(t *testing.T) {
	o := george()
	o.AddPet(&Pet{Name: "Leo"})

	assert.Len(t, o.Pets(), 3)
}

func TestOwner_AddVisit_AppendsToResolvedPet(t *testing.T) {
	o := george()
	pet, _ := o.PetByID(2)
	before := len(pet.Visits())

	v := &Visit{Description: "rabies shot", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, o.AddVisit(pet.ID, v))

	visits := pet.Visits()
	require.Len(t, visits, before+1)
	assert.Same(t, v, visits[len(visits)-1])
}

func TestOwner_AddVisit_NullPetID(t *testing.T) {
	o := george()
	before := visitCounts(o)

	err := o.AddVisit(entity.Unsaved(), NewVisit())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "pet identifier must not be null")
	assert.Equal(t, before, visitCounts(o))
}

func TestOwner_AddVisit_NullVisit(t *testing.T) {
	o := george()
	before := visitCounts(o)

	err := o.AddVisit(entity.Persisted(1), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "visit must not be null")
	assert.Equal(t, before, visitCounts(o))
}

func TestOwner_AddVisit_UnknownPet(t *testing.T) {
	o := george()
	before := visitCounts(o)

	err := o.AddVisit(entity.Persisted(999), NewVisit())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "no such pet")
	assert.Equal(t, before, visitCounts(o))
}

func TestPet_VisitsKeepInsertionOrder(t *testing.T) {
	p := &Pet{}
	later := &Visit{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Description: "later"}
	earlier := &Visit{Date: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), Description: "earlier"}
	p.AddVisit(later)
	p.AddVisit(earlier)

	visits := p.Visits()
	require.Len(t, visits, 2)
	assert.Same(t, later, visits[0])
	assert.Same(t, earlier, visits[1])
}

func TestPet_VisitsReturnsCopy(t *testing.T) {
	p := &Pet{}
	p.AddVisit(NewVisit())

	visits := p.Visits()
	visits[0] = nil

	assert.NotNil(t, p.Visits()[0])
}

func TestPet_PhotoOrDefault(t *testing.T) {
	p := &Pet{}
	assert.Equal(t, DefaultPhoto, p.PhotoOrDefault())

	p.Photo = "abc.png"
	assert.Equal(t, "abc.png", p.PhotoOrDefault())
}

func TestOwner_String(t *testing.T) {
	s := george().String()
	for _, want := range []string{"id", "new", "lastName", "firstName", "address", "city", "telephone", "Franklin", "George"} {
		assert.Contains(t, s, want)
	}
}

func TestOwner_Clone_IsDeep(t *testing.T) {
	o := george()
	c := o.Clone()

	cp, _ := c.PetByID(1)
	cp.Name = "Changed"
	cp.AddVisit(NewVisit())

	op, _ := o.PetByID(1)
	assert.Equal(t, "Leo", op.Name)
	assert.Empty(t, op.Visits())
}
