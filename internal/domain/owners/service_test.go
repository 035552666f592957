package owners

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/domain/entity"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int]*Owner
	types  []PetType
	nextID int
	saves  int
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID: map[int]*Owner{},
		types: []PetType{
			{ID: entity.Persisted(1), Name: "cat"},
			{ID: entity.Persisted(2), Name: "dog"},
			{ID: entity.Persisted(6), Name: "hamster"},
		},
		nextID: 100,
	}
}

func (r *testRepo) seq() entity.ID {
	r.nextID++
	return entity.Persisted(r.nextID)
}

func (r *testRepo) Save(ctx context.Context, o *Owner) error {
	r.saves++
	if o.ID.IsNew() {
		o.ID = r.seq()
	}
	for _, p := range o.Pets() {
		if p.ID.IsNew() {
			p.ID = r.seq()
		}
		for _, v := range p.Visits() {
			if v.ID.IsNew() {
				v.ID = r.seq()
			}
		}
	}
	r.byID[o.ID.Int()] = o.Clone()
	return nil
}

func (r *testRepo) FindByID(ctx context.Context, id int) (*Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o.Clone(), nil
}

func (r *testRepo) FindByLastName(ctx context.Context, prefix string, offset, limit int) ([]*Owner, int, error) {
	all := make([]*Owner, 0)
	for _, o := range r.byID {
		if strings.HasPrefix(o.LastName, prefix) {
			all = append(all, o.Clone())
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.Int() < all[j].ID.Int() })

	total := len(all)
	if offset >= total {
		return []*Owner{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *testRepo) PetTypes(ctx context.Context) ([]PetType, error) {
	return r.types, nil
}

func newTestService(t *testing.T) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validOwner() OwnerInput {
	return OwnerInput{
		FirstName: "Sam",
		LastName:  "Schultz",
		Address:   "4, Evans Street",
		City:      "Wollongong",
		Telephone: "4444444444",
	}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func validationCode(t *testing.T, err error, field string) string {
	t.Helper()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	return verrs[field]
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AssignsID(t *testing.T) {
	svc, _ := newTestService(t)

	o, err := svc.Create(context.Background(), validOwner())
	require.NoError(t, err)
	assert.False(t, o.ID.IsNew())
	assert.Equal(t, "Schultz", o.LastName)
}

func TestService_Create_Validation(t *testing.T) {
	svc, repo := newTestService(t)

	in := validOwner()
	in.FirstName = "  "
	in.Telephone = "12345"

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, CodeRequired, validationCode(t, err, "firstName"))
	assert.Equal(t, CodeDigits, validationCode(t, err, "telephone"))
	assert.Zero(t, repo.saves)
}

func TestService_Update_ChangesLastName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, validOwner())
	require.NoError(t, err)

	in := validOwner()
	in.LastName = "SchultzX"
	_, err = svc.Update(ctx, o.ID.Int(), in)
	require.NoError(t, err)

	got, err := svc.Get(ctx, o.ID.Int())
	require.NoError(t, err)
	assert.Equal(t, "SchultzX", got.LastName)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 0)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.Get(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestService_Search_Paginates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		in := validOwner()
		in.LastName = "Davis"
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, validOwner())
	require.NoError(t, err)

	page, err := svc.Search(ctx, "Davis", 2)
	require.NoError(t, err)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 2, page.TotalPages())
	assert.Len(t, page.Owners, 2)

	page, err = svc.Search(ctx, "Daviss", 1)
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Owners)

	page, err = svc.Search(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, 8, page.Total)
	assert.Equal(t, 1, page.Number)
}

func TestService_AddPet_AssignsIDAndType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	o, _ := svc.Create(ctx, validOwner())

	_, p, err := svc.AddPet(ctx, o.ID.Int(), PetInput{Name: "bowser", Type: "Dog", BirthDate: date(2020, 1, 1)})
	require.NoError(t, err)
	assert.False(t, p.ID.IsNew())
	assert.Equal(t, "dog", p.Type.Name)

	reloaded, err := svc.Get(ctx, o.ID.Int())
	require.NoError(t, err)
	got, ok := reloaded.Pet("bowser")
	require.True(t, ok)
	assert.True(t, got.ID.Equal(p.ID))
}

func TestService_AddPet_RejectsDuplicateName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	o, _ := svc.Create(ctx, validOwner())

	_, _, err := svc.AddPet(ctx, o.ID.Int(), PetInput{Name: "petty", Type: "cat", BirthDate: date(2015, 2, 12)})
	require.NoError(t, err)

	_, _, err = svc.AddPet(ctx, o.ID.Int(), PetInput{Name: "PETTY", Type: "cat", BirthDate: date(2015, 2, 12)})
	require.Error(t, err)
	assert.Equal(t, CodeDuplicate, validationCode(t, err, "name"))
}

func TestService_AddPet_FormErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	o, _ := svc.Create(ctx, validOwner())

	tests := []struct {
		name  string
		in    PetInput
		field string
		code  string
	}{
		{"blank name", PetInput{Name: "\t \n", Type: "cat", BirthDate: date(2015, 2, 12)}, "name", CodeRequired},
		{"missing type", PetInput{Name: "Betty", BirthDate: date(2015, 2, 12)}, "type", CodeRequired},
		{"unknown type", PetInput{Name: "Betty", Type: "dragon", BirthDate: date(2015, 2, 12)}, "type", CodeUnknown},
		{"missing birth date", PetInput{Name: "Betty", Type: "cat"}, "birthDate", CodeRequired},
		{"future birth date", PetInput{Name: "Betty", Type: "cat", BirthDate: date(2026, 1, 22)}, "birthDate", CodeFuture},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.AddPet(ctx, o.ID.Int(), tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, tc.code, validationCode(t, err, tc.field))
		})
	}
}

func TestService_UpdatePet_DuplicateRules(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	o, _ := svc.Create(ctx, validOwner())

	_, petty, err := svc.AddPet(ctx, o.ID.Int(), PetInput{Name: "petty", Type: "cat", BirthDate: date(2015, 2, 12)})
	require.NoError(t, err)
	_, _, err = svc.AddPet(ctx, o.ID.Int(), PetInput{Name: "doggy", Type: "dog", BirthDate: date(2016, 3, 1)})
	require.NoError(t, err)

	// Mismo nombre (otra capitalización) => ok
	_, updated, err := svc.UpdatePet(ctx, o.ID.Int(), petty.ID.Int(), PetInput{Name: "Petty", Type: "hamster", BirthDate: date(2015, 2, 12)})
	require.NoError(t, err)
	assert.Equal(t, "Petty", updated.Name)
	assert.Equal(t, "hamster", updated.Type.Name)

	// Nombre de otra mascota => duplicate
	_, _, err = svc.UpdatePet(ctx, o.ID.Int(), petty.ID.Int(), PetInput{Name: "DOGGY", Type: "cat", BirthDate: date(2015, 2, 12)})
	require.Error(t, err)
	assert.Equal(t, CodeDuplicate, validationCode(t, err, "name"))
}

func TestService_UpdatePet_UnknownPet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	o, _ := svc.Create(ctx, validOwner())

	_, _, err := svc.UpdatePet(ctx, o.ID.Int(), 9999, PetInput{Name: "x", Type: "cat", BirthDate: date(2015, 2, 12)})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestService_AddVisit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	o, _ := svc.Create(ctx, validOwner())
	_, p, err := svc.AddPet(ctx, o.ID.Int(), PetInput{Name: "Samantha", Type: "cat", BirthDate: date(2012, 9, 4)})
	require.NoError(t, err)

	v, err := svc.AddVisit(ctx, o.ID.Int(), p.ID.Int(), VisitInput{Description: "  test  "})
	require.NoError(t, err)
	assert.False(t, v.ID.IsNew())
	assert.Equal(t, "test", v.Description)
	assert.False(t, v.Date.IsZero())

	_, err = svc.AddVisit(ctx, o.ID.Int(), p.ID.Int(), VisitInput{Description: "second", Date: date(2024, 3, 4)})
	require.NoError(t, err)

	visits, err := svc.Visits(ctx, o.ID.Int(), p.ID.Int())
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "test", visits[0].Description)
	assert.Equal(t, "second", visits[1].Description)
	for _, v := range visits {
		assert.False(t, v.ID.IsNew())
	}
}

func TestService_AddVisit_Errors(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	o, _ := svc.Create(ctx, validOwner())
	_, p, _ := svc.AddPet(ctx, o.ID.Int(), PetInput{Name: "Samantha", Type: "cat", BirthDate: date(2012, 9, 4)})
	saves := repo.saves

	_, err := svc.AddVisit(ctx, o.ID.Int(), 9999, VisitInput{Description: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.AddVisit(ctx, o.ID.Int(), p.ID.Int(), VisitInput{Description: " "})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	assert.Equal(t, saves, repo.saves)

	visits, err := svc.Visits(ctx, o.ID.Int(), p.ID.Int())
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestService_SetPetPhoto_ReturnsPrevious(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	o, _ := svc.Create(ctx, validOwner())
	_, p, _ := svc.AddPet(ctx, o.ID.Int(), PetInput{Name: "Leo", Type: "cat", BirthDate: date(2010, 9, 7)})

	prev, err := svc.SetPetPhoto(ctx, o.ID.Int(), p.ID.Int(), "a.png")
	require.NoError(t, err)
	assert.Empty(t, prev)

	prev, err = svc.SetPetPhoto(ctx, o.ID.Int(), p.ID.Int(), "b.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a.png", prev)

	reloaded, _ := svc.Get(ctx, o.ID.Int())
	got, _ := reloaded.PetByID(p.ID.Int())
	assert.Equal(t, "b.jpg", got.Photo)
}
