package vets

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/domain/entity"
)

func names(ss []Specialty) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Name)
	}
	return out
}

func TestVet_SpecialtiesSortedOnRead(t *testing.T) {
	v := &Vet{FirstName: "Linda", LastName: "Douglas"}
	v.AddSpecialty(Specialty{Name: "surgery"})
	v.AddSpecialty(Specialty{Name: "dentistry"})

	assert.Equal(t, []string{"dentistry", "surgery"}, names(v.Specialties()))
	assert.Equal(t, 2, v.NrOfSpecialties())
}

func TestVet_SpecialtiesNoDedup(t *testing.T) {
	v := &Vet{}
	v.AddSpecialty(Specialty{ID: entity.Persisted(2), Name: "radiology"})
	v.AddSpecialty(Specialty{ID: entity.Persisted(1), Name: "radiology"})
	v.AddSpecialty(Specialty{Name: "dentistry"})

	got := v.Specialties()
	assert.Equal(t, []string{"dentistry", "radiology", "radiology"}, names(got))
	// estable: iguales mantienen el orden de inserción
	assert.Equal(t, 2, got[1].ID.Int())
	assert.Equal(t, 1, got[2].ID.Int())
}

func TestVet_SpecialtiesDoesNotMutateBacking(t *testing.T) {
	v := &Vet{}
	v.AddSpecialty(Specialty{Name: "surgery"})
	v.AddSpecialty(Specialty{Name: "dentistry"})

	_ = v.Specialties()
	assert.Equal(t, "surgery", v.specialties[0].Name)
}

type testRepo struct {
	items []*Vet
	err   error
}

func (r *testRepo) List(ctx context.Context) ([]*Vet, error) {
	return r.items, r.err
}

func TestService_List_Paginates(t *testing.T) {
	repo := &testRepo{}
	for i := 1; i <= 6; i++ {
		repo.items = append(repo.items, &Vet{ID: entity.Persisted(i), LastName: fmt.Sprintf("Vet%d", i)})
	}
	svc := NewService(repo)

	p1, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, p1.Vets, 5)
	assert.Equal(t, 6, p1.Total)
	assert.Equal(t, 2, p1.TotalPages())

	p2, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, p2.Vets, 1)
	assert.Equal(t, "Vet6", p2.Vets[0].LastName)

	p9, err := svc.List(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, p9.Vets)
}

func TestService_List_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&testRepo{err: boom})

	_, err := svc.List(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
