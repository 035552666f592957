package vets

import (
	"context"

	"github.com/juju/errors"
)

const PageSize = 5

type Repository interface {
	// List devuelve todos los vets ordenados por id.
	List(ctx context.Context) ([]*Vet, error)
}

type Page struct {
	Vets   []*Vet
	Total  int
	Number int
	Size   int
}

func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) All(ctx context.Context) ([]*Vet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "list vets")
	}
	return items, nil
}

// List pagina en memoria: el listado completo es chico y es lo que se cachea.
func (s *Service) List(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		page = 1
	}
	items, err := s.All(ctx)
	if err != nil {
		return Page{}, err
	}

	total := len(items)
	start := (page - 1) * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return Page{Vets: items[start:end], Total: total, Number: page, Size: PageSize}, nil
}
