package owners

import (
	"context"
	"strings"
	"time"

	"github.com/juju/errors"

	"petclinic/internal/domain/entity"
	"petclinic/internal/platform/metrics"
)

// PageSize es el tamaño de página del listado de owners.
const PageSize = 5

type Page struct {
	Owners []*Owner
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
	repo    Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService crea el service. m puede ser nil.
func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		metrics: m,
		now:     time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in OwnerInput) (*Owner, error) {
	in = in.normalized()
	if err := validateOwner(in); err != nil {
		return nil, err
	}

	o := &Owner{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		City:      in.City,
		Telephone: in.Telephone,
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, errors.Annotate(err, "save owner")
	}
	return o, nil
}

func (s *Service) Update(ctx context.Context, id int, in OwnerInput) (*Owner, error) {
	in = in.normalized()
	if err := validateOwner(in); err != nil {
		return nil, err
	}

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	o.FirstName = in.FirstName
	o.LastName = in.LastName
	o.Address = in.Address
	o.City = in.City
	o.Telephone = in.Telephone

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, errors.Annotatef(err, "save owner %d", id)
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Owner, error) {
	if id <= 0 {
		return nil, errors.Annotatef(ErrNotFound, "owner %d", id)
	}
	return s.repo.FindByID(ctx, id)
}

// Search lista owners por prefijo de apellido. Prefijo vacío => todos.
func (s *Service) Search(ctx context.Context, lastName string, page int) (Page, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.repo.FindByLastName(ctx, strings.TrimSpace(lastName), (page-1)*PageSize, PageSize)
	if err != nil {
		return Page{}, errors.Annotate(err, "search owners")
	}
	return Page{Owners: items, Total: total, Number: page, Size: PageSize}, nil
}

func (s *Service) PetTypes(ctx context.Context) ([]PetType, error) {
	return s.repo.PetTypes(ctx)
}

func (s *Service) AddPet(ctx context.Context, ownerID int, in PetInput) (*Owner, *Pet, error) {
	o, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	name := strings.TrimSpace(in.Name)
	errs := ValidationErrors{}
	validatePet(in, s.now(), errs)

	if name != "" {
		if _, dup := o.PetByName(name, true); dup {
			errs.add("name", CodeDuplicate)
		}
	}
	pt, err := s.resolveType(ctx, in.Type, errs)
	if err != nil {
		return nil, nil, err
	}
	if err := errs.orNil(); err != nil {
		return nil, nil, err
	}

	p := &Pet{
		Name:      name,
		BirthDate: *in.BirthDate,
		Type:      pt,
	}
	o.AddPet(p)

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, nil, errors.Annotatef(err, "save owner %d", ownerID)
	}
	return o, p, nil
}

func (s *Service) UpdatePet(ctx context.Context, ownerID, petID int, in PetInput) (*Owner, *Pet, error) {
	o, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	p, ok := o.PetByID(petID)
	if !ok {
		return nil, nil, errors.Annotatef(ErrNotFound, "pet %d", petID)
	}

	name := strings.TrimSpace(in.Name)
	errs := ValidationErrors{}
	validatePet(in, s.now(), errs)

	// Renombrar a su propio nombre es válido; a otro existente no.
	if name != "" {
		if existing, found := o.PetByName(name, false); found && !existing.ID.Equal(p.ID) {
			errs.add("name", CodeDuplicate)
		}
	}
	pt, err := s.resolveType(ctx, in.Type, errs)
	if err != nil {
		return nil, nil, err
	}
	if err := errs.orNil(); err != nil {
		return nil, nil, err
	}

	p.Name = name
	p.BirthDate = *in.BirthDate
	p.Type = pt

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, nil, errors.Annotatef(err, "save owner %d", ownerID)
	}
	return o, p, nil
}

// AddVisit pasa por el agregado (Owner.AddVisit) y después guarda.
func (s *Service) AddVisit(ctx context.Context, ownerID, petID int, in VisitInput) (*Visit, error) {
	o, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if _, ok := o.PetByID(petID); !ok {
		return nil, errors.Annotatef(ErrNotFound, "pet %d", petID)
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, ValidationErrors{"description": CodeRequired}
	}

	v := NewVisit()
	if in.Date != nil {
		v.Date = *in.Date
	}
	v.Description = desc

	if err := o.AddVisit(entity.Persisted(petID), v); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, errors.Annotatef(err, "save owner %d", ownerID)
	}

	s.metrics.VisitAdded()
	return v, nil
}

func (s *Service) Visits(ctx context.Context, ownerID, petID int) ([]*Visit, error) {
	o, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	p, ok := o.PetByID(petID)
	if !ok {
		return nil, errors.Annotatef(ErrNotFound, "pet %d", petID)
	}
	return p.Visits(), nil
}

// SetPetPhoto guarda el nombre de la nueva foto y devuelve el anterior
// (vacío si no tenía) para que el caller lo borre del storage.
func (s *Service) SetPetPhoto(ctx context.Context, ownerID, petID int, photo string) (string, error) {
	o, err := s.Get(ctx, ownerID)
	if err != nil {
		return "", err
	}
	p, ok := o.PetByID(petID)
	if !ok {
		return "", errors.Annotatef(ErrNotFound, "pet %d", petID)
	}

	previous := p.Photo
	p.Photo = photo
	if err := s.repo.Save(ctx, o); err != nil {
		return "", errors.Annotatef(err, "save owner %d", ownerID)
	}
	return previous, nil
}

func (s *Service) resolveType(ctx context.Context, name string, errs ValidationErrors) (PetType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PetType{}, nil
	}
	types, err := s.repo.PetTypes(ctx)
	if err != nil {
		return PetType{}, errors.Annotate(err, "list pet types")
	}
	for _, t := range types {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	errs.add("type", CodeUnknown)
	return PetType{}, nil
}
