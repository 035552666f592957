package owners

import "context"

// Repository persiste el agregado completo (owner + pets + visits).
// Save asigna ids a las mascotas y visitas nuevas sobre la instancia recibida.
type Repository interface {
	Save(ctx context.Context, o *Owner) error
	FindByID(ctx context.Context, id int) (*Owner, error)
	// FindByLastName filtra por prefijo de apellido, ordenado por id.
	// Devuelve la página pedida y el total sin paginar.
	FindByLastName(ctx context.Context, prefix string, offset, limit int) ([]*Owner, int, error)
	PetTypes(ctx context.Context) ([]PetType, error)
}
