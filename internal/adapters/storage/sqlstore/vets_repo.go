package sqlstore

import (
	"context"
	"database/sql"

	"github.com/juju/errors"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/vets"
)

type VetsRepo struct {
	db *DB
}

func NewVetsRepo(db *DB) *VetsRepo {
	return &VetsRepo{db: db}
}

var _ vets.Repository = (*VetsRepo)(nil)

func (r *VetsRepo) List(ctx context.Context) ([]*vets.Vet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.first_name, v.last_name, s.id, s.name
		FROM vets v
		LEFT JOIN vet_specialties vs ON vs.vet_id = v.id
		LEFT JOIN specialties s ON s.id = vs.specialty_id
		ORDER BY v.id, s.id
	`)
	if err != nil {
		return nil, errors.Annotate(err, "list vets")
	}
	defer rows.Close()

	out := make([]*vets.Vet, 0)
	var current *vets.Vet
	for rows.Next() {
		var (
			id          int
			first, last string
			specID      sql.NullInt64
			specName    sql.NullString
		)
		if err := rows.Scan(&id, &first, &last, &specID, &specName); err != nil {
			return nil, errors.Annotate(err, "scan vet")
		}

		if current == nil || current.ID.Int() != id {
			current = &vets.Vet{ID: entity.Persisted(id), FirstName: first, LastName: last}
			out = append(out, current)
		}
		if specID.Valid {
			current.AddSpecialty(vets.Specialty{ID: entity.Persisted(int(specID.Int64)), Name: specName.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Annotate(err, "list vets")
	}
	return out, nil
}
