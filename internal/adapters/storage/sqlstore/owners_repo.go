package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/juju/errors"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/owners"
)

type OwnersRepo struct {
	db *DB
}

func NewOwnersRepo(db *DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

var _ owners.Repository = (*OwnersRepo)(nil)

// Save persiste el agregado entero en una transacción. Los ids nuevos se
// asignan a la instancia recién después del commit.
func (r *OwnersRepo) Save(ctx context.Context, o *owners.Owner) (err error) {
	if o == nil {
		return errors.Annotate(owners.ErrInvalidArgument, "owner must not be nil")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Annotate(err, "begin tx")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var assign []func()

	ownerID, persisted := o.ID.Value()
	if persisted {
		res, err := tx.ExecContext(ctx, r.db.rebind(`
			UPDATE owners
			SET first_name = ?, last_name = ?, address = ?, city = ?, telephone = ?
			WHERE id = ?
		`), o.FirstName, o.LastName, o.Address, o.City, o.Telephone, ownerID)
		if err != nil {
			return errors.Annotatef(err, "update owner %d", ownerID)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errors.Annotatef(owners.ErrNotFound, "owner %d", ownerID)
		}
	} else {
		if err := tx.QueryRowContext(ctx, r.db.rebind(`
			INSERT INTO owners (first_name, last_name, address, city, telephone)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id
		`), o.FirstName, o.LastName, o.Address, o.City, o.Telephone).Scan(&ownerID); err != nil {
			return errors.Annotate(err, "insert owner")
		}
		id := ownerID
		assign = append(assign, func() { o.ID = entity.Persisted(id) })
	}

	for _, p := range o.Pets() {
		petID, petPersisted := p.ID.Value()
		typeID := typeArg(p.Type)

		if petPersisted {
			if _, err := tx.ExecContext(ctx, r.db.rebind(`
				UPDATE pets
				SET name = ?, birth_date = ?, type_id = ?, photo = ?
				WHERE id = ? AND owner_id = ?
			`), p.Name, dateArg(p.BirthDate), typeID, p.Photo, petID, ownerID); err != nil {
				return errors.Annotatef(err, "update pet %d", petID)
			}
		} else {
			if err := tx.QueryRowContext(ctx, r.db.rebind(`
				INSERT INTO pets (name, birth_date, type_id, owner_id, photo)
				VALUES (?, ?, ?, ?, ?)
				RETURNING id
			`), p.Name, dateArg(p.BirthDate), typeID, ownerID, p.Photo).Scan(&petID); err != nil {
				return errors.Annotatef(err, "insert pet %q", p.Name)
			}
			pet, id := p, petID
			assign = append(assign, func() { pet.ID = entity.Persisted(id) })
		}

		// Las visitas guardadas no se modifican; solo se insertan las nuevas.
		for _, v := range p.Visits() {
			if !v.ID.IsNew() {
				continue
			}
			var visitID int
			if err := tx.QueryRowContext(ctx, r.db.rebind(`
				INSERT INTO visits (pet_id, visit_date, description)
				VALUES (?, ?, ?)
				RETURNING id
			`), petID, dateArg(v.Date), v.Description).Scan(&visitID); err != nil {
				return errors.Annotatef(err, "insert visit for pet %d", petID)
			}
			visit, id := v, visitID
			assign = append(assign, func() { visit.ID = entity.Persisted(id) })
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Annotate(err, "commit")
	}
	for _, fn := range assign {
		fn()
	}
	return nil
}

func (r *OwnersRepo) FindByID(ctx context.Context, id int) (*owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, r.db.rebind(`
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = ?
	`), id)

	o, err := scanOwner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Annotatef(owners.ErrNotFound, "owner %d", id)
		}
		return nil, errors.Annotatef(err, "find owner %d", id)
	}

	if err := r.loadPets(ctx, []*owners.Owner{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OwnersRepo) FindByLastName(ctx context.Context, prefix string, offset, limit int) ([]*owners.Owner, int, error) {
	pattern := likePrefix(prefix)

	var total int
	if err := r.db.QueryRowContext(ctx, r.db.rebind(`
		SELECT COUNT(*) FROM owners WHERE LOWER(last_name) LIKE ? ESCAPE '\'
	`), pattern).Scan(&total); err != nil {
		return nil, 0, errors.Annotate(err, "count owners")
	}
	if limit <= 0 {
		limit = total
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx, r.db.rebind(`
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE LOWER(last_name) LIKE ? ESCAPE '\'
		ORDER BY id
		LIMIT ? OFFSET ?
	`), pattern, limit, offset)
	if err != nil {
		return nil, 0, errors.Annotate(err, "search owners")
	}
	defer rows.Close()

	out := make([]*owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, 0, errors.Annotate(err, "scan owner")
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.Annotate(err, "search owners")
	}

	if err := r.loadPets(ctx, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *OwnersRepo) PetTypes(ctx context.Context) ([]owners.PetType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM types ORDER BY name`)
	if err != nil {
		return nil, errors.Annotate(err, "list pet types")
	}
	defer rows.Close()

	out := make([]owners.PetType, 0)
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, errors.Annotate(err, "scan pet type")
		}
		out = append(out, owners.PetType{ID: entity.Persisted(id), Name: name})
	}
	return out, rows.Err()
}

// loadPets completa mascotas y visitas de los owners dados, en orden de id.
func (r *OwnersRepo) loadPets(ctx context.Context, list []*owners.Owner) error {
	if len(list) == 0 {
		return nil
	}

	byOwner := make(map[int]*owners.Owner, len(list))
	ownerIDs := make([]any, 0, len(list))
	for _, o := range list {
		byOwner[o.ID.Int()] = o
		ownerIDs = append(ownerIDs, o.ID.Int())
	}

	pets, err := r.queryPets(ctx, ownerIDs, byOwner)
	if err != nil {
		return err
	}
	if len(pets) == 0 {
		return nil
	}

	petIDs := make([]any, 0, len(pets))
	for id := range pets {
		petIDs = append(petIDs, id)
	}

	rows, err := r.db.QueryContext(ctx, r.db.rebind(`
		SELECT id, pet_id, visit_date, description
		FROM visits
		WHERE pet_id IN (`+placeholders(len(petIDs))+`)
		ORDER BY id
	`), petIDs...)
	if err != nil {
		return errors.Annotate(err, "load visits")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, petID int
			date      dateValue
			desc      string
		)
		if err := rows.Scan(&id, &petID, &date, &desc); err != nil {
			return errors.Annotate(err, "scan visit")
		}
		if p, ok := pets[petID]; ok {
			p.AddVisit(&owners.Visit{ID: entity.Persisted(id), Date: date.t, Description: desc})
		}
	}
	return rows.Err()
}

func (r *OwnersRepo) queryPets(ctx context.Context, ownerIDs []any, byOwner map[int]*owners.Owner) (map[int]*owners.Pet, error) {
	rows, err := r.db.QueryContext(ctx, r.db.rebind(`
		SELECT p.id, p.owner_id, p.name, p.birth_date, p.photo, t.id, t.name
		FROM pets p
		LEFT JOIN types t ON t.id = p.type_id
		WHERE p.owner_id IN (`+placeholders(len(ownerIDs))+`)
		ORDER BY p.id
	`), ownerIDs...)
	if err != nil {
		return nil, errors.Annotate(err, "load pets")
	}
	defer rows.Close()

	out := make(map[int]*owners.Pet)
	for rows.Next() {
		var (
			id, ownerID int
			name, photo string
			birth       dateValue
			typeID      sql.NullInt64
			typeName    sql.NullString
		)
		if err := rows.Scan(&id, &ownerID, &name, &birth, &photo, &typeID, &typeName); err != nil {
			return nil, errors.Annotate(err, "scan pet")
		}

		p := &owners.Pet{
			ID:        entity.Persisted(id),
			Name:      name,
			BirthDate: birth.t,
			Photo:     photo,
		}
		if typeID.Valid {
			p.Type = owners.PetType{ID: entity.Persisted(int(typeID.Int64)), Name: typeName.String}
		}
		if o, ok := byOwner[ownerID]; ok {
			o.AddPet(p)
			out[id] = p
		}
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(s rowScanner) (*owners.Owner, error) {
	var (
		id int
		o  owners.Owner
	)
	if err := s.Scan(&id, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
		return nil, err
	}
	o.ID = entity.Persisted(id)
	return &o, nil
}

func typeArg(t owners.PetType) sql.NullInt64 {
	id, ok := t.ID.Value()
	if !ok {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(id), Valid: true}
}

// likePrefix arma el patrón LIKE escapando los comodines del input.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(strings.ToLower(prefix)) + "%"
}
