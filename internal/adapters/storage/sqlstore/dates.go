package sqlstore

import (
	"database/sql"
	"time"

	"github.com/juju/errors"
)

// dateValue lee columnas de fecha de ambos drivers: pgx devuelve time.Time
// para DATE y SQLite guarda TEXT "2006-01-02".
type dateValue struct {
	t     time.Time
	valid bool
}

var dateLayouts = []string{time.DateOnly, time.RFC3339Nano, time.DateTime}

func (d *dateValue) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.t, d.valid = time.Time{}, false
		return nil
	case time.Time:
		d.t, d.valid = truncateDay(v), true
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return errors.Errorf("unsupported date value %T", src)
	}
}

func (d *dateValue) parse(s string) error {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.t, d.valid = truncateDay(t), true
			return nil
		}
	}
	return errors.Errorf("cannot parse date %q", s)
}

func truncateDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// dateArg escribe la fecha como texto; los dos motores lo aceptan para su tipo de columna.
func dateArg(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.DateOnly), Valid: true}
}
