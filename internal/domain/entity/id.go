package entity

import "strconv"

// ID es la identidad de una entidad persistible.
// El zero value es Unsaved: la entidad todavía no fue guardada.
// Solo la capa de persistencia convierte un ID Unsaved en Persisted.
type ID struct {
	value     int
	persisted bool
}

// Unsaved devuelve el estado "nuevo" (sin id asignado).
func Unsaved() ID {
	return ID{}
}

// Persisted devuelve un ID asignado. Valores <= 0 no son ids válidos
// y se tratan como Unsaved.
func Persisted(v int) ID {
	if v <= 0 {
		return ID{}
	}
	return ID{value: v, persisted: true}
}

func (id ID) IsNew() bool {
	return !id.persisted
}

// Value devuelve el id y true si la entidad está persistida.
func (id ID) Value() (int, bool) {
	return id.value, id.persisted
}

// Int devuelve el id o 0 si la entidad es nueva (útil para respuestas JSON).
func (id ID) Int() int {
	return id.value
}

// Equal compara dos ids persistidos. Dos ids Unsaved nunca son iguales.
func (id ID) Equal(other ID) bool {
	return id.persisted && other.persisted && id.value == other.value
}

func (id ID) String() string {
	if !id.persisted {
		return "new"
	}
	return strconv.Itoa(id.value)
}
