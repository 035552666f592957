package owners

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Códigos de error por campo (los mismos que devuelve la API).
const (
	CodeRequired  = "required"
	CodeDuplicate = "duplicate"
	CodeDigits    = "digits"
	CodeFuture    = "future"
	CodeUnknown   = "unknown"
)

// ValidationErrors junta errores por campo. errors.Is(err, ErrInvalidInput) == true.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v[k]))
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func (v ValidationErrors) Unwrap() error { return ErrInvalidInput }

func (v ValidationErrors) add(field, code string) {
	if _, exists := v[field]; !exists {
		v[field] = code
	}
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

type OwnerInput struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

func (in OwnerInput) normalized() OwnerInput {
	return OwnerInput{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Telephone: strings.TrimSpace(in.Telephone),
	}
}

func validateOwner(in OwnerInput) error {
	errs := ValidationErrors{}
	if in.FirstName == "" {
		errs.add("firstName", CodeRequired)
	}
	if in.LastName == "" {
		errs.add("lastName", CodeRequired)
	}
	if in.Address == "" {
		errs.add("address", CodeRequired)
	}
	if in.City == "" {
		errs.add("city", CodeRequired)
	}
	switch {
	case in.Telephone == "":
		errs.add("telephone", CodeRequired)
	case !isTenDigits(in.Telephone):
		errs.add("telephone", CodeDigits)
	}
	return errs.orNil()
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type PetInput struct {
	Name      string
	BirthDate *time.Time
	// Type por nombre (cat, dog, ...), como lo manda el formulario.
	Type string
}

// validatePet aplica las reglas comunes a alta y edición.
// El chequeo de duplicados depende del caso y lo hace el service.
func validatePet(in PetInput, now time.Time, errs ValidationErrors) {
	if strings.TrimSpace(in.Name) == "" {
		errs.add("name", CodeRequired)
	}
	if strings.TrimSpace(in.Type) == "" {
		errs.add("type", CodeRequired)
	}
	switch {
	case in.BirthDate == nil:
		errs.add("birthDate", CodeRequired)
	case in.BirthDate.After(now):
		errs.add("birthDate", CodeFuture)
	}
}

type VisitInput struct {
	// Date opcional; si viene nil se usa hoy.
	Date        *time.Time
	Description string
}
