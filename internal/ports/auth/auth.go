// Package auth define la identidad del staff y el puerto para verificar tokens.
package auth

import (
	"context"
	"strings"
)

// AuthVerifier valida un bearer token contra el IAM y devuelve los claims del staff.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Claims es la identidad del staff que opera sobre la clínica.
type Claims struct {
	UserID   string
	Email    string
	ClinicID string
	Roles    []string
}

// HasRole compara sin distinguir mayúsculas.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
