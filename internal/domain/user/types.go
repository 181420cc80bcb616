package user

import (
	"home-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRole = errs.Mark(errs.New("invalid role"), errs.ErrDomainValidation)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsCustomer() bool { return a.Role == RoleCustomer }
func (a Actor) IsProvider() bool { return a.Role == RoleProvider }
func (a Actor) IsAdmin() bool    { return a.Role == RoleAdmin }
