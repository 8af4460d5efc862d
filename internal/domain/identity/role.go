package identity

import (
	"strings"
	"time"

	"github.com/bazaar/backend/internal/domain/shared"
)

// Role is a named grouping of users. Permission groups attach to roles
// through RolePermissionGroup links. A role referenced by any user is
// protected from deletion.
type Role struct {
	ID        int64
	Name      string `validate:"required,max=255"`
	CreatedAt time.Time
}

// NewRole creates a new role
func NewRole(name string) (*Role, error) {
	role := &Role{
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	return role, nil
}

// Validate checks the role's field rules
func (r *Role) Validate() error {
	return shared.ValidateStruct(r)
}

// Rename changes the role name
func (r *Role) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("name", "is required")
	}
	r.Name = name
	return nil
}
