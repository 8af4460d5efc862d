package identity

import (
	"context"
)

// RoleRepository defines persistence operations for roles.
// Delete must fail with an IntegrityError while any user references the
// role (protect-on-delete).
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	FindAll(ctx context.Context) ([]*Role, error)
	CountUsers(ctx context.Context, roleID int64) (int64, error)
}
