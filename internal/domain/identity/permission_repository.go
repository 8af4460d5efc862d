package identity

import (
	"context"
)

// PermissionGroupRepository defines persistence operations for
// permission groups and their resource/action permissions.
type PermissionGroupRepository interface {
	Create(ctx context.Context, group *PermissionGroup) error
	Update(ctx context.Context, group *PermissionGroup) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*PermissionGroup, error)
	FindByName(ctx context.Context, name string) (*PermissionGroup, error)

	AddResourcePermission(ctx context.Context, perm *ResourcePermission) error
	AddActionPermission(ctx context.Context, perm *ActionPermission) error
	ResourcePermissions(ctx context.Context, groupID int64) ([]*ResourcePermission, error)
	ActionPermissions(ctx context.Context, groupID int64) ([]*ActionPermission, error)

	AssignToRole(ctx context.Context, roleID, groupID int64) error
	RemoveFromRole(ctx context.Context, roleID, groupID int64) error
	FindByRole(ctx context.Context, roleID int64) ([]*PermissionGroup, error)
}
