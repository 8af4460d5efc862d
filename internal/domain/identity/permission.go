package identity

import (
	"strings"
	"time"

	"github.com/bazaar/backend/internal/domain/shared"
)

// Resource is a closed set of permission targets. The storage layer
// mirrors it as the native `resources` enum type; growing the set is an
// append-only schema change.
type Resource string

const (
	ResourceProducts    Resource = "products"
	ResourceOrders      Resource = "orders"
	ResourceUsers       Resource = "users"
	ResourcePermissions Resource = "permissions"
)

// Resources returns all members of the resource set
func Resources() []Resource {
	return []Resource{ResourceProducts, ResourceOrders, ResourceUsers, ResourcePermissions}
}

// IsValid reports membership in the closed resource set
func (r Resource) IsValid() bool {
	switch r {
	case ResourceProducts, ResourceOrders, ResourceUsers, ResourcePermissions:
		return true
	}
	return false
}

// Action is a closed set of named capabilities, mirrored by the native
// `actions` enum type.
type Action string

const (
	ActionAddProduct            Action = "can_add_product"
	ActionUpdateProduct         Action = "can_update_product"
	ActionDeleteProduct         Action = "can_delete_product"
	ActionAddVendor             Action = "can_add_vendor"
	ActionUpdateVendor          Action = "can_update_vendor"
	ActionDeleteVendor          Action = "can_delete_vendor"
	ActionBanUser               Action = "can_ban_user"
	ActionUnbanUser             Action = "can_unban_user"
	ActionAddProductTag         Action = "can_add_product_tag"
	ActionDeleteProductTag      Action = "can_delete_product_tag"
	ActionAddProductCategory    Action = "can_add_product_category"
	ActionDeleteProductCategory Action = "can_delete_product_category"
	ActionDeleteProductComment  Action = "can_delete_product_comment"
	ActionAddRole               Action = "can_add_role"
	ActionDeleteRole            Action = "can_delete_role"
	ActionModifyRole            Action = "can_modify_role"
	ActionAddPermissionGroup    Action = "can_add_permission_group"
	ActionDeletePermissionGroup Action = "can_delete_permission_group"
	ActionModifyPermissionGroup Action = "can_modify_permission_group"
)

// Actions returns all members of the action set
func Actions() []Action {
	return []Action{
		ActionAddProduct, ActionUpdateProduct, ActionDeleteProduct,
		ActionAddVendor, ActionUpdateVendor, ActionDeleteVendor,
		ActionBanUser, ActionUnbanUser,
		ActionAddProductTag, ActionDeleteProductTag,
		ActionAddProductCategory, ActionDeleteProductCategory,
		ActionDeleteProductComment,
		ActionAddRole, ActionDeleteRole, ActionModifyRole,
		ActionAddPermissionGroup, ActionDeletePermissionGroup, ActionModifyPermissionGroup,
	}
}

// IsValid reports membership in the closed action set
func (a Action) IsValid() bool {
	for _, member := range Actions() {
		if a == member {
			return true
		}
	}
	return false
}

// PermissionGroup bundles resource and action permissions and is
// attached to roles through RolePermissionGroup links.
type PermissionGroup struct {
	ID          int64
	Name        string `validate:"required,max=255"`
	Description *string
	CreatedAt   time.Time
}

// NewPermissionGroup creates a permission group
func NewPermissionGroup(name, description string) (*PermissionGroup, error) {
	group := &PermissionGroup{
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}
	if description != "" {
		group.Description = &description
	}
	if err := group.Validate(); err != nil {
		return nil, err
	}
	return group, nil
}

// Validate checks the group's field rules
func (g *PermissionGroup) Validate() error {
	return shared.ValidateStruct(g)
}

// ResourcePermission grants access to one resource within a group
type ResourcePermission struct {
	ID          int64
	Resource    Resource
	Description *string
	GroupID     int64 `validate:"required"`
	CreatedAt   time.Time
}

// NewResourcePermission creates a resource permission for a group
func NewResourcePermission(groupID int64, resource Resource) (*ResourcePermission, error) {
	perm := &ResourcePermission{
		Resource:  resource,
		GroupID:   groupID,
		CreatedAt: time.Now(),
	}
	if err := perm.Validate(); err != nil {
		return nil, err
	}
	return perm, nil
}

// Validate checks field rules and resource membership
func (p *ResourcePermission) Validate() error {
	if !p.Resource.IsValid() {
		return shared.NewValidationError("resource", "must be one of: products, orders, users, permissions")
	}
	return shared.ValidateStruct(p)
}

// ActionPermission grants one named capability within a group
type ActionPermission struct {
	ID          int64
	Action      Action
	Description *string
	GroupID     int64 `validate:"required"`
	CreatedAt   time.Time
}

// NewActionPermission creates an action permission for a group
func NewActionPermission(groupID int64, action Action) (*ActionPermission, error) {
	perm := &ActionPermission{
		Action:    action,
		GroupID:   groupID,
		CreatedAt: time.Now(),
	}
	if err := perm.Validate(); err != nil {
		return nil, err
	}
	return perm, nil
}

// Validate checks field rules and action membership
func (p *ActionPermission) Validate() error {
	if !p.Action.IsValid() {
		return shared.NewValidationError("action", "is not a recognized action")
	}
	return shared.ValidateStruct(p)
}

// RolePermissionGroup links a role to a permission group. The pair is
// unique; both sides cascade on delete.
type RolePermissionGroup struct {
	RoleID            int64 `validate:"required"`
	PermissionGroupID int64 `validate:"required"`
}

// Validate checks the link's field rules
func (l *RolePermissionGroup) Validate() error {
	return shared.ValidateStruct(l)
}
