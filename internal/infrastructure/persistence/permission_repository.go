package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/identity"
	"github.com/bazaar/backend/internal/domain/shared"
	"github.com/bazaar/backend/internal/infrastructure/persistence/models"
)

// GormPermissionGroupRepository implements identity.PermissionGroupRepository using GORM
type GormPermissionGroupRepository struct {
	db *gorm.DB
}

// NewGormPermissionGroupRepository creates a new GormPermissionGroupRepository
func NewGormPermissionGroupRepository(db *gorm.DB) *GormPermissionGroupRepository {
	return &GormPermissionGroupRepository{db: db}
}

// Create creates a new permission group
func (r *GormPermissionGroupRepository) Create(ctx context.Context, group *identity.PermissionGroup) error {
	m := &models.PermissionGroupModel{}
	m.FromDomain(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create permission group", err)
	}
	group.ID = m.ID
	return nil
}

// Update updates an existing permission group
func (r *GormPermissionGroupRepository) Update(ctx context.Context, group *identity.PermissionGroup) error {
	m := &models.PermissionGroupModel{}
	m.FromDomain(group)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return mapError("update permission group", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a permission group and everything attached to it
func (r *GormPermissionGroupRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.ResourcePermissionModel{}).Error; err != nil {
			return mapError("delete permission group", err)
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.ActionPermissionModel{}).Error; err != nil {
			return mapError("delete permission group", err)
		}
		if err := tx.Where("permission_group_id = ?", id).Delete(&models.RolePermissionGroupModel{}).Error; err != nil {
			return mapError("delete permission group", err)
		}

		result := tx.Delete(&models.PermissionGroupModel{}, "id = ?", id)
		if result.Error != nil {
			return mapError("delete permission group", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a permission group by ID
func (r *GormPermissionGroupRepository) FindByID(ctx context.Context, id int64) (*identity.PermissionGroup, error) {
	var m models.PermissionGroupModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find permission group", err)
	}
	return m.ToDomain(), nil
}

// FindByName finds a permission group by its unique name
func (r *GormPermissionGroupRepository) FindByName(ctx context.Context, name string) (*identity.PermissionGroup, error) {
	var m models.PermissionGroupModel
	if err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error; err != nil {
		return nil, mapError("find permission group", err)
	}
	return m.ToDomain(), nil
}

// AddResourcePermission adds a resource permission to a group
func (r *GormPermissionGroupRepository) AddResourcePermission(ctx context.Context, perm *identity.ResourcePermission) error {
	m := &models.ResourcePermissionModel{}
	m.FromDomain(perm)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add resource permission", err)
	}
	perm.ID = m.ID
	return nil
}

// AddActionPermission adds an action permission to a group
func (r *GormPermissionGroupRepository) AddActionPermission(ctx context.Context, perm *identity.ActionPermission) error {
	m := &models.ActionPermissionModel{}
	m.FromDomain(perm)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add action permission", err)
	}
	perm.ID = m.ID
	return nil
}

// ResourcePermissions returns the resource permissions of a group
func (r *GormPermissionGroupRepository) ResourcePermissions(ctx context.Context, groupID int64) ([]*identity.ResourcePermission, error) {
	var ms []models.ResourcePermissionModel
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Find(&ms).Error; err != nil {
		return nil, mapError("list resource permissions", err)
	}
	perms := make([]*identity.ResourcePermission, 0, len(ms))
	for i := range ms {
		perms = append(perms, ms[i].ToDomain())
	}
	return perms, nil
}

// ActionPermissions returns the action permissions of a group
func (r *GormPermissionGroupRepository) ActionPermissions(ctx context.Context, groupID int64) ([]*identity.ActionPermission, error) {
	var ms []models.ActionPermissionModel
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Find(&ms).Error; err != nil {
		return nil, mapError("list action permissions", err)
	}
	perms := make([]*identity.ActionPermission, 0, len(ms))
	for i := range ms {
		perms = append(perms, ms[i].ToDomain())
	}
	return perms, nil
}

// AssignToRole links a permission group to a role
func (r *GormPermissionGroupRepository) AssignToRole(ctx context.Context, roleID, groupID int64) error {
	m := &models.RolePermissionGroupModel{RoleID: roleID, PermissionGroupID: groupID}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("assign permission group", err)
	}
	return nil
}

// RemoveFromRole unlinks a permission group from a role
func (r *GormPermissionGroupRepository) RemoveFromRole(ctx context.Context, roleID, groupID int64) error {
	result := r.db.WithContext(ctx).
		Where("role_id = ? AND permission_group_id = ?", roleID, groupID).
		Delete(&models.RolePermissionGroupModel{})
	if result.Error != nil {
		return mapError("remove permission group", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByRole returns the permission groups linked to a role
func (r *GormPermissionGroupRepository) FindByRole(ctx context.Context, roleID int64) ([]*identity.PermissionGroup, error) {
	var ms []models.PermissionGroupModel
	err := r.db.WithContext(ctx).
		Joins("JOIN role_permission_groups rpg ON rpg.permission_group_id = permission_groups.id").
		Where("rpg.role_id = ?", roleID).
		Order("permission_groups.name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, mapError("list role permission groups", err)
	}
	groups := make([]*identity.PermissionGroup, 0, len(ms))
	for i := range ms {
		groups = append(groups, ms[i].ToDomain())
	}
	return groups, nil
}
