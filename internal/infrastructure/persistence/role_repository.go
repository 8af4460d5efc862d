package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/identity"
	"github.com/bazaar/backend/internal/domain/shared"
	"github.com/bazaar/backend/internal/infrastructure/persistence/models"
)

// GormRoleRepository implements identity.RoleRepository using GORM
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// Create creates a new role
func (r *GormRoleRepository) Create(ctx context.Context, role *identity.Role) error {
	m := models.RoleModelFromDomain(role)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create role", err)
	}
	role.ID = m.ID
	return nil
}

// Update updates an existing role
func (r *GormRoleRepository) Update(ctx context.Context, role *identity.Role) error {
	result := r.db.WithContext(ctx).Save(models.RoleModelFromDomain(role))
	if result.Error != nil {
		return mapError("update role", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a role by ID. Roles still referenced by users are
// protected; the check runs inside the delete transaction so a
// concurrent user insert cannot slip past it unnoticed (the FK backs it
// up either way).
func (r *GormRoleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users int64
		if err := tx.Model(&models.UserModel{}).Where("role_id = ?", id).Count(&users).Error; err != nil {
			return mapError("delete role", err)
		}
		if users > 0 {
			return &shared.IntegrityError{
				Constraint: "users_role_id_fkey",
				Op:         "delete role",
				Err:        fmt.Errorf("role is assigned to %d user(s): %w", users, shared.ErrInvalidState),
			}
		}

		if err := tx.Where("role_id = ?", id).Delete(&models.RolePermissionGroupModel{}).Error; err != nil {
			return mapError("delete role", err)
		}

		result := tx.Delete(&models.RoleModel{}, "id = ?", id)
		if result.Error != nil {
			return mapError("delete role", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a role by ID
func (r *GormRoleRepository) FindByID(ctx context.Context, id int64) (*identity.Role, error) {
	var m models.RoleModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find role", err)
	}
	return m.ToDomain(), nil
}

// FindByName finds a role by its unique name
func (r *GormRoleRepository) FindByName(ctx context.Context, name string) (*identity.Role, error) {
	var m models.RoleModel
	if err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error; err != nil {
		return nil, mapError("find role", err)
	}
	return m.ToDomain(), nil
}

// FindAll returns all roles ordered by name
func (r *GormRoleRepository) FindAll(ctx context.Context) ([]*identity.Role, error) {
	var ms []models.RoleModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list roles", err)
	}
	roles := make([]*identity.Role, 0, len(ms))
	for i := range ms {
		roles = append(roles, ms[i].ToDomain())
	}
	return roles, nil
}

// CountUsers counts the users assigned to a role
func (r *GormRoleRepository) CountUsers(ctx context.Context, roleID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("role_id = ?", roleID).Count(&count).Error; err != nil {
		return 0, mapError("count role users", err)
	}
	return count, nil
}
