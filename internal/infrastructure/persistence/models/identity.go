package models

import (
	"time"

	"github.com/bazaar/backend/internal/domain/identity"
)

// RoleModel is the persistence model for the Role domain entity.
type RoleModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RoleModel) TableName() string {
	return "roles"
}

// ToDomain converts the persistence model to a domain Role entity.
func (m *RoleModel) ToDomain() *identity.Role {
	return &identity.Role{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Role entity.
func (m *RoleModel) FromDomain(r *identity.Role) {
	m.ID = r.ID
	m.Name = r.Name
	m.CreatedAt = r.CreatedAt
}

// RoleModelFromDomain creates a new persistence model from a domain Role entity.
func RoleModelFromDomain(r *identity.Role) *RoleModel {
	m := &RoleModel{}
	m.FromDomain(r)
	return m
}

// UserModel is the persistence model for the User domain entity.
// The password column stores the opaque bcrypt hash.
type UserModel struct {
	BaseModel
	Username      string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	EmailVerified bool      `gorm:"not null;default:false"`
	Password      string    `gorm:"type:varchar(256);not null"`
	FullName      *string   `gorm:"type:varchar(255)"`
	BirthDate     time.Time `gorm:"type:date;not null"`
	RoleID        int64     `gorm:"column:role_id;not null;index"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:    m.BaseModel.ToDomain(),
		Username:      m.Username,
		Email:         m.Email,
		EmailVerified: m.EmailVerified,
		PasswordHash:  m.Password,
		FullName:      m.FullName,
		BirthDate:     m.BirthDate,
		RoleID:        m.RoleID,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.Email = u.Email
	m.EmailVerified = u.EmailVerified
	m.Password = u.PasswordHash
	m.FullName = u.FullName
	m.BirthDate = u.BirthDate
	m.RoleID = u.RoleID
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// PermissionGroupModel is the persistence model for the PermissionGroup domain entity.
type PermissionGroupModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PermissionGroupModel) TableName() string {
	return "permission_groups"
}

// ToDomain converts the persistence model to a domain PermissionGroup entity.
func (m *PermissionGroupModel) ToDomain() *identity.PermissionGroup {
	return &identity.PermissionGroup{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain PermissionGroup entity.
func (m *PermissionGroupModel) FromDomain(g *identity.PermissionGroup) {
	m.ID = g.ID
	m.Name = g.Name
	m.Description = g.Description
	m.CreatedAt = g.CreatedAt
}

// RolePermissionGroupModel is the persistence model for the role to
// permission group link. The pair is unique.
type RolePermissionGroupModel struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	RoleID            int64 `gorm:"column:role_id;not null;uniqueIndex:idx_role_permission_group"`
	PermissionGroupID int64 `gorm:"column:permission_group_id;not null;uniqueIndex:idx_role_permission_group"`
}

// TableName returns the table name for GORM
func (RolePermissionGroupModel) TableName() string {
	return "role_permission_groups"
}

// ToDomain converts the persistence model to a domain RolePermissionGroup.
func (m *RolePermissionGroupModel) ToDomain() identity.RolePermissionGroup {
	return identity.RolePermissionGroup{
		RoleID:            m.RoleID,
		PermissionGroupID: m.PermissionGroupID,
	}
}

// ResourcePermissionModel is the persistence model for the ResourcePermission
// domain entity. The resource column uses the native resources enum type.
type ResourcePermissionModel struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	Resource    identity.Resource `gorm:"type:resources;not null"`
	Description *string           `gorm:"type:text"`
	GroupID     int64             `gorm:"column:group_id;not null;index"`
	CreatedAt   time.Time         `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ResourcePermissionModel) TableName() string {
	return "resource_permissions"
}

// ToDomain converts the persistence model to a domain ResourcePermission entity.
func (m *ResourcePermissionModel) ToDomain() *identity.ResourcePermission {
	return &identity.ResourcePermission{
		ID:          m.ID,
		Resource:    m.Resource,
		Description: m.Description,
		GroupID:     m.GroupID,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain ResourcePermission entity.
func (m *ResourcePermissionModel) FromDomain(p *identity.ResourcePermission) {
	m.ID = p.ID
	m.Resource = p.Resource
	m.Description = p.Description
	m.GroupID = p.GroupID
	m.CreatedAt = p.CreatedAt
}

// ActionPermissionModel is the persistence model for the ActionPermission
// domain entity. The action column uses the native actions enum type.
type ActionPermissionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Action      identity.Action `gorm:"type:actions;not null"`
	Description *string         `gorm:"type:text"`
	GroupID     int64           `gorm:"column:group_id;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ActionPermissionModel) TableName() string {
	return "action_permissions"
}

// ToDomain converts the persistence model to a domain ActionPermission entity.
func (m *ActionPermissionModel) ToDomain() *identity.ActionPermission {
	return &identity.ActionPermission{
		ID:          m.ID,
		Action:      m.Action,
		Description: m.Description,
		GroupID:     m.GroupID,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain ActionPermission entity.
func (m *ActionPermissionModel) FromDomain(p *identity.ActionPermission) {
	m.ID = p.ID
	m.Action = p.Action
	m.Description = p.Description
	m.GroupID = p.GroupID
	m.CreatedAt = p.CreatedAt
}
