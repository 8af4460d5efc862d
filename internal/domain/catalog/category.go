package catalog

import (
	"strings"

	"github.com/bazaar/backend/internal/domain/shared"
)

// ProductCategory is a node in the category tree. Deleting a category
// cascades to its subtree; products protect the categories they are
// filed under. The schema does not guard against cycles, so the
// application rejects them before persisting (see CategoryRepository).
type ProductCategory struct {
	shared.BaseEntity
	Name     string `validate:"required,max=127"`
	ParentID *int64
}

// NewProductCategory creates a root category
func NewProductCategory(name string) (*ProductCategory, error) {
	category := &ProductCategory{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	return category, nil
}

// NewSubcategory creates a category under a parent
func NewSubcategory(name string, parentID int64) (*ProductCategory, error) {
	category, err := NewProductCategory(name)
	if err != nil {
		return nil, err
	}
	category.ParentID = &parentID
	return category, nil
}

// Validate checks the category's field rules
func (c *ProductCategory) Validate() error {
	return shared.ValidateStruct(c)
}

// SetParent moves the category under a new parent. Self-parenting is
// rejected here; deeper cycles are rejected by the repository, which
// can see the rest of the tree.
func (c *ProductCategory) SetParent(parentID int64) error {
	if c.ID != 0 && parentID == c.ID {
		return shared.NewValidationError("parent_category", "cannot be the category itself")
	}
	c.ParentID = &parentID
	c.Touch()
	return nil
}

// ClearParent makes the category a root
func (c *ProductCategory) ClearParent() {
	c.ParentID = nil
	c.Touch()
}

// IsRoot reports whether the category has no parent
func (c *ProductCategory) IsRoot() bool {
	return c.ParentID == nil
}
