package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/catalog"
	"github.com/bazaar/backend/internal/domain/shared"
	"github.com/bazaar/backend/internal/infrastructure/persistence/models"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create creates a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *catalog.ProductCategory) error {
	m := &models.ProductCategoryModel{}
	m.FromDomain(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create category", err)
	}
	category.ID = m.ID
	return nil
}

// Update updates a category, rejecting parent moves that would create a
// cycle. The schema has no guard of its own here, so the walk below is
// the only thing standing between us and an infinite tree.
func (r *GormCategoryRepository) Update(ctx context.Context, category *catalog.ProductCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if category.ParentID != nil {
			if err := r.checkCycle(tx, category.ID, *category.ParentID); err != nil {
				return err
			}
		}
		m := &models.ProductCategoryModel{}
		m.FromDomain(category)
		result := tx.Save(m)
		if result.Error != nil {
			return mapError("update category", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// checkCycle walks from newParentID toward the root and fails if it
// passes through id.
func (r *GormCategoryRepository) checkCycle(tx *gorm.DB, id, newParentID int64) error {
	current := newParentID
	for current != 0 {
		if current == id {
			return shared.NewValidationError("parent_category", "would create a cycle in the category tree")
		}
		var m models.ProductCategoryModel
		if err := tx.Select("product_category_id").First(&m, "id = ?", current).Error; err != nil {
			return mapError("check category cycle", err)
		}
		if m.ParentID == nil {
			return nil
		}
		current = *m.ParentID
	}
	return nil
}

// Delete deletes a category and its whole subtree. Products protect the
// categories they are filed under, failing the delete via the FK.
func (r *GormCategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subtree, err := r.collectSubtree(tx, id)
		if err != nil {
			return err
		}

		var products int64
		if err := tx.Model(&models.ProductModel{}).Where("subcategory_id IN ?", subtree).Count(&products).Error; err != nil {
			return mapError("delete category", err)
		}
		if products > 0 {
			return &shared.IntegrityError{
				Constraint: "products_subcategory_id_fkey",
				Op:         "delete category",
				Err:        fmt.Errorf("%d product(s) reference the subtree: %w", products, shared.ErrInvalidState),
			}
		}

		// Children first so the self-referencing FK never dangles
		for i := len(subtree) - 1; i >= 0; i-- {
			result := tx.Delete(&models.ProductCategoryModel{}, "id = ?", subtree[i])
			if result.Error != nil {
				return mapError("delete category", result.Error)
			}
			if subtree[i] == id && result.RowsAffected == 0 {
				return shared.ErrNotFound
			}
		}
		return nil
	})
}

// collectSubtree returns id and all its descendants in breadth-first
// order.
func (r *GormCategoryRepository) collectSubtree(tx *gorm.DB, id int64) ([]int64, error) {
	subtree := []int64{id}
	frontier := []int64{id}
	for len(frontier) > 0 {
		var children []int64
		if err := tx.Model(&models.ProductCategoryModel{}).
			Where("product_category_id IN ?", frontier).
			Pluck("id", &children).Error; err != nil {
			return nil, mapError("collect category subtree", err)
		}
		subtree = append(subtree, children...)
		frontier = children
	}
	return subtree, nil
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.ProductCategory, error) {
	var m models.ProductCategoryModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find category", err)
	}
	return m.ToDomain(), nil
}

// FindRoots returns the categories without a parent
func (r *GormCategoryRepository) FindRoots(ctx context.Context) ([]*catalog.ProductCategory, error) {
	var ms []models.ProductCategoryModel
	if err := r.db.WithContext(ctx).Where("product_category_id IS NULL").Order("name ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list root categories", err)
	}
	return categoriesToDomain(ms), nil
}

// FindChildren returns the direct children of a category
func (r *GormCategoryRepository) FindChildren(ctx context.Context, parentID int64) ([]*catalog.ProductCategory, error) {
	var ms []models.ProductCategoryModel
	if err := r.db.WithContext(ctx).Where("product_category_id = ?", parentID).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list child categories", err)
	}
	return categoriesToDomain(ms), nil
}

func categoriesToDomain(ms []models.ProductCategoryModel) []*catalog.ProductCategory {
	categories := make([]*catalog.ProductCategory, 0, len(ms))
	for i := range ms {
		categories = append(categories, ms[i].ToDomain())
	}
	return categories
}
