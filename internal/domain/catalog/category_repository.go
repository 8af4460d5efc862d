package catalog

import (
	"context"
)

// CategoryRepository defines persistence operations for the category
// tree. Update must reject moves that would create a cycle; Delete
// cascades to the subtree and fails while any product protects a
// category in it.
type CategoryRepository interface {
	Create(ctx context.Context, category *ProductCategory) error
	Update(ctx context.Context, category *ProductCategory) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*ProductCategory, error)
	FindRoots(ctx context.Context) ([]*ProductCategory, error)
	FindChildren(ctx context.Context, parentID int64) ([]*ProductCategory, error)
}
