package catalog

import (
	"context"
)

// ProductRepository defines persistence operations for products and
// their owned rows. Product deletion cascades to images, specs,
// attributes, variants and comments, but fails while a vendor link or
// an order line references the product.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindBySubcategory(ctx context.Context, subcategoryID int64) ([]*Product, error)

	AddImage(ctx context.Context, image *ProductImage) error
	Images(ctx context.Context, productID int64) ([]*ProductImage, error)
	AddSpec(ctx context.Context, spec *ProductSpec) error
	Specs(ctx context.Context, productID int64) ([]*ProductSpec, error)

	CreateTag(ctx context.Context, tag *ProductTag) error
	AssignTag(ctx context.Context, productID, tagID int64) error
	UnassignTag(ctx context.Context, productID, tagID int64) error
	Tags(ctx context.Context, productID int64) ([]*ProductTag, error)

	AddAttribute(ctx context.Context, attr *ProductAttribute) error
	AddAttributeOption(ctx context.Context, option *ProductAttributeOption) error
	AddVariant(ctx context.Context, variant *ProductVariant) error
	LinkVariantOption(ctx context.Context, variantID, optionID int64) error
	Variants(ctx context.Context, productID int64) ([]*ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *ProductVariant) error

	AddComment(ctx context.Context, comment *ProductComment) error
	Comments(ctx context.Context, productID int64) ([]*ProductComment, error)
	DeleteComment(ctx context.Context, id int64) error
}
