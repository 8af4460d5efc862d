package catalog

import (
	"strings"

	"github.com/bazaar/backend/internal/domain/shared"
)

// Product is a catalog entry identified by a unique URL-safe slug.
// The subcategory reference is required and protects the category from
// deletion. Vendor links and order lines restrict product deletion to
// preserve order history.
type Product struct {
	shared.BaseEntity
	Name          string  `validate:"required,max=150"`
	Slug          string  `validate:"required,max=255,slug"`
	Price         float64 `validate:"gte=0"`
	Description   string  `validate:"max=4095"`
	SubcategoryID int64   `validate:"required"`
}

// NewProduct creates a product in a subcategory
func NewProduct(name, slug string, price float64, subcategoryID int64) (*Product, error) {
	product := &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          strings.TrimSpace(name),
		Slug:          strings.ToLower(strings.TrimSpace(slug)),
		Price:         price,
		SubcategoryID: subcategoryID,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate checks the product's field rules
func (p *Product) Validate() error {
	return shared.ValidateStruct(p)
}

// SetPrice updates the price
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return shared.NewValidationError("price", "cannot be less than 0")
	}
	p.Price = price
	p.Touch()
	return nil
}

// SetDescription updates the free-text description
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.Touch()
}

// ProductImage is an image attached to a product. image_name is unique
// across the whole platform; at most one image should be flagged main
// per product (enforced by the repository on update).
type ProductImage struct {
	ID        int64
	ImageName string `validate:"required,max=255"`
	IsMain    bool
	ProductID int64 `validate:"required"`
}

// NewProductImage creates an image record for a product
func NewProductImage(productID int64, imageName string, isMain bool) (*ProductImage, error) {
	image := &ProductImage{
		ImageName: strings.TrimSpace(imageName),
		IsMain:    isMain,
		ProductID: productID,
	}
	if err := image.Validate(); err != nil {
		return nil, err
	}
	return image, nil
}

// Validate checks the image's field rules
func (i *ProductImage) Validate() error {
	return shared.ValidateStruct(i)
}

// ProductSpec is a label/value pair describing a product
type ProductSpec struct {
	ID        int64
	Label     string `validate:"required,max=255"`
	Value     string `validate:"required,max=255"`
	ProductID int64  `validate:"required"`
}

// NewProductSpec creates a spec row for a product
func NewProductSpec(productID int64, label, value string) (*ProductSpec, error) {
	spec := &ProductSpec{
		Label:     strings.TrimSpace(label),
		Value:     strings.TrimSpace(value),
		ProductID: productID,
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// Validate checks the spec's field rules
func (s *ProductSpec) Validate() error {
	return shared.ValidateStruct(s)
}

// ProductTag is a reusable label linked to products through
// ProductTagAssignment rows.
type ProductTag struct {
	shared.BaseEntity
	Name string `validate:"required,max=127"`
}

// NewProductTag creates a tag
func NewProductTag(name string) (*ProductTag, error) {
	tag := &ProductTag{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}
	if err := tag.Validate(); err != nil {
		return nil, err
	}
	return tag, nil
}

// Validate checks the tag's field rules
func (t *ProductTag) Validate() error {
	return shared.ValidateStruct(t)
}

// ProductTagAssignment links a product to a tag; the pair is unique
type ProductTagAssignment struct {
	ProductID int64 `validate:"required"`
	TagID     int64 `validate:"required"`
}

// Validate checks the assignment's field rules
func (a *ProductTagAssignment) Validate() error {
	return shared.ValidateStruct(a)
}
