package catalog

import (
	"strings"

	"github.com/bazaar/backend/internal/domain/shared"
)

// ProductAttribute is a named axis of variation for a product, such as
// "color" or "size". Its options combine into variants.
type ProductAttribute struct {
	ID        int64
	Label     string `validate:"required,max=255"`
	ProductID int64  `validate:"required"`
}

// NewProductAttribute creates an attribute for a product
func NewProductAttribute(productID int64, label string) (*ProductAttribute, error) {
	attr := &ProductAttribute{
		Label:     strings.TrimSpace(label),
		ProductID: productID,
	}
	if err := attr.Validate(); err != nil {
		return nil, err
	}
	return attr, nil
}

// Validate checks the attribute's field rules
func (a *ProductAttribute) Validate() error {
	return shared.ValidateStruct(a)
}

// ProductAttributeOption is one concrete value of an attribute
type ProductAttributeOption struct {
	ID          int64
	Value       string `validate:"required,max=255"`
	AttributeID int64  `validate:"required"`
}

// NewProductAttributeOption creates an option under an attribute
func NewProductAttributeOption(attributeID int64, value string) (*ProductAttributeOption, error) {
	option := &ProductAttributeOption{
		Value:       strings.TrimSpace(value),
		AttributeID: attributeID,
	}
	if err := option.Validate(); err != nil {
		return nil, err
	}
	return option, nil
}

// Validate checks the option's field rules
func (o *ProductAttributeOption) Validate() error {
	return shared.ValidateStruct(o)
}

// ProductVariant is a sellable combination of attribute options with
// its own stock quantity. Order lines reference variants.
type ProductVariant struct {
	ID        int64
	Quantity  int   `validate:"gte=0"`
	ProductID int64 `validate:"required"`
}

// NewProductVariant creates a variant with the given starting stock
func NewProductVariant(productID int64, quantity int) (*ProductVariant, error) {
	variant := &ProductVariant{
		Quantity:  quantity,
		ProductID: productID,
	}
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	return variant, nil
}

// Validate checks the variant's field rules
func (v *ProductVariant) Validate() error {
	return shared.ValidateStruct(v)
}

// AdjustQuantity changes the stock level by delta, keeping the floor at 0
func (v *ProductVariant) AdjustQuantity(delta int) error {
	next := v.Quantity + delta
	if next < 0 {
		return shared.NewValidationError("quantity", "cannot be less than 0")
	}
	v.Quantity = next
	return nil
}

// ProductVariantOption links a variant to one attribute option; the
// pair is unique.
type ProductVariantOption struct {
	ID        int64
	VariantID int64 `validate:"required"`
	OptionID  int64 `validate:"required"`
}

// Validate checks the link's field rules
func (l *ProductVariantOption) Validate() error {
	return shared.ValidateStruct(l)
}
