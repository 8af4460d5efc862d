package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/catalog"
	"github.com/bazaar/backend/internal/domain/shared"
	"github.com/bazaar/backend/internal/infrastructure/persistence/models"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create creates a new product
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	m := models.ProductModelFromDomain(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create product", err)
	}
	product.ID = m.ID
	return nil
}

// Update updates an existing product
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	result := r.db.WithContext(ctx).Save(models.ProductModelFromDomain(product))
	if result.Error != nil {
		return mapError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a product with all its owned rows. Vendor links and
// order lines restrict the delete, keeping sold products around.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var links int64
		if err := tx.Model(&models.VendorProductModel{}).Where("product_id = ?", id).Count(&links).Error; err != nil {
			return mapError("delete product", err)
		}
		if links > 0 {
			return &shared.IntegrityError{
				Constraint: "vendor_products_product_id_fkey",
				Op:         "delete product",
				Err:        fmt.Errorf("%d vendor link(s) reference the product: %w", links, shared.ErrInvalidState),
			}
		}

		var variantIDs []int64
		if err := tx.Model(&models.ProductVariantModel{}).Where("product_id = ?", id).Pluck("id", &variantIDs).Error; err != nil {
			return mapError("delete product", err)
		}
		if len(variantIDs) > 0 {
			var lines int64
			if err := tx.Model(&models.OrderProductVariantModel{}).Where("variant_id IN ?", variantIDs).Count(&lines).Error; err != nil {
				return mapError("delete product", err)
			}
			if lines > 0 {
				return &shared.IntegrityError{
					Constraint: "order_product_variants_variant_id_fkey",
					Op:         "delete product",
					Err:        fmt.Errorf("%d order line(s) reference the product's variants: %w", lines, shared.ErrInvalidState),
				}
			}
			if err := tx.Where("variant_id IN ?", variantIDs).Delete(&models.ProductVariantOptionModel{}).Error; err != nil {
				return mapError("delete product", err)
			}
		}

		var attrIDs []int64
		if err := tx.Model(&models.ProductAttributeModel{}).Where("product_id = ?", id).Pluck("id", &attrIDs).Error; err != nil {
			return mapError("delete product", err)
		}
		if len(attrIDs) > 0 {
			if err := tx.Where("attribute_id IN ?", attrIDs).Delete(&models.ProductAttributeOptionModel{}).Error; err != nil {
				return mapError("delete product", err)
			}
		}

		for _, owned := range []any{
			&models.ProductVariantModel{},
			&models.ProductAttributeModel{},
			&models.ProductImageModel{},
			&models.ProductSpecModel{},
			&models.ProductTagAssignmentModel{},
			&models.ProductCommentModel{},
		} {
			if err := tx.Where("product_id = ?", id).Delete(owned).Error; err != nil {
				return mapError("delete product", err)
			}
		}

		result := tx.Delete(&models.ProductModel{}, "id = ?", id)
		if result.Error != nil {
			return mapError("delete product", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var m models.ProductModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find product", err)
	}
	return m.ToDomain(), nil
}

// FindBySlug finds a product by its unique slug
func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var m models.ProductModel
	if err := r.db.WithContext(ctx).First(&m, "slug = ?", slug).Error; err != nil {
		return nil, mapError("find product", err)
	}
	return m.ToDomain(), nil
}

// FindBySubcategory returns the products filed under a category
func (r *GormProductRepository) FindBySubcategory(ctx context.Context, subcategoryID int64) ([]*catalog.Product, error) {
	var ms []models.ProductModel
	if err := r.db.WithContext(ctx).Where("subcategory_id = ?", subcategoryID).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list products", err)
	}
	products := make([]*catalog.Product, 0, len(ms))
	for i := range ms {
		products = append(products, ms[i].ToDomain())
	}
	return products, nil
}

// AddImage attaches an image to a product
func (r *GormProductRepository) AddImage(ctx context.Context, image *catalog.ProductImage) error {
	m := &models.ProductImageModel{}
	m.FromDomain(image)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add product image", err)
	}
	image.ID = m.ID
	return nil
}

// Images returns the images of a product, main image first
func (r *GormProductRepository) Images(ctx context.Context, productID int64) ([]*catalog.ProductImage, error) {
	var ms []models.ProductImageModel
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("is_main DESC, id ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list product images", err)
	}
	images := make([]*catalog.ProductImage, 0, len(ms))
	for i := range ms {
		images = append(images, ms[i].ToDomain())
	}
	return images, nil
}

// AddSpec attaches a spec row to a product
func (r *GormProductRepository) AddSpec(ctx context.Context, spec *catalog.ProductSpec) error {
	m := &models.ProductSpecModel{}
	m.FromDomain(spec)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add product spec", err)
	}
	spec.ID = m.ID
	return nil
}

// Specs returns the spec rows of a product
func (r *GormProductRepository) Specs(ctx context.Context, productID int64) ([]*catalog.ProductSpec, error) {
	var ms []models.ProductSpecModel
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("label ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list product specs", err)
	}
	specs := make([]*catalog.ProductSpec, 0, len(ms))
	for i := range ms {
		specs = append(specs, ms[i].ToDomain())
	}
	return specs, nil
}

// CreateTag creates a reusable tag
func (r *GormProductRepository) CreateTag(ctx context.Context, tag *catalog.ProductTag) error {
	m := &models.ProductTagModel{}
	m.FromDomain(tag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create product tag", err)
	}
	tag.ID = m.ID
	return nil
}

// AssignTag links a tag to a product
func (r *GormProductRepository) AssignTag(ctx context.Context, productID, tagID int64) error {
	m := &models.ProductTagAssignmentModel{ProductID: productID, TagID: tagID}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("assign product tag", err)
	}
	return nil
}

// UnassignTag unlinks a tag from a product
func (r *GormProductRepository) UnassignTag(ctx context.Context, productID, tagID int64) error {
	result := r.db.WithContext(ctx).
		Where("product_id = ? AND tag_id = ?", productID, tagID).
		Delete(&models.ProductTagAssignmentModel{})
	if result.Error != nil {
		return mapError("unassign product tag", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Tags returns the tags linked to a product
func (r *GormProductRepository) Tags(ctx context.Context, productID int64) ([]*catalog.ProductTag, error) {
	var ms []models.ProductTagModel
	err := r.db.WithContext(ctx).
		Joins("JOIN product_tag_assignments pta ON pta.tag_id = product_tags.id").
		Where("pta.product_id = ?", productID).
		Order("product_tags.name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, mapError("list product tags", err)
	}
	tags := make([]*catalog.ProductTag, 0, len(ms))
	for i := range ms {
		tags = append(tags, ms[i].ToDomain())
	}
	return tags, nil
}

// AddAttribute attaches an attribute axis to a product
func (r *GormProductRepository) AddAttribute(ctx context.Context, attr *catalog.ProductAttribute) error {
	m := &models.ProductAttributeModel{}
	m.FromDomain(attr)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add product attribute", err)
	}
	attr.ID = m.ID
	return nil
}

// AddAttributeOption attaches an option to an attribute
func (r *GormProductRepository) AddAttributeOption(ctx context.Context, option *catalog.ProductAttributeOption) error {
	m := &models.ProductAttributeOptionModel{}
	m.FromDomain(option)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add attribute option", err)
	}
	option.ID = m.ID
	return nil
}

// AddVariant attaches a sellable variant to a product
func (r *GormProductRepository) AddVariant(ctx context.Context, variant *catalog.ProductVariant) error {
	m := &models.ProductVariantModel{}
	m.FromDomain(variant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add product variant", err)
	}
	variant.ID = m.ID
	return nil
}

// LinkVariantOption links a variant to one of its product's attribute options
func (r *GormProductRepository) LinkVariantOption(ctx context.Context, variantID, optionID int64) error {
	m := &models.ProductVariantOptionModel{VariantID: variantID, OptionID: optionID}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("link variant option", err)
	}
	return nil
}

// Variants returns the variants of a product
func (r *GormProductRepository) Variants(ctx context.Context, productID int64) ([]*catalog.ProductVariant, error) {
	var ms []models.ProductVariantModel
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list product variants", err)
	}
	variants := make([]*catalog.ProductVariant, 0, len(ms))
	for i := range ms {
		variants = append(variants, ms[i].ToDomain())
	}
	return variants, nil
}

// UpdateVariant updates a variant's stock
func (r *GormProductRepository) UpdateVariant(ctx context.Context, variant *catalog.ProductVariant) error {
	m := &models.ProductVariantModel{}
	m.FromDomain(variant)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return mapError("update product variant", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AddComment attaches a user review to a product
func (r *GormProductRepository) AddComment(ctx context.Context, comment *catalog.ProductComment) error {
	m := &models.ProductCommentModel{}
	m.FromDomain(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add product comment", err)
	}
	comment.ID = m.ID
	return nil
}

// Comments returns the reviews of a product, newest first
func (r *GormProductRepository) Comments(ctx context.Context, productID int64) ([]*catalog.ProductComment, error) {
	var ms []models.ProductCommentModel
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, mapError("list product comments", err)
	}
	comments := make([]*catalog.ProductComment, 0, len(ms))
	for i := range ms {
		comments = append(comments, ms[i].ToDomain())
	}
	return comments, nil
}

// DeleteComment removes a review by ID
func (r *GormProductRepository) DeleteComment(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductCommentModel{}, "id = ?", id)
	if result.Error != nil {
		return mapError("delete product comment", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
