package models

import (
	"github.com/bazaar/backend/internal/domain/catalog"
)

// ProductCategoryModel is the persistence model for the ProductCategory
// domain entity. The self-referencing parent column keeps its legacy
// name product_category_id.
type ProductCategoryModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(127);not null"`
	ParentID *int64 `gorm:"column:product_category_id;index"`
}

// TableName returns the table name for GORM
func (ProductCategoryModel) TableName() string {
	return "product_categories"
}

// ToDomain converts the persistence model to a domain ProductCategory entity.
func (m *ProductCategoryModel) ToDomain() *catalog.ProductCategory {
	return &catalog.ProductCategory{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		ParentID:   m.ParentID,
	}
}

// FromDomain populates the persistence model from a domain ProductCategory entity.
func (m *ProductCategoryModel) FromDomain(c *catalog.ProductCategory) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.ParentID = c.ParentID
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name          string  `gorm:"type:varchar(150);not null"`
	Slug          string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price         float64 `gorm:"not null"`
	Description   string  `gorm:"type:varchar(4095);not null"`
	SubcategoryID int64   `gorm:"column:subcategory_id;not null;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		Slug:          m.Slug,
		Price:         m.Price,
		Description:   m.Description,
		SubcategoryID: m.SubcategoryID,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Slug = p.Slug
	m.Price = p.Price
	m.Description = p.Description
	m.SubcategoryID = p.SubcategoryID
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// ProductImageModel is the persistence model for the ProductImage domain entity.
type ProductImageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ImageName string `gorm:"type:varchar(255);not null;uniqueIndex"`
	IsMain    bool   `gorm:"not null;default:false"`
	ProductID int64  `gorm:"column:product_id;not null;index"`
}

// TableName returns the table name for GORM
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ToDomain converts the persistence model to a domain ProductImage entity.
func (m *ProductImageModel) ToDomain() *catalog.ProductImage {
	return &catalog.ProductImage{
		ID:        m.ID,
		ImageName: m.ImageName,
		IsMain:    m.IsMain,
		ProductID: m.ProductID,
	}
}

// FromDomain populates the persistence model from a domain ProductImage entity.
func (m *ProductImageModel) FromDomain(i *catalog.ProductImage) {
	m.ID = i.ID
	m.ImageName = i.ImageName
	m.IsMain = i.IsMain
	m.ProductID = i.ProductID
}

// ProductSpecModel is the persistence model for the ProductSpec domain entity.
type ProductSpecModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Label     string `gorm:"type:varchar(255);not null"`
	Value     string `gorm:"type:varchar(255);not null"`
	ProductID int64  `gorm:"column:product_id;not null;index"`
}

// TableName returns the table name for GORM
func (ProductSpecModel) TableName() string {
	return "product_specs"
}

// ToDomain converts the persistence model to a domain ProductSpec entity.
func (m *ProductSpecModel) ToDomain() *catalog.ProductSpec {
	return &catalog.ProductSpec{
		ID:        m.ID,
		Label:     m.Label,
		Value:     m.Value,
		ProductID: m.ProductID,
	}
}

// FromDomain populates the persistence model from a domain ProductSpec entity.
func (m *ProductSpecModel) FromDomain(s *catalog.ProductSpec) {
	m.ID = s.ID
	m.Label = s.Label
	m.Value = s.Value
	m.ProductID = s.ProductID
}

// ProductTagModel is the persistence model for the ProductTag domain entity.
type ProductTagModel struct {
	BaseModel
	Name string `gorm:"type:varchar(127);not null"`
}

// TableName returns the table name for GORM
func (ProductTagModel) TableName() string {
	return "product_tags"
}

// ToDomain converts the persistence model to a domain ProductTag entity.
func (m *ProductTagModel) ToDomain() *catalog.ProductTag {
	return &catalog.ProductTag{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain ProductTag entity.
func (m *ProductTagModel) FromDomain(t *catalog.ProductTag) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
}

// ProductTagAssignmentModel is the persistence model for the product to
// tag link. The pair is unique.
type ProductTagAssignmentModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ProductID int64 `gorm:"column:product_id;not null;uniqueIndex:idx_product_tag"`
	TagID     int64 `gorm:"column:tag_id;not null;uniqueIndex:idx_product_tag"`
}

// TableName returns the table name for GORM
func (ProductTagAssignmentModel) TableName() string {
	return "product_tag_assignments"
}

// ProductAttributeModel is the persistence model for the ProductAttribute
// domain entity.
type ProductAttributeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Label     string `gorm:"type:varchar(255);not null"`
	ProductID int64  `gorm:"column:product_id;not null;index"`
}

// TableName returns the table name for GORM
func (ProductAttributeModel) TableName() string {
	return "product_attributes"
}

// ToDomain converts the persistence model to a domain ProductAttribute entity.
func (m *ProductAttributeModel) ToDomain() *catalog.ProductAttribute {
	return &catalog.ProductAttribute{
		ID:        m.ID,
		Label:     m.Label,
		ProductID: m.ProductID,
	}
}

// FromDomain populates the persistence model from a domain ProductAttribute entity.
func (m *ProductAttributeModel) FromDomain(a *catalog.ProductAttribute) {
	m.ID = a.ID
	m.Label = a.Label
	m.ProductID = a.ProductID
}

// ProductAttributeOptionModel is the persistence model for the
// ProductAttributeOption domain entity.
type ProductAttributeOptionModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Value       string `gorm:"type:varchar(255);not null"`
	AttributeID int64  `gorm:"column:attribute_id;not null;index"`
}

// TableName returns the table name for GORM
func (ProductAttributeOptionModel) TableName() string {
	return "product_attribute_options"
}

// ToDomain converts the persistence model to a domain ProductAttributeOption entity.
func (m *ProductAttributeOptionModel) ToDomain() *catalog.ProductAttributeOption {
	return &catalog.ProductAttributeOption{
		ID:          m.ID,
		Value:       m.Value,
		AttributeID: m.AttributeID,
	}
}

// FromDomain populates the persistence model from a domain ProductAttributeOption entity.
func (m *ProductAttributeOptionModel) FromDomain(o *catalog.ProductAttributeOption) {
	m.ID = o.ID
	m.Value = o.Value
	m.AttributeID = o.AttributeID
}

// ProductVariantModel is the persistence model for the ProductVariant
// domain entity.
type ProductVariantModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Quantity  int   `gorm:"not null;default:0"`
	ProductID int64 `gorm:"column:product_id;not null;index"`
}

// TableName returns the table name for GORM
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ToDomain converts the persistence model to a domain ProductVariant entity.
func (m *ProductVariantModel) ToDomain() *catalog.ProductVariant {
	return &catalog.ProductVariant{
		ID:        m.ID,
		Quantity:  m.Quantity,
		ProductID: m.ProductID,
	}
}

// FromDomain populates the persistence model from a domain ProductVariant entity.
func (m *ProductVariantModel) FromDomain(v *catalog.ProductVariant) {
	m.ID = v.ID
	m.Quantity = v.Quantity
	m.ProductID = v.ProductID
}

// ProductVariantOptionModel is the persistence model for the variant to
// attribute option link. The pair is unique.
type ProductVariantOptionModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	VariantID int64 `gorm:"column:variant_id;not null;uniqueIndex:idx_variant_option"`
	OptionID  int64 `gorm:"column:option_id;not null;uniqueIndex:idx_variant_option"`
}

// TableName returns the table name for GORM
func (ProductVariantOptionModel) TableName() string {
	return "product_variant_options"
}

// ProductCommentModel is the persistence model for the ProductComment
// domain entity.
type ProductCommentModel struct {
	BaseModel
	Scoring   int     `gorm:"not null"`
	Comment   *string `gorm:"type:varchar(1023)"`
	ProductID int64   `gorm:"column:product_id;not null;index"`
	UserID    int64   `gorm:"column:user_id;not null;index"`
}

// TableName returns the table name for GORM
func (ProductCommentModel) TableName() string {
	return "product_comments"
}

// ToDomain converts the persistence model to a domain ProductComment entity.
func (m *ProductCommentModel) ToDomain() *catalog.ProductComment {
	return &catalog.ProductComment{
		BaseEntity: m.BaseModel.ToDomain(),
		Scoring:    m.Scoring,
		Comment:    m.Comment,
		ProductID:  m.ProductID,
		UserID:     m.UserID,
	}
}

// FromDomain populates the persistence model from a domain ProductComment entity.
func (m *ProductCommentModel) FromDomain(c *catalog.ProductComment) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Scoring = c.Scoring
	m.Comment = c.Comment
	m.ProductID = c.ProductID
	m.UserID = c.UserID
}
