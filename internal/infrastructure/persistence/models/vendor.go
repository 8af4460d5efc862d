package models

import (
	vendordomain "github.com/bazaar/backend/internal/domain/vendor"
)

// VendorModel is the persistence model for the Vendor domain entity.
type VendorModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(1023);not null"`
	OwnerID     int64  `gorm:"column:owner_id;not null;index"`
	Verified    bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor entity.
func (m *VendorModel) ToDomain() *vendordomain.Vendor {
	return &vendordomain.Vendor{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		Verified:    m.Verified,
	}
}

// FromDomain populates the persistence model from a domain Vendor entity.
func (m *VendorModel) FromDomain(v *vendordomain.Vendor) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.Name = v.Name
	m.Description = v.Description
	m.OwnerID = v.OwnerID
	m.Verified = v.Verified
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor entity.
func VendorModelFromDomain(v *vendordomain.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}

// VendorProductModel is the persistence model for the vendor to product
// link. The pair is unique and both sides restrict deletion.
type VendorProductModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	VendorID  int64 `gorm:"column:vendor_id;not null;uniqueIndex:idx_vendor_product"`
	ProductID int64 `gorm:"column:product_id;not null;uniqueIndex:idx_vendor_product"`
}

// TableName returns the table name for GORM
func (VendorProductModel) TableName() string {
	return "vendor_products"
}

// AddressModel is the persistence model for the Address domain entity.
// Exactly one of user_id and vendor_id is set, backed by the
// address_has_owner and address_single_owner check constraints.
type AddressModel struct {
	BaseModel
	State    string  `gorm:"type:varchar(127);not null"`
	City     string  `gorm:"type:varchar(127);not null"`
	Street   string  `gorm:"type:varchar(255);not null"`
	Zipcode  string  `gorm:"type:varchar(127);not null"`
	Details  *string `gorm:"type:text"`
	UserID   *int64  `gorm:"column:user_id;index"`
	VendorID *int64  `gorm:"column:vendor_id;index"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address entity.
func (m *AddressModel) ToDomain() *vendordomain.Address {
	return &vendordomain.Address{
		BaseEntity: m.BaseModel.ToDomain(),
		State:      m.State,
		City:       m.City,
		Street:     m.Street,
		Zipcode:    m.Zipcode,
		Details:    m.Details,
		UserID:     m.UserID,
		VendorID:   m.VendorID,
	}
}

// FromDomain populates the persistence model from a domain Address entity.
func (m *AddressModel) FromDomain(a *vendordomain.Address) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.State = a.State
	m.City = a.City
	m.Street = a.Street
	m.Zipcode = a.Zipcode
	m.Details = a.Details
	m.UserID = a.UserID
	m.VendorID = a.VendorID
}

// PhoneNumberModel is the persistence model for the PhoneNumber domain
// entity. It shares the owner exclusivity constraints with AddressModel
// and keeps the legacy table name phonenumbers.
type PhoneNumberModel struct {
	BaseModel
	CountryCode string `gorm:"type:varchar(5);not null"`
	Number      string `gorm:"type:varchar(15);not null;uniqueIndex"`
	Verified    bool   `gorm:"not null;default:false"`
	UserID      *int64 `gorm:"column:user_id;index"`
	VendorID    *int64 `gorm:"column:vendor_id;index"`
}

// TableName returns the table name for GORM
func (PhoneNumberModel) TableName() string {
	return "phonenumbers"
}

// ToDomain converts the persistence model to a domain PhoneNumber entity.
func (m *PhoneNumberModel) ToDomain() *vendordomain.PhoneNumber {
	return &vendordomain.PhoneNumber{
		BaseEntity:  m.BaseModel.ToDomain(),
		CountryCode: m.CountryCode,
		Number:      m.Number,
		Verified:    m.Verified,
		UserID:      m.UserID,
		VendorID:    m.VendorID,
	}
}

// FromDomain populates the persistence model from a domain PhoneNumber entity.
func (m *PhoneNumberModel) FromDomain(p *vendordomain.PhoneNumber) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.CountryCode = p.CountryCode
	m.Number = p.Number
	m.Verified = p.Verified
	m.UserID = p.UserID
	m.VendorID = p.VendorID
}
