package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/shared"
	vendordomain "github.com/bazaar/backend/internal/domain/vendor"
	"github.com/bazaar/backend/internal/infrastructure/persistence/models"
)

// GormVendorRepository implements vendor.VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// Create creates a new vendor
func (r *GormVendorRepository) Create(ctx context.Context, v *vendordomain.Vendor) error {
	m := models.VendorModelFromDomain(v)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create vendor", err)
	}
	v.ID = m.ID
	return nil
}

// Update updates an existing vendor
func (r *GormVendorRepository) Update(ctx context.Context, v *vendordomain.Vendor) error {
	result := r.db.WithContext(ctx).Save(models.VendorModelFromDomain(v))
	if result.Error != nil {
		return mapError("update vendor", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a vendor and its contact records. Product links
// restrict the delete.
func (r *GormVendorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var links int64
		if err := tx.Model(&models.VendorProductModel{}).Where("vendor_id = ?", id).Count(&links).Error; err != nil {
			return mapError("delete vendor", err)
		}
		if links > 0 {
			return &shared.IntegrityError{
				Constraint: "vendor_products_vendor_id_fkey",
				Op:         "delete vendor",
				Err:        fmt.Errorf("%d product link(s) reference the vendor: %w", links, shared.ErrInvalidState),
			}
		}

		if err := tx.Where("vendor_id = ?", id).Delete(&models.AddressModel{}).Error; err != nil {
			return mapError("delete vendor", err)
		}
		if err := tx.Where("vendor_id = ?", id).Delete(&models.PhoneNumberModel{}).Error; err != nil {
			return mapError("delete vendor", err)
		}

		result := tx.Delete(&models.VendorModel{}, "id = ?", id)
		if result.Error != nil {
			return mapError("delete vendor", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a vendor by ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id int64) (*vendordomain.Vendor, error) {
	var m models.VendorModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find vendor", err)
	}
	return m.ToDomain(), nil
}

// FindByName finds a vendor by its unique name
func (r *GormVendorRepository) FindByName(ctx context.Context, name string) (*vendordomain.Vendor, error) {
	var m models.VendorModel
	if err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error; err != nil {
		return nil, mapError("find vendor", err)
	}
	return m.ToDomain(), nil
}

// FindByOwner returns the vendors owned by a user
func (r *GormVendorRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*vendordomain.Vendor, error) {
	var ms []models.VendorModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list vendors", err)
	}
	vendors := make([]*vendordomain.Vendor, 0, len(ms))
	for i := range ms {
		vendors = append(vendors, ms[i].ToDomain())
	}
	return vendors, nil
}

// LinkProduct links a product to the vendor's storefront
func (r *GormVendorRepository) LinkProduct(ctx context.Context, vendorID, productID int64) error {
	m := &models.VendorProductModel{VendorID: vendorID, ProductID: productID}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("link vendor product", err)
	}
	return nil
}

// UnlinkProduct removes a product from the vendor's storefront
func (r *GormVendorRepository) UnlinkProduct(ctx context.Context, vendorID, productID int64) error {
	result := r.db.WithContext(ctx).
		Where("vendor_id = ? AND product_id = ?", vendorID, productID).
		Delete(&models.VendorProductModel{})
	if result.Error != nil {
		return mapError("unlink vendor product", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ProductIDs returns the IDs of the products the vendor sells
func (r *GormVendorRepository) ProductIDs(ctx context.Context, vendorID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.VendorProductModel{}).
		Where("vendor_id = ?", vendorID).
		Order("product_id ASC").
		Pluck("product_id", &ids).Error; err != nil {
		return nil, mapError("list vendor products", err)
	}
	return ids, nil
}

// GormAddressRepository implements vendor.AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Create creates a new address
func (r *GormAddressRepository) Create(ctx context.Context, address *vendordomain.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m := &models.AddressModel{}
	m.FromDomain(address)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create address", err)
	}
	address.ID = m.ID
	return nil
}

// Update updates an existing address
func (r *GormAddressRepository) Update(ctx context.Context, address *vendordomain.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m := &models.AddressModel{}
	m.FromDomain(address)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return mapError("update address", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an address by ID
func (r *GormAddressRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return mapError("delete address", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an address by ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id int64) (*vendordomain.Address, error) {
	var m models.AddressModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find address", err)
	}
	return m.ToDomain(), nil
}

// FindByOwner returns the addresses of a user or vendor
func (r *GormAddressRepository) FindByOwner(ctx context.Context, owner vendordomain.Owner) ([]*vendordomain.Address, error) {
	var ms []models.AddressModel
	if err := ownerQuery(r.db.WithContext(ctx), owner).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list addresses", err)
	}
	addresses := make([]*vendordomain.Address, 0, len(ms))
	for i := range ms {
		addresses = append(addresses, ms[i].ToDomain())
	}
	return addresses, nil
}

// GormPhoneNumberRepository implements vendor.PhoneNumberRepository using GORM
type GormPhoneNumberRepository struct {
	db *gorm.DB
}

// NewGormPhoneNumberRepository creates a new GormPhoneNumberRepository
func NewGormPhoneNumberRepository(db *gorm.DB) *GormPhoneNumberRepository {
	return &GormPhoneNumberRepository{db: db}
}

// Create creates a new phone number. The number is globally unique, so
// a second owner registering the same number gets an IntegrityError.
func (r *GormPhoneNumberRepository) Create(ctx context.Context, number *vendordomain.PhoneNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	m := &models.PhoneNumberModel{}
	m.FromDomain(number)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create phone number", err)
	}
	number.ID = m.ID
	return nil
}

// Update updates an existing phone number
func (r *GormPhoneNumberRepository) Update(ctx context.Context, number *vendordomain.PhoneNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	m := &models.PhoneNumberModel{}
	m.FromDomain(number)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return mapError("update phone number", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a phone number by ID
func (r *GormPhoneNumberRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.PhoneNumberModel{}, "id = ?", id)
	if result.Error != nil {
		return mapError("delete phone number", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a phone number by ID
func (r *GormPhoneNumberRepository) FindByID(ctx context.Context, id int64) (*vendordomain.PhoneNumber, error) {
	var m models.PhoneNumberModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find phone number", err)
	}
	return m.ToDomain(), nil
}

// FindByNumber finds a phone number by the number itself
func (r *GormPhoneNumberRepository) FindByNumber(ctx context.Context, number string) (*vendordomain.PhoneNumber, error) {
	var m models.PhoneNumberModel
	if err := r.db.WithContext(ctx).First(&m, "number = ?", number).Error; err != nil {
		return nil, mapError("find phone number", err)
	}
	return m.ToDomain(), nil
}

// FindByOwner returns the phone numbers of a user or vendor
func (r *GormPhoneNumberRepository) FindByOwner(ctx context.Context, owner vendordomain.Owner) ([]*vendordomain.PhoneNumber, error) {
	var ms []models.PhoneNumberModel
	if err := ownerQuery(r.db.WithContext(ctx), owner).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list phone numbers", err)
	}
	numbers := make([]*vendordomain.PhoneNumber, 0, len(ms))
	for i := range ms {
		numbers = append(numbers, ms[i].ToDomain())
	}
	return numbers, nil
}

// ownerQuery scopes a query to the owner's FK column
func ownerQuery(db *gorm.DB, owner vendordomain.Owner) *gorm.DB {
	if owner.Kind == vendordomain.OwnerVendor {
		return db.Where("vendor_id = ?", owner.ID)
	}
	return db.Where("user_id = ?", owner.ID)
}
