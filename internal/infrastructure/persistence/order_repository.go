package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/order"
	"github.com/bazaar/backend/internal/domain/shared"
	"github.com/bazaar/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements order.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create stores an order together with its line items in one
// transaction. A duplicate transaction_id surfaces as an
// IntegrityError from the unique index.
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order, lines []*order.OrderProductVariant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := models.OrderModelFromDomain(o)
		if err := tx.Create(m).Error; err != nil {
			return mapError("create order", err)
		}
		o.ID = m.ID

		for _, line := range lines {
			line.OrderID = m.ID
			lm := &models.OrderProductVariantModel{}
			lm.FromDomain(line)
			if err := tx.Create(lm).Error; err != nil {
				return mapError("create order line", err)
			}
		}
		return nil
	})
}

// Update updates an existing order
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).Save(models.OrderModelFromDomain(o))
	if result.Error != nil {
		return mapError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an order and its line items. The referenced wallet
// transaction and variants stay.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProductVariantModel{}).Error; err != nil {
			return mapError("delete order", err)
		}
		result := tx.Delete(&models.OrderModel{}, "id = ?", id)
		if result.Error != nil {
			return mapError("delete order", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	var m models.OrderModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find order", err)
	}
	return m.ToDomain(), nil
}

// FindByUser returns a user's orders, newest first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	var ms []models.OrderModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, mapError("list orders", err)
	}
	orders := make([]*order.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, ms[i].ToDomain())
	}
	return orders, nil
}

// FindByTransaction finds the order backed by a wallet transaction
func (r *GormOrderRepository) FindByTransaction(ctx context.Context, transactionID int64) (*order.Order, error) {
	var m models.OrderModel
	if err := r.db.WithContext(ctx).First(&m, "transaction_id = ?", transactionID).Error; err != nil {
		return nil, mapError("find order", err)
	}
	return m.ToDomain(), nil
}

// AddLine adds a line item to an existing order
func (r *GormOrderRepository) AddLine(ctx context.Context, line *order.OrderProductVariant) error {
	m := &models.OrderProductVariantModel{}
	m.FromDomain(line)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("add order line", err)
	}
	return nil
}

// Lines returns the line items of an order
func (r *GormOrderRepository) Lines(ctx context.Context, orderID int64) ([]*order.OrderProductVariant, error) {
	var ms []models.OrderProductVariantModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, mapError("list order lines", err)
	}
	lines := make([]*order.OrderProductVariant, 0, len(ms))
	for i := range ms {
		lines = append(lines, ms[i].ToDomain())
	}
	return lines, nil
}
