package models

import (
	"time"

	"github.com/bazaar/backend/internal/domain/order"
)

// OrderModel is the persistence model for the Order domain entity.
// transaction_id is unique: one wallet transaction backs at most one
// order.
type OrderModel struct {
	BaseModel
	TotalPrice    float64   `gorm:"not null"`
	DeliveryDate  time.Time `gorm:"type:date;not null"`
	UserID        int64     `gorm:"column:user_id;not null;index"`
	TransactionID int64     `gorm:"column:transaction_id;not null;uniqueIndex"`
	Verified      bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *order.Order {
	return &order.Order{
		BaseEntity:    m.BaseModel.ToDomain(),
		TotalPrice:    m.TotalPrice,
		DeliveryDate:  m.DeliveryDate,
		UserID:        m.UserID,
		TransactionID: m.TransactionID,
		Verified:      m.Verified,
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.TotalPrice = o.TotalPrice
	m.DeliveryDate = o.DeliveryDate
	m.UserID = o.UserID
	m.TransactionID = o.TransactionID
	m.Verified = o.Verified
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderProductVariantModel is the persistence model for order line
// items. Lines cascade with their order; the variant reference cascades
// too, per the storage contract.
type OrderProductVariantModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"column:order_id;not null;index"`
	VariantID int64 `gorm:"column:variant_id;not null;index"`
}

// TableName returns the table name for GORM
func (OrderProductVariantModel) TableName() string {
	return "order_product_variants"
}

// ToDomain converts the persistence model to a domain OrderProductVariant.
func (m *OrderProductVariantModel) ToDomain() *order.OrderProductVariant {
	return &order.OrderProductVariant{
		OrderID:   m.OrderID,
		VariantID: m.VariantID,
	}
}

// FromDomain populates the persistence model from a domain OrderProductVariant.
func (m *OrderProductVariantModel) FromDomain(l *order.OrderProductVariant) {
	m.OrderID = l.OrderID
	m.VariantID = l.VariantID
}
