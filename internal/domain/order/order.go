package order

import (
	"time"

	"github.com/bazaar/backend/internal/domain/shared"
)

// Order is a settled purchase by a user. Each order is backed by
// exactly one wallet transaction and the transaction cannot be deleted
// while the order exists. The user reference restricts deletion as
// well, so order history survives account cleanup attempts.
type Order struct {
	shared.BaseEntity
	TotalPrice    float64   `validate:"gte=0"`
	DeliveryDate  time.Time `validate:"required"`
	UserID        int64     `validate:"required"`
	TransactionID int64     `validate:"required"`
	Verified      bool
}

// NewOrder creates an unverified order backed by a wallet transaction
func NewOrder(userID, transactionID int64, totalPrice float64, deliveryDate time.Time) (*Order, error) {
	o := &Order{
		BaseEntity:    shared.NewBaseEntity(),
		TotalPrice:    totalPrice,
		DeliveryDate:  deliveryDate,
		UserID:        userID,
		TransactionID: transactionID,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks the order's field rules
func (o *Order) Validate() error {
	return shared.ValidateStruct(o)
}

// Verify marks the order as verified
func (o *Order) Verify() {
	o.Verified = true
	o.Touch()
}

// Reschedule moves the delivery date
func (o *Order) Reschedule(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return shared.NewValidationError("delivery_date", "is required")
	}
	o.DeliveryDate = deliveryDate
	o.Touch()
	return nil
}

// OrderProductVariant is a line item linking an order to a product
// variant. Quantity lives on the variant, so each line is a bare join
// row; lines are removed with their order but keep the variant alive.
type OrderProductVariant struct {
	OrderID   int64 `validate:"required"`
	VariantID int64 `validate:"required"`
}

// NewOrderProductVariant creates a line item for an order
func NewOrderProductVariant(orderID, variantID int64) (*OrderProductVariant, error) {
	line := &OrderProductVariant{OrderID: orderID, VariantID: variantID}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	return line, nil
}

// Validate checks the line item's field rules
func (l *OrderProductVariant) Validate() error {
	return shared.ValidateStruct(l)
}
