package order

import (
	"context"
)

// OrderRepository defines persistence operations for orders and their
// line items. Create stores the order together with its lines in one
// transaction; Delete removes the lines with the order but never the
// referenced variants.
type OrderRepository interface {
	Create(ctx context.Context, order *Order, lines []*OrderProductVariant) error
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindByUser(ctx context.Context, userID int64) ([]*Order, error)
	FindByTransaction(ctx context.Context, transactionID int64) (*Order, error)

	AddLine(ctx context.Context, line *OrderProductVariant) error
	Lines(ctx context.Context, orderID int64) ([]*OrderProductVariant, error)
}
