package identity

import (
	"context"
)

// UserRepository defines persistence operations for users.
// Delete cascades to wallets, addresses, phone numbers and product
// comments through the schema; it fails when restrict-coupled rows
// (vendor products, orders) still reference the user's data.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
