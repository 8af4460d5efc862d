package wallet

import (
	"github.com/bazaar/backend/internal/domain/shared"
)

// Wallet holds a user's spendable balance. Every user gets exactly one
// wallet and the balance never goes below zero.
type Wallet struct {
	shared.BaseEntity
	UserID  int64   `validate:"required"`
	Balance float64 `validate:"gte=0"`
}

// NewWallet creates an empty wallet for a user
func NewWallet(userID int64) (*Wallet, error) {
	w := &Wallet{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks the wallet's field rules
func (w *Wallet) Validate() error {
	return shared.ValidateStruct(w)
}

// Deposit adds funds to the wallet
func (w *Wallet) Deposit(amount float64) error {
	if amount <= 0 {
		return shared.NewValidationError("amount", "must be greater than zero")
	}
	w.Balance += amount
	w.Touch()
	return nil
}

// Withdraw removes funds from the wallet, failing when the balance
// would go negative.
func (w *Wallet) Withdraw(amount float64) error {
	if amount <= 0 {
		return shared.NewValidationError("amount", "must be greater than zero")
	}
	if amount > w.Balance {
		return shared.ErrInsufficientBalance
	}
	w.Balance -= amount
	w.Touch()
	return nil
}
