package wallet

import (
	"fmt"

	"github.com/bazaar/backend/internal/domain/shared"
)

// TransactionType classifies the direction and purpose of a wallet
// movement
type TransactionType string

const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
	TypePurchase TransactionType = "purchase"
	TypeSale     TransactionType = "sale"
)

// TransactionTypes returns all valid transaction types
func TransactionTypes() []TransactionType {
	return []TransactionType{TypeDeposit, TypeWithdraw, TypePurchase, TypeSale}
}

// IsValid reports whether the type is a member of the closed set
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeDeposit, TypeWithdraw, TypePurchase, TypeSale:
		return true
	}
	return false
}

// TransactionStatus tracks the lifecycle of a wallet movement
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusSuccessful TransactionStatus = "successful"
	StatusFailed     TransactionStatus = "failed"
)

// TransactionStatuses returns all valid transaction statuses
func TransactionStatuses() []TransactionStatus {
	return []TransactionStatus{StatusPending, StatusSuccessful, StatusFailed}
}

// IsValid reports whether the status is a member of the closed set
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccessful, StatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccessful || s == StatusFailed
}

// WalletTransaction records a single movement against a wallet. New
// transactions start pending and settle exactly once, to successful or
// failed.
type WalletTransaction struct {
	shared.BaseEntity
	WalletID int64           `validate:"required"`
	Amount   float64         `validate:"gte=0"`
	TxType   TransactionType `validate:"required"`
	Status   TransactionStatus
}

// NewWalletTransaction creates a pending transaction against a wallet
func NewWalletTransaction(walletID int64, amount float64, txType TransactionType) (*WalletTransaction, error) {
	tx := &WalletTransaction{
		BaseEntity: shared.NewBaseEntity(),
		WalletID:   walletID,
		Amount:     amount,
		TxType:     txType,
		Status:     StatusPending,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Validate checks the transaction's field rules and enum membership
func (tx *WalletTransaction) Validate() error {
	if !tx.TxType.IsValid() {
		return shared.NewValidationError("tx_type", fmt.Sprintf("%q is not a valid transaction type", tx.TxType))
	}
	if !tx.Status.IsValid() {
		return shared.NewValidationError("status", fmt.Sprintf("%q is not a valid transaction status", tx.Status))
	}
	return shared.ValidateStruct(tx)
}

// MarkSuccessful settles a pending transaction as successful
func (tx *WalletTransaction) MarkSuccessful() error {
	return tx.settle(StatusSuccessful)
}

// MarkFailed settles a pending transaction as failed
func (tx *WalletTransaction) MarkFailed() error {
	return tx.settle(StatusFailed)
}

func (tx *WalletTransaction) settle(status TransactionStatus) error {
	if tx.Status.IsTerminal() {
		return fmt.Errorf("transaction already settled as %s: %w", tx.Status, shared.ErrInvalidState)
	}
	tx.Status = status
	tx.Touch()
	return nil
}
