package models

import (
	"time"

	"github.com/bazaar/backend/internal/domain/wallet"
)

// WalletModel is the persistence model for the Wallet domain entity.
type WalletModel struct {
	BaseModel
	UserID  int64   `gorm:"column:user_id;not null;index"`
	Balance float64 `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (WalletModel) TableName() string {
	return "wallets"
}

// ToDomain converts the persistence model to a domain Wallet entity.
func (m *WalletModel) ToDomain() *wallet.Wallet {
	return &wallet.Wallet{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Balance:    m.Balance,
	}
}

// FromDomain populates the persistence model from a domain Wallet entity.
func (m *WalletModel) FromDomain(w *wallet.Wallet) {
	m.FromDomainBaseEntity(w.BaseEntity)
	m.UserID = w.UserID
	m.Balance = w.Balance
}

// WalletTransactionModel is the persistence model for the
// WalletTransaction domain entity. The tx_type and status columns use
// the native transaction_types and transaction_status enum types; the
// table records creation time only.
type WalletTransactionModel struct {
	ID        int64                    `gorm:"primaryKey;autoIncrement"`
	WalletID  int64                    `gorm:"column:wallet_id;not null;index"`
	TxType    wallet.TransactionType   `gorm:"column:tx_type;type:transaction_types;not null"`
	Amount    float64                  `gorm:"not null"`
	Status    wallet.TransactionStatus `gorm:"type:transaction_status;not null;default:'pending'"`
	CreatedAt time.Time                `gorm:"not null"`
}

// TableName returns the table name for GORM
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}

// ToDomain converts the persistence model to a domain WalletTransaction entity.
func (m *WalletTransactionModel) ToDomain() *wallet.WalletTransaction {
	tx := &wallet.WalletTransaction{
		WalletID: m.WalletID,
		TxType:   m.TxType,
		Amount:   m.Amount,
		Status:   m.Status,
	}
	tx.ID = m.ID
	tx.CreatedAt = m.CreatedAt
	tx.UpdatedAt = m.CreatedAt
	return tx
}

// FromDomain populates the persistence model from a domain WalletTransaction entity.
func (m *WalletTransactionModel) FromDomain(tx *wallet.WalletTransaction) {
	m.ID = tx.ID
	m.WalletID = tx.WalletID
	m.TxType = tx.TxType
	m.Amount = tx.Amount
	m.Status = tx.Status
	m.CreatedAt = tx.CreatedAt
}
