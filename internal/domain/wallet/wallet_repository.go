package wallet

import (
	"context"
)

// WalletRepository defines persistence operations for wallets. Each
// user has at most one wallet; UpdateBalance must apply the movement
// atomically and fail rather than let the balance go negative.
type WalletRepository interface {
	Create(ctx context.Context, wallet *Wallet) error
	FindByID(ctx context.Context, id int64) (*Wallet, error)
	FindByUser(ctx context.Context, userID int64) (*Wallet, error)
	UpdateBalance(ctx context.Context, id int64, delta float64) error
	Delete(ctx context.Context, id int64) error
}

// TransactionRepository defines persistence operations for wallet
// transactions
type TransactionRepository interface {
	Create(ctx context.Context, tx *WalletTransaction) error
	Update(ctx context.Context, tx *WalletTransaction) error
	FindByID(ctx context.Context, id int64) (*WalletTransaction, error)
	FindByWallet(ctx context.Context, walletID int64) ([]*WalletTransaction, error)
}
