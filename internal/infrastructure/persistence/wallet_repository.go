package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/bazaar/backend/internal/domain/shared"
	"github.com/bazaar/backend/internal/domain/wallet"
	"github.com/bazaar/backend/internal/infrastructure/persistence/models"
)

// GormWalletRepository implements wallet.WalletRepository using GORM
type GormWalletRepository struct {
	db *gorm.DB
}

// NewGormWalletRepository creates a new GormWalletRepository
func NewGormWalletRepository(db *gorm.DB) *GormWalletRepository {
	return &GormWalletRepository{db: db}
}

// Create creates a new wallet
func (r *GormWalletRepository) Create(ctx context.Context, w *wallet.Wallet) error {
	m := &models.WalletModel{}
	m.FromDomain(w)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create wallet", err)
	}
	w.ID = m.ID
	return nil
}

// FindByID finds a wallet by ID
func (r *GormWalletRepository) FindByID(ctx context.Context, id int64) (*wallet.Wallet, error) {
	var m models.WalletModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find wallet", err)
	}
	return m.ToDomain(), nil
}

// FindByUser finds a user's wallet
func (r *GormWalletRepository) FindByUser(ctx context.Context, userID int64) (*wallet.Wallet, error) {
	var m models.WalletModel
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, mapError("find wallet", err)
	}
	return m.ToDomain(), nil
}

// UpdateBalance applies a signed movement to the balance in one
// statement. The WHERE clause enforces the zero floor, so a concurrent
// withdrawal can never drive the balance negative.
func (r *GormWalletRepository) UpdateBalance(ctx context.Context, id int64, delta float64) error {
	result := r.db.WithContext(ctx).
		Model(&models.WalletModel{}).
		Where("id = ? AND balance + ? >= 0", id, delta).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return mapError("update wallet balance", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.WalletModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return mapError("update wallet balance", err)
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrInsufficientBalance
	}
	return nil
}

// Delete deletes a wallet with its transactions
func (r *GormWalletRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_id = ?", id).Delete(&models.WalletTransactionModel{}).Error; err != nil {
			return mapError("delete wallet", err)
		}
		result := tx.Delete(&models.WalletModel{}, "id = ?", id)
		if result.Error != nil {
			return mapError("delete wallet", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// GormTransactionRepository implements wallet.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create creates a new wallet transaction
func (r *GormTransactionRepository) Create(ctx context.Context, tx *wallet.WalletTransaction) error {
	m := &models.WalletTransactionModel{}
	m.FromDomain(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapError("create wallet transaction", err)
	}
	tx.ID = m.ID
	return nil
}

// Update updates a wallet transaction, typically a status settlement
func (r *GormTransactionRepository) Update(ctx context.Context, tx *wallet.WalletTransaction) error {
	m := &models.WalletTransactionModel{}
	m.FromDomain(tx)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return mapError("update wallet transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a wallet transaction by ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id int64) (*wallet.WalletTransaction, error) {
	var m models.WalletTransactionModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError("find wallet transaction", err)
	}
	return m.ToDomain(), nil
}

// FindByWallet returns a wallet's transactions, newest first
func (r *GormTransactionRepository) FindByWallet(ctx context.Context, walletID int64) ([]*wallet.WalletTransaction, error) {
	var ms []models.WalletTransactionModel
	if err := r.db.WithContext(ctx).Where("wallet_id = ?", walletID).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, mapError("list wallet transactions", err)
	}
	txs := make([]*wallet.WalletTransaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, ms[i].ToDomain())
	}
	return txs, nil
}
