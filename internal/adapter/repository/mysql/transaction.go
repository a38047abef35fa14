package mysql

import (
	"context"
	"time"

	txDomain "tradecredit-backend/internal/domain/transaction"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) ListBySupplier(ctx context.Context, supplierID uint64) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListByRetailer(ctx context.Context, retailerID uint64) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("retailer_id = ?", retailerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) RecentBySupplier(ctx context.Context, supplierID uint64, limit int) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) RecentByRetailer(ctx context.Context, retailerID uint64, limit int) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("retailer_id = ?", retailerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) SumBySupplierSince(ctx context.Context, supplierID uint64, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&txDomain.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("supplier_id = ? AND created_at >= ?", supplierID, since).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *TransactionRepository) DailyTotalsBySupplier(ctx context.Context, supplierID uint64, since time.Time) ([]txDomain.DayBucket, error) {
	var out []txDomain.DayBucket
	res := r.db.WithContext(ctx).
		Model(&txDomain.Transaction{}).
		Select("SUBSTR(created_at, 1, 10) AS day, SUM(amount) AS amount").
		Where("supplier_id = ? AND created_at >= ?", supplierID, since).
		Group("SUBSTR(created_at, 1, 10)").
		Order("day").
		Scan(&out)
	return out, res.Error
}
