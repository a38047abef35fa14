package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DayBucket is one day's transaction volume for supplier analytics.
type DayBucket struct {
	Day    string          `gorm:"column:day"`
	Amount decimal.Decimal `gorm:"column:amount"`
}

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	ListBySupplier(ctx context.Context, supplierID uint64) ([]Transaction, error)
	ListByRetailer(ctx context.Context, retailerID uint64) ([]Transaction, error)
	RecentBySupplier(ctx context.Context, supplierID uint64, limit int) ([]Transaction, error)
	RecentByRetailer(ctx context.Context, retailerID uint64, limit int) ([]Transaction, error)
	SumBySupplierSince(ctx context.Context, supplierID uint64, since time.Time) (decimal.Decimal, error)
	DailyTotalsBySupplier(ctx context.Context, supplierID uint64, since time.Time) ([]DayBucket, error)
}
