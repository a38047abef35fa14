package due

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthBucket is one month's worth of due counts for supplier analytics.
type MonthBucket struct {
	Month  string `gorm:"column:month"`
	OnTime int64  `gorm:"column:on_time"`
	Late   int64  `gorm:"column:late"`
}

// MonthRetailerBucket counts distinct retailers billed per month.
type MonthRetailerBucket struct {
	Month string `gorm:"column:month"`
	Count int64  `gorm:"column:count"`
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByDueID(ctx context.Context, dueID string) (*Entry, error)
	// GetByDueIDForUpdate locks the row for the remainder of the tx.
	GetByDueIDForUpdate(ctx context.Context, dueID string) (*Entry, error)
	Save(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, e *Entry) error
	ListBySupplier(ctx context.Context, supplierID uint64) ([]Entry, error)
	ListByRetailer(ctx context.Context, retailerID uint64) ([]Entry, error)

	// PromoteOverdue flips pending entries whose due date precedes asOf's day
	// to overdue, returning how many rows changed.
	PromoteOverdue(ctx context.Context, asOf time.Time) (int64, error)

	SumBySupplierAndStatuses(ctx context.Context, supplierID uint64, statuses []Status) (decimal.Decimal, error)
	SumByRetailerAndStatuses(ctx context.Context, retailerID uint64, statuses []Status) (decimal.Decimal, error)
	SumByRetailerDueOn(ctx context.Context, retailerID uint64, day time.Time) (decimal.Decimal, error)
	CountDistinctRetailers(ctx context.Context, supplierID uint64) (int64, error)
	CountByRetailerAndStatus(ctx context.Context, retailerID uint64, status Status) (int64, error)
	RecentRetailerIDs(ctx context.Context, supplierID uint64, limit int) ([]uint64, error)
	MonthlyStatusCounts(ctx context.Context, supplierID uint64, since time.Time) ([]MonthBucket, error)
	MonthlyDistinctRetailers(ctx context.Context, supplierID uint64, since time.Time) ([]MonthRetailerBucket, error)
}
