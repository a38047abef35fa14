package trademock

import (
	"context"
	"time"

	domain "tradecredit-backend/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, t *domain.Transaction) error
	ListBySupplierFn        func(ctx context.Context, supplierID uint64) ([]domain.Transaction, error)
	ListByRetailerFn        func(ctx context.Context, retailerID uint64) ([]domain.Transaction, error)
	RecentBySupplierFn      func(ctx context.Context, supplierID uint64, limit int) ([]domain.Transaction, error)
	RecentByRetailerFn      func(ctx context.Context, retailerID uint64, limit int) ([]domain.Transaction, error)
	SumBySupplierSinceFn    func(ctx context.Context, supplierID uint64, since time.Time) (decimal.Decimal, error)
	DailyTotalsBySupplierFn func(ctx context.Context, supplierID uint64, since time.Time) ([]domain.DayBucket, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListBySupplier(ctx context.Context, supplierID uint64) ([]domain.Transaction, error) {
	if m.ListBySupplierFn != nil {
		return m.ListBySupplierFn(ctx, supplierID)
	}
	return nil, nil
}

func (m *Repo) ListByRetailer(ctx context.Context, retailerID uint64) ([]domain.Transaction, error) {
	if m.ListByRetailerFn != nil {
		return m.ListByRetailerFn(ctx, retailerID)
	}
	return nil, nil
}

func (m *Repo) RecentBySupplier(ctx context.Context, supplierID uint64, limit int) ([]domain.Transaction, error) {
	if m.RecentBySupplierFn != nil {
		return m.RecentBySupplierFn(ctx, supplierID, limit)
	}
	return nil, nil
}

func (m *Repo) RecentByRetailer(ctx context.Context, retailerID uint64, limit int) ([]domain.Transaction, error) {
	if m.RecentByRetailerFn != nil {
		return m.RecentByRetailerFn(ctx, retailerID, limit)
	}
	return nil, nil
}

func (m *Repo) SumBySupplierSince(ctx context.Context, supplierID uint64, since time.Time) (decimal.Decimal, error) {
	if m.SumBySupplierSinceFn != nil {
		return m.SumBySupplierSinceFn(ctx, supplierID, since)
	}
	return decimal.Zero, nil
}

func (m *Repo) DailyTotalsBySupplier(ctx context.Context, supplierID uint64, since time.Time) ([]domain.DayBucket, error) {
	if m.DailyTotalsBySupplierFn != nil {
		return m.DailyTotalsBySupplierFn(ctx, supplierID, since)
	}
	return nil, nil
}
