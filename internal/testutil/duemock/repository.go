package duemock

import (
	"context"
	"time"

	domain "tradecredit-backend/internal/domain/due"

	"github.com/shopspring/decimal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, e *domain.Entry) error
	GetByDueIDFn               func(ctx context.Context, dueID string) (*domain.Entry, error)
	GetByDueIDForUpdateFn      func(ctx context.Context, dueID string) (*domain.Entry, error)
	SaveFn                     func(ctx context.Context, e *domain.Entry) error
	DeleteFn                   func(ctx context.Context, e *domain.Entry) error
	ListBySupplierFn           func(ctx context.Context, supplierID uint64) ([]domain.Entry, error)
	ListByRetailerFn           func(ctx context.Context, retailerID uint64) ([]domain.Entry, error)
	PromoteOverdueFn           func(ctx context.Context, asOf time.Time) (int64, error)
	SumBySupplierAndStatusesFn func(ctx context.Context, supplierID uint64, statuses []domain.Status) (decimal.Decimal, error)
	SumByRetailerAndStatusesFn func(ctx context.Context, retailerID uint64, statuses []domain.Status) (decimal.Decimal, error)
	SumByRetailerDueOnFn       func(ctx context.Context, retailerID uint64, day time.Time) (decimal.Decimal, error)
	CountDistinctRetailersFn   func(ctx context.Context, supplierID uint64) (int64, error)
	CountByRetailerAndStatusFn func(ctx context.Context, retailerID uint64, status domain.Status) (int64, error)
	RecentRetailerIDsFn        func(ctx context.Context, supplierID uint64, limit int) ([]uint64, error)
	MonthlyStatusCountsFn      func(ctx context.Context, supplierID uint64, since time.Time) ([]domain.MonthBucket, error)
	MonthlyDistinctRetailersFn func(ctx context.Context, supplierID uint64, since time.Time) ([]domain.MonthRetailerBucket, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByDueID(ctx context.Context, dueID string) (*domain.Entry, error) {
	if m.GetByDueIDFn != nil {
		return m.GetByDueIDFn(ctx, dueID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDueIDForUpdate(ctx context.Context, dueID string) (*domain.Entry, error) {
	if m.GetByDueIDForUpdateFn != nil {
		return m.GetByDueIDForUpdateFn(ctx, dueID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, e *domain.Entry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, e *domain.Entry) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListBySupplier(ctx context.Context, supplierID uint64) ([]domain.Entry, error) {
	if m.ListBySupplierFn != nil {
		return m.ListBySupplierFn(ctx, supplierID)
	}
	return nil, nil
}

func (m *Repo) ListByRetailer(ctx context.Context, retailerID uint64) ([]domain.Entry, error) {
	if m.ListByRetailerFn != nil {
		return m.ListByRetailerFn(ctx, retailerID)
	}
	return nil, nil
}

func (m *Repo) PromoteOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	if m.PromoteOverdueFn != nil {
		return m.PromoteOverdueFn(ctx, asOf)
	}
	return 0, nil
}

func (m *Repo) SumBySupplierAndStatuses(ctx context.Context, supplierID uint64, statuses []domain.Status) (decimal.Decimal, error) {
	if m.SumBySupplierAndStatusesFn != nil {
		return m.SumBySupplierAndStatusesFn(ctx, supplierID, statuses)
	}
	return decimal.Zero, nil
}

func (m *Repo) SumByRetailerAndStatuses(ctx context.Context, retailerID uint64, statuses []domain.Status) (decimal.Decimal, error) {
	if m.SumByRetailerAndStatusesFn != nil {
		return m.SumByRetailerAndStatusesFn(ctx, retailerID, statuses)
	}
	return decimal.Zero, nil
}

func (m *Repo) SumByRetailerDueOn(ctx context.Context, retailerID uint64, day time.Time) (decimal.Decimal, error) {
	if m.SumByRetailerDueOnFn != nil {
		return m.SumByRetailerDueOnFn(ctx, retailerID, day)
	}
	return decimal.Zero, nil
}

func (m *Repo) CountDistinctRetailers(ctx context.Context, supplierID uint64) (int64, error) {
	if m.CountDistinctRetailersFn != nil {
		return m.CountDistinctRetailersFn(ctx, supplierID)
	}
	return 0, nil
}

func (m *Repo) CountByRetailerAndStatus(ctx context.Context, retailerID uint64, status domain.Status) (int64, error) {
	if m.CountByRetailerAndStatusFn != nil {
		return m.CountByRetailerAndStatusFn(ctx, retailerID, status)
	}
	return 0, nil
}

func (m *Repo) RecentRetailerIDs(ctx context.Context, supplierID uint64, limit int) ([]uint64, error) {
	if m.RecentRetailerIDsFn != nil {
		return m.RecentRetailerIDsFn(ctx, supplierID, limit)
	}
	return nil, nil
}

func (m *Repo) MonthlyStatusCounts(ctx context.Context, supplierID uint64, since time.Time) ([]domain.MonthBucket, error) {
	if m.MonthlyStatusCountsFn != nil {
		return m.MonthlyStatusCountsFn(ctx, supplierID, since)
	}
	return nil, nil
}

func (m *Repo) MonthlyDistinctRetailers(ctx context.Context, supplierID uint64, since time.Time) ([]domain.MonthRetailerBucket, error) {
	if m.MonthlyDistinctRetailersFn != nil {
		return m.MonthlyDistinctRetailersFn(ctx, supplierID, since)
	}
	return nil, nil
}
