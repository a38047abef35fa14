package dashboard

import (
	"context"
	"testing"
	"time"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/due"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/transaction"
	"tradecredit-backend/internal/domain/uow"
	"tradecredit-backend/internal/testutil/duemock"
	"tradecredit-backend/internal/testutil/profilemock"
	"tradecredit-backend/internal/testutil/trademock"
	"tradecredit-backend/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
)

var (
	supplier = &profile.Profile{ID: 1, Role: profile.RoleSupplier}
	retailer = &profile.Profile{ID: 2, Role: profile.RoleRetailer}
)

func TestSupplierStats(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	dues := &duemock.Repo{
		SumBySupplierAndStatusesFn: func(ctx context.Context, supplierID uint64, statuses []due.Status) (decimal.Decimal, error) {
			if len(statuses) == 2 {
				return decimal.NewFromInt(1500), nil // pending + overdue
			}
			return decimal.NewFromInt(400), nil // overdue only
		},
		CountDistinctRetailersFn: func(ctx context.Context, supplierID uint64) (int64, error) {
			return 3, nil
		},
	}
	trades := &trademock.Repo{
		SumBySupplierSinceFn: func(ctx context.Context, supplierID uint64, since time.Time) (decimal.Decimal, error) {
			want := today.AddDate(0, 0, -30)
			if !since.Equal(want) {
				t.Fatalf("since=%v, want %v", since, want)
			}
			return decimal.NewFromInt(900), nil
		},
	}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Dues: dues, Transactions: trades})).
		WithClock(func() time.Time { return today })

	got, err := uc.SupplierStats(context.Background(), supplier)
	if err != nil {
		t.Fatalf("SupplierStats err: %v", err)
	}
	if !got.TotalOutstanding.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("totalOutstanding=%s", got.TotalOutstanding)
	}
	if got.ActiveRetailers != 3 {
		t.Fatalf("activeRetailers=%d", got.ActiveRetailers)
	}
	if !got.MonthlySales.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("monthlySales=%s", got.MonthlySales)
	}
	if !got.OverdueAmount.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("overdueAmount=%s", got.OverdueAmount)
	}
}

// A supplier with no ledger activity gets zeros, not errors.
func TestSupplierStats_EmptyLedger(t *testing.T) {
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Dues: &duemock.Repo{}, Transactions: &trademock.Repo{}}))
	got, err := uc.SupplierStats(context.Background(), supplier)
	if err != nil {
		t.Fatalf("SupplierStats err: %v", err)
	}
	if !got.TotalOutstanding.IsZero() || !got.MonthlySales.IsZero() || !got.OverdueAmount.IsZero() || got.ActiveRetailers != 0 {
		t.Fatalf("want all zeros, got %+v", got)
	}
}

func TestSupplierStats_WrongRole(t *testing.T) {
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{}))
	if _, err := uc.SupplierStats(context.Background(), retailer); !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("want Validation, got %v", err)
	}
}

func TestRetailerStats(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	profiles := &profilemock.Repo{
		GetRetailerProfileByProfileRefFn: func(ctx context.Context, profileRefID uint64) (*profile.RetailerProfile, error) {
			return &profile.RetailerProfile{
				ProfileRefID:    retailer.ID,
				CreditLimit:     decimal.NewFromInt(50000),
				AvailableCredit: decimal.NewFromInt(42000),
				CreditScore:     710,
			}, nil
		},
	}
	dues := &duemock.Repo{
		SumByRetailerAndStatusesFn: func(ctx context.Context, retailerID uint64, statuses []due.Status) (decimal.Decimal, error) {
			if len(statuses) == 2 {
				return decimal.NewFromInt(800), nil
			}
			return decimal.NewFromInt(300), nil
		},
		SumByRetailerDueOnFn: func(ctx context.Context, retailerID uint64, day time.Time) (decimal.Decimal, error) {
			if !day.Equal(today) {
				t.Fatalf("day=%v, want %v", day, today)
			}
			return decimal.NewFromInt(200), nil
		},
	}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Dues: dues, Profiles: profiles})).
		WithClock(func() time.Time { return today })

	got, err := uc.RetailerStats(context.Background(), retailer)
	if err != nil {
		t.Fatalf("RetailerStats err: %v", err)
	}
	if !got.TotalDue.Equal(decimal.NewFromInt(800)) || !got.DueToday.Equal(decimal.NewFromInt(200)) || !got.OverdueAmount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("sums: %+v", got)
	}
	if !got.CreditLimit.Equal(decimal.NewFromInt(50000)) || got.CreditScore != 710 {
		t.Fatalf("credit fields: %+v", got)
	}
}

func TestRetailerStats_WrongRole(t *testing.T) {
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{}))
	if _, err := uc.RetailerStats(context.Background(), supplier); !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("want Validation, got %v", err)
	}
}

func TestSupplierAnalytics(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	wantSince := today.AddDate(0, 0, -180)
	dues := &duemock.Repo{
		MonthlyStatusCountsFn: func(ctx context.Context, supplierID uint64, since time.Time) ([]due.MonthBucket, error) {
			if !since.Equal(wantSince) {
				t.Fatalf("since=%v, want %v", since, wantSince)
			}
			return []due.MonthBucket{{Month: "2025-05", OnTime: 4, Late: 1}}, nil
		},
		MonthlyDistinctRetailersFn: func(ctx context.Context, supplierID uint64, since time.Time) ([]due.MonthRetailerBucket, error) {
			return []due.MonthRetailerBucket{{Month: "2025-05", Count: 2}}, nil
		},
	}
	trades := &trademock.Repo{
		DailyTotalsBySupplierFn: func(ctx context.Context, supplierID uint64, since time.Time) ([]transaction.DayBucket, error) {
			return []transaction.DayBucket{{Day: "2025-06-14", Amount: decimal.NewFromInt(250)}}, nil
		},
	}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Dues: dues, Transactions: trades})).
		WithClock(func() time.Time { return today })

	got, err := uc.SupplierAnalytics(context.Background(), supplier)
	if err != nil {
		t.Fatalf("SupplierAnalytics err: %v", err)
	}
	if len(got.Transactions) != 1 || len(got.PaymentTrends) != 1 || len(got.RetailerGrowth) != 1 {
		t.Fatalf("bucket counts: %+v", got)
	}
	if got.PaymentTrends[0].OnTime != 4 || got.PaymentTrends[0].Late != 1 {
		t.Fatalf("paymentTrends: %+v", got.PaymentTrends)
	}
}

func TestSupplierAnalytics_RetailerForbidden(t *testing.T) {
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{}))
	if _, err := uc.SupplierAnalytics(context.Background(), retailer); !apperr.IsKind(err, apperr.Permission) {
		t.Fatalf("want Permission, got %v", err)
	}
}
