package dashboard

import (
	"context"
	"errors"
	"time"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/due"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/transaction"
	"tradecredit-backend/internal/domain/uow"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase computes role-specific rollups from the due ledger and transaction
// log. Each stat group runs inside one transaction so its sums come from a
// single snapshot.
type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx, now: time.Now}
}

// WithClock overrides the time source, for tests that pin "today".
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type SupplierStats struct {
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	ActiveRetailers  int64           `json:"activeRetailers"`
	MonthlySales     decimal.Decimal `json:"monthlySales"`
	OverdueAmount    decimal.Decimal `json:"overdueAmount"`
}

type RetailerStats struct {
	TotalDue        decimal.Decimal `json:"totalDue"`
	DueToday        decimal.Decimal `json:"dueToday"`
	OverdueAmount   decimal.Decimal `json:"overdueAmount"`
	CreditLimit     decimal.Decimal `json:"creditLimit"`
	AvailableCredit decimal.Decimal `json:"availableCredit"`
	CreditScore     int             `json:"creditScore"`
}

type Analytics struct {
	Transactions   []transaction.DayBucket   `json:"transactions"`
	PaymentTrends  []due.MonthBucket         `json:"paymentTrends"`
	RetailerGrowth []due.MonthRetailerBucket `json:"retailerGrowth"`
}

var outstanding = []due.Status{due.StatusPending, due.StatusOverdue}

func (u *Usecase) SupplierStats(ctx context.Context, caller *profile.Profile) (*SupplierStats, error) {
	if caller.Role != profile.RoleSupplier {
		return nil, apperr.New(apperr.Validation, "invalid_role_for_supplier_stats")
	}
	out := &SupplierStats{}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if out.TotalOutstanding, err = r.Dues.SumBySupplierAndStatuses(ctx, caller.ID, outstanding); err != nil {
			return err
		}
		if out.ActiveRetailers, err = r.Dues.CountDistinctRetailers(ctx, caller.ID); err != nil {
			return err
		}
		since := u.now().AddDate(0, 0, -30)
		if out.MonthlySales, err = r.Transactions.SumBySupplierSince(ctx, caller.ID, since); err != nil {
			return err
		}
		out.OverdueAmount, err = r.Dues.SumBySupplierAndStatuses(ctx, caller.ID, []due.Status{due.StatusOverdue})
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) RetailerStats(ctx context.Context, caller *profile.Profile) (*RetailerStats, error) {
	if caller.Role != profile.RoleRetailer {
		return nil, apperr.New(apperr.Validation, "invalid_role_for_retailer_stats")
	}
	out := &RetailerStats{}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rp, err := r.Profiles.GetRetailerProfileByProfileRef(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "retailer_profile_not_found")
			}
			return err
		}
		out.CreditLimit = rp.CreditLimit
		out.AvailableCredit = rp.AvailableCredit
		out.CreditScore = rp.CreditScore

		if out.TotalDue, err = r.Dues.SumByRetailerAndStatuses(ctx, caller.ID, outstanding); err != nil {
			return err
		}
		if out.DueToday, err = r.Dues.SumByRetailerDueOn(ctx, caller.ID, u.now()); err != nil {
			return err
		}
		out.OverdueAmount, err = r.Dues.SumByRetailerAndStatuses(ctx, caller.ID, []due.Status{due.StatusOverdue})
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SupplierAnalytics buckets the trailing 180 days: daily transaction volume,
// monthly paid/overdue due counts, monthly distinct retailers billed.
func (u *Usecase) SupplierAnalytics(ctx context.Context, caller *profile.Profile) (*Analytics, error) {
	if caller.Role != profile.RoleSupplier {
		return nil, apperr.New(apperr.Permission, "only_suppliers_can_view_analytics")
	}
	since := u.now().AddDate(0, 0, -180)
	out := &Analytics{}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if out.Transactions, err = r.Transactions.DailyTotalsBySupplier(ctx, caller.ID, since); err != nil {
			return err
		}
		if out.PaymentTrends, err = r.Dues.MonthlyStatusCounts(ctx, caller.ID, since); err != nil {
			return err
		}
		out.RetailerGrowth, err = r.Dues.MonthlyDistinctRetailers(ctx, caller.ID, since)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
