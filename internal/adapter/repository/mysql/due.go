package mysql

import (
	"context"
	"time"

	dueDomain "tradecredit-backend/internal/domain/due"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DueRepository struct{ db *gorm.DB }

func NewDueRepository(db *gorm.DB) *DueRepository { return &DueRepository{db: db} }

func (r *DueRepository) Create(ctx context.Context, e *dueDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *DueRepository) GetByDueID(ctx context.Context, dueID string) (*dueDomain.Entry, error) {
	var out dueDomain.Entry
	res := r.db.WithContext(ctx).Where("due_id = ?", dueID).First(&out)
	return &out, res.Error
}

func (r *DueRepository) GetByDueIDForUpdate(ctx context.Context, dueID string) (*dueDomain.Entry, error) {
	q := r.db.WithContext(ctx)
	// sqlite (used by tests) has no row locks.
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out dueDomain.Entry
	res := q.Where("due_id = ?", dueID).First(&out)
	return &out, res.Error
}

func (r *DueRepository) Save(ctx context.Context, e *dueDomain.Entry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *DueRepository) Delete(ctx context.Context, e *dueDomain.Entry) error {
	return r.db.WithContext(ctx).Delete(e).Error
}

func (r *DueRepository) ListBySupplier(ctx context.Context, supplierID uint64) ([]dueDomain.Entry, error) {
	var out []dueDomain.Entry
	res := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DueRepository) ListByRetailer(ctx context.Context, retailerID uint64) ([]dueDomain.Entry, error) {
	var out []dueDomain.Entry
	res := r.db.WithContext(ctx).
		Where("retailer_id = ?", retailerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// PromoteOverdue is the stored-status promotion sweep: the WHERE clause is the
// SQL form of due.PastDue and must stay in lockstep with it.
func (r *DueRepository) PromoteOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dueDomain.Entry{}).
		Where("status = ? AND due_date < ?", dueDomain.StatusPending, dueDomain.Midnight(asOf)).
		Update("status", dueDomain.StatusOverdue)
	return res.RowsAffected, res.Error
}

func (r *DueRepository) SumBySupplierAndStatuses(ctx context.Context, supplierID uint64, statuses []dueDomain.Status) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "supplier_id = ? AND status IN ?", supplierID, statuses)
}

func (r *DueRepository) SumByRetailerAndStatuses(ctx context.Context, retailerID uint64, statuses []dueDomain.Status) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "retailer_id = ? AND status IN ?", retailerID, statuses)
}

func (r *DueRepository) SumByRetailerDueOn(ctx context.Context, retailerID uint64, day time.Time) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "retailer_id = ? AND status = ? AND due_date = ?",
		retailerID, dueDomain.StatusPending, dueDomain.Midnight(day))
}

func (r *DueRepository) sumAmount(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&dueDomain.Entry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where(query, args...).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *DueRepository) CountDistinctRetailers(ctx context.Context, supplierID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&dueDomain.Entry{}).
		Where("supplier_id = ?", supplierID).
		Distinct("retailer_id").
		Count(&n)
	return n, res.Error
}

func (r *DueRepository) CountByRetailerAndStatus(ctx context.Context, retailerID uint64, status dueDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&dueDomain.Entry{}).
		Where("retailer_id = ? AND status = ?", retailerID, status).
		Count(&n)
	return n, res.Error
}

func (r *DueRepository) RecentRetailerIDs(ctx context.Context, supplierID uint64, limit int) ([]uint64, error) {
	var ids []uint64
	res := r.db.WithContext(ctx).
		Model(&dueDomain.Entry{}).
		Where("supplier_id = ?", supplierID).
		Group("retailer_id").
		Order("MAX(id) DESC").
		Limit(limit).
		Pluck("retailer_id", &ids)
	return ids, res.Error
}

// SUBSTR on the timestamp keeps the month/day grouping portable between MySQL
// and the sqlite test database.
func (r *DueRepository) MonthlyStatusCounts(ctx context.Context, supplierID uint64, since time.Time) ([]dueDomain.MonthBucket, error) {
	var out []dueDomain.MonthBucket
	res := r.db.WithContext(ctx).
		Model(&dueDomain.Entry{}).
		Select("SUBSTR(created_at, 1, 7) AS month, "+
			"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS on_time, "+
			"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS late",
			dueDomain.StatusPaid, dueDomain.StatusOverdue).
		Where("supplier_id = ? AND created_at >= ?", supplierID, since).
		Group("SUBSTR(created_at, 1, 7)").
		Order("month").
		Scan(&out)
	return out, res.Error
}

func (r *DueRepository) MonthlyDistinctRetailers(ctx context.Context, supplierID uint64, since time.Time) ([]dueDomain.MonthRetailerBucket, error) {
	var out []dueDomain.MonthRetailerBucket
	res := r.db.WithContext(ctx).
		Model(&dueDomain.Entry{}).
		Select("SUBSTR(created_at, 1, 7) AS month, COUNT(DISTINCT retailer_id) AS count").
		Where("supplier_id = ? AND created_at >= ?", supplierID, since).
		Group("SUBSTR(created_at, 1, 7)").
		Order("month").
		Scan(&out)
	return out, res.Error
}
