package due

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
	StatusPaid    Status = "paid"
)

// Entry is a single supplier-to-retailer invoice awaiting payment.
// Transitions: pending → overdue (promotion sweep, date-driven) and
// pending|overdue → paid (settlement). Paid is terminal.
type Entry struct {
	ID           uint64          `gorm:"primaryKey;column:id"`
	DueID        string          `gorm:"column:due_id;type:char(32);not null;uniqueIndex:ux_due_entries_due_id"`
	SupplierID   uint64          `gorm:"column:supplier_id;not null;index:idx_due_entries_supplier"`
	RetailerID   uint64          `gorm:"column:retailer_id;not null;index:idx_due_entries_retailer"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Description  string          `gorm:"column:description;type:text"`
	PurchaseDate time.Time       `gorm:"column:purchase_date;type:date;not null"`
	DueDate      time.Time       `gorm:"column:due_date;type:date;not null"`
	Status       Status          `gorm:"column:status;type:enum('pending','overdue','paid');default:'pending'"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Entry) TableName() string { return "due_entries" }

// PastDue is the single overdue predicate shared by the promotion sweep and
// every reader. An entry is past due when still pending and its due date is
// strictly before asOf's date.
func PastDue(e *Entry, asOf time.Time) bool {
	return e.Status == StatusPending && e.DueDate.Before(Midnight(asOf))
}

// Midnight truncates t to the start of its UTC day. Due/purchase dates are
// stored as dates; comparisons must happen on day boundaries.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
