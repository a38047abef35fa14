package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusCompleted = "completed"

// Payment is one settlement event against a due entry. Append-only: rows are
// never updated or deleted once written.
type Payment struct {
	ID          uint64          `gorm:"primaryKey;column:id"`
	PaymentID   string          `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id"`
	DueRefID    uint64          `gorm:"column:due_ref_id;not null;index:idx_payments_due"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Method      string          `gorm:"column:payment_method;size:50;not null"`
	Status      string          `gorm:"column:status;size:20;default:'completed'"`
	ReferenceID string          `gorm:"column:reference_id;size:100"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Payment) TableName() string { return "payments" }
