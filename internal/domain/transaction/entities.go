package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a completed trade between a supplier and a retailer.
// Independent of the due ledger: used for sales history, not settlement.
type Transaction struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	TransactionID string          `gorm:"column:transaction_id;type:char(32);not null;uniqueIndex:ux_transactions_transaction_id"`
	SupplierID    uint64          `gorm:"column:supplier_id;not null;index:idx_transactions_supplier"`
	RetailerID    uint64          `gorm:"column:retailer_id;not null;index:idx_transactions_retailer"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Description   string          `gorm:"column:description;type:text"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Transaction) TableName() string { return "transactions" }
