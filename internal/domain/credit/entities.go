package credit

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssessmentStatus string

const (
	AssessmentPending  AssessmentStatus = "pending"
	AssessmentApproved AssessmentStatus = "approved"
	AssessmentRejected AssessmentStatus = "rejected"
)

// BankDetails is the 1:1 bank record for a retailer profile, overwritten on
// each assessment submission.
type BankDetails struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	RetailerRefID uint64    `gorm:"column:retailer_ref_id;not null;uniqueIndex:ux_bank_details_retailer"`
	AccountNumber string    `gorm:"column:account_number;size:30;not null"`
	IFSCCode      string    `gorm:"column:ifsc_code;size:15;not null"`
	BankName      string    `gorm:"column:bank_name;size:100;not null"`
	BankBranch    string    `gorm:"column:bank_branch;size:100"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (BankDetails) TableName() string { return "bank_details" }

// ExistingLoan is a liability declared during assessment. Append-only.
type ExistingLoan struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	RetailerRefID uint64          `gorm:"column:retailer_ref_id;not null;index:idx_existing_loans_retailer"`
	LoanAmount    decimal.Decimal `gorm:"column:loan_amount;type:decimal(12,2);not null"`
	LoanProvider  string          `gorm:"column:loan_provider;size:100;not null"`
	MonthlyEMI    decimal.Decimal `gorm:"column:monthly_emi;type:decimal(12,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (ExistingLoan) TableName() string { return "existing_loans" }

// Assessment is one credit review request. Score, approved limit and final
// status come from a manual review process outside this service; rows start
// pending. "Current" status is the newest row by assessment date.
type Assessment struct {
	ID             uint64           `gorm:"primaryKey;column:id"`
	AssessmentID   string           `gorm:"column:assessment_id;type:char(32);not null;uniqueIndex:ux_credit_assessments_assessment_id"`
	RetailerRefID  uint64           `gorm:"column:retailer_ref_id;not null;index:idx_credit_assessments_retailer"`
	Status         AssessmentStatus `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending'"`
	CreditScore    int              `gorm:"column:credit_score;default:0"`
	ApprovedLimit  decimal.Decimal  `gorm:"column:approved_limit;type:decimal(12,2);default:0"`
	Notes          string           `gorm:"column:notes;type:text"`
	AssessmentDate time.Time        `gorm:"column:assessment_date;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Assessment) TableName() string { return "credit_assessments" }
