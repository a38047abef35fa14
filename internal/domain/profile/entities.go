package profile

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleRetailer Role = "retailer"
	RoleSupplier Role = "supplier"
	RoleFintech  Role = "fintech"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleRetailer, RoleSupplier, RoleFintech:
		return true
	}
	return false
}

// Profile is one registered party. Role is immutable after creation and
// decides which ledger operations the party may perform.
type Profile struct {
	ID           uint64 `gorm:"primaryKey;column:id"`
	ProfileID    string `gorm:"column:profile_id;type:char(32);not null;uniqueIndex:ux_profiles_profile_id"`
	Email        string `gorm:"column:email;size:255;not null;uniqueIndex:ux_profiles_email"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null"`
	Role         Role   `gorm:"column:role;type:enum('retailer','supplier','fintech');not null"`
	BusinessName string `gorm:"column:business_name;size:255;not null"`
	ContactName  string `gorm:"column:contact_name;size:255"`
	Phone        string `gorm:"column:phone;size:20"`
	GSTNumber    string `gorm:"column:gst_number;size:20"`
	Address      string `gorm:"column:address;type:text"`

	// Fintech licensing attributes, empty for other roles.
	RegistrationNumber string           `gorm:"column:registration_number;size:50"`
	LicenseNumber      string           `gorm:"column:license_number;size:50"`
	CreditLimit        *decimal.Decimal `gorm:"column:credit_limit;type:decimal(12,2)"`
	InterestRate       *decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2)"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string { return "user_profiles" }

type ShopOwnership string

const (
	ShopOwned  ShopOwnership = "owned"
	ShopRented ShopOwnership = "rented"
)

// RetailerProfile is the 1:1 extension of a retailer Profile carrying
// business classification and credit attributes.
type RetailerProfile struct {
	ID              uint64          `gorm:"primaryKey;column:id"`
	ProfileRefID    uint64          `gorm:"column:profile_ref_id;not null;uniqueIndex:ux_retailer_profiles_profile"`
	BusinessType    string          `gorm:"column:business_type;size:50;default:'retail_store'"`
	YearsInBusiness int             `gorm:"column:years_in_business;default:0"`
	AnnualTurnover  decimal.Decimal `gorm:"column:annual_turnover;type:decimal(14,2);default:0"`
	EmployeeCount   int             `gorm:"column:employee_count;default:1"`
	ShopOwnership   ShopOwnership   `gorm:"column:shop_ownership;type:enum('owned','rented');default:'rented'"`
	MonthlyRent     decimal.Decimal `gorm:"column:monthly_rent;type:decimal(12,2);default:0"`
	CreditLimit     decimal.Decimal `gorm:"column:credit_limit;type:decimal(12,2);default:0"`
	AvailableCredit decimal.Decimal `gorm:"column:available_credit;type:decimal(12,2);default:0"`
	CreditScore     int             `gorm:"column:credit_score;default:0"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (RetailerProfile) TableName() string { return "retailer_profiles" }
