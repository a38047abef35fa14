package mysql

import (
	"context"

	creditDomain "tradecredit-backend/internal/domain/credit"

	"gorm.io/gorm"
)

type CreditRepository struct{ db *gorm.DB }

func NewCreditRepository(db *gorm.DB) *CreditRepository { return &CreditRepository{db: db} }

func (r *CreditRepository) GetBankDetailsByRetailerRef(ctx context.Context, retailerRefID uint64) (*creditDomain.BankDetails, error) {
	var out creditDomain.BankDetails
	res := r.db.WithContext(ctx).Where("retailer_ref_id = ?", retailerRefID).First(&out)
	return &out, res.Error
}

func (r *CreditRepository) SaveBankDetails(ctx context.Context, b *creditDomain.BankDetails) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *CreditRepository) CreateExistingLoan(ctx context.Context, l *creditDomain.ExistingLoan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *CreditRepository) ListExistingLoansByRetailerRef(ctx context.Context, retailerRefID uint64) ([]creditDomain.ExistingLoan, error) {
	var out []creditDomain.ExistingLoan
	res := r.db.WithContext(ctx).
		Where("retailer_ref_id = ?", retailerRefID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *CreditRepository) CreateAssessment(ctx context.Context, a *creditDomain.Assessment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *CreditRepository) LatestAssessmentByRetailerRef(ctx context.Context, retailerRefID uint64) (*creditDomain.Assessment, error) {
	var out creditDomain.Assessment
	res := r.db.WithContext(ctx).
		Where("retailer_ref_id = ?", retailerRefID).
		Order("assessment_date DESC, id DESC").
		First(&out)
	return &out, res.Error
}
