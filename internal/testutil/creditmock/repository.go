package creditmock

import (
	"context"

	domain "tradecredit-backend/internal/domain/credit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetBankDetailsByRetailerRefFn    func(ctx context.Context, retailerRefID uint64) (*domain.BankDetails, error)
	SaveBankDetailsFn                func(ctx context.Context, b *domain.BankDetails) error
	CreateExistingLoanFn             func(ctx context.Context, l *domain.ExistingLoan) error
	ListExistingLoansByRetailerRefFn func(ctx context.Context, retailerRefID uint64) ([]domain.ExistingLoan, error)
	CreateAssessmentFn               func(ctx context.Context, a *domain.Assessment) error
	LatestAssessmentByRetailerRefFn  func(ctx context.Context, retailerRefID uint64) (*domain.Assessment, error)
}

func (m *Repo) GetBankDetailsByRetailerRef(ctx context.Context, retailerRefID uint64) (*domain.BankDetails, error) {
	if m.GetBankDetailsByRetailerRefFn != nil {
		return m.GetBankDetailsByRetailerRefFn(ctx, retailerRefID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveBankDetails(ctx context.Context, b *domain.BankDetails) error {
	if m.SaveBankDetailsFn != nil {
		return m.SaveBankDetailsFn(ctx, b)
	}
	return nil
}

func (m *Repo) CreateExistingLoan(ctx context.Context, l *domain.ExistingLoan) error {
	if m.CreateExistingLoanFn != nil {
		return m.CreateExistingLoanFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListExistingLoansByRetailerRef(ctx context.Context, retailerRefID uint64) ([]domain.ExistingLoan, error) {
	if m.ListExistingLoansByRetailerRefFn != nil {
		return m.ListExistingLoansByRetailerRefFn(ctx, retailerRefID)
	}
	return nil, nil
}

func (m *Repo) CreateAssessment(ctx context.Context, a *domain.Assessment) error {
	if m.CreateAssessmentFn != nil {
		return m.CreateAssessmentFn(ctx, a)
	}
	return nil
}

func (m *Repo) LatestAssessmentByRetailerRef(ctx context.Context, retailerRefID uint64) (*domain.Assessment, error) {
	if m.LatestAssessmentByRetailerRefFn != nil {
		return m.LatestAssessmentByRetailerRefFn(ctx, retailerRefID)
	}
	return nil, context.Canceled
}
