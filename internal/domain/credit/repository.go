package credit

import "context"

type Repository interface {
	GetBankDetailsByRetailerRef(ctx context.Context, retailerRefID uint64) (*BankDetails, error)
	SaveBankDetails(ctx context.Context, b *BankDetails) error

	CreateExistingLoan(ctx context.Context, l *ExistingLoan) error
	ListExistingLoansByRetailerRef(ctx context.Context, retailerRefID uint64) ([]ExistingLoan, error)

	CreateAssessment(ctx context.Context, a *Assessment) error
	LatestAssessmentByRetailerRef(ctx context.Context, retailerRefID uint64) (*Assessment, error)
}
