package assessment

import (
	"context"
	"testing"
	"time"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/credit"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/uow"
	"tradecredit-backend/internal/testutil/creditmock"
	"tradecredit-backend/internal/testutil/profilemock"
	"tradecredit-backend/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	retailer = &profile.Profile{ID: 2, Role: profile.RoleRetailer}
	supplier = &profile.Profile{ID: 1, Role: profile.RoleSupplier}
)

func retailerSubProfile() *profile.RetailerProfile {
	return &profile.RetailerProfile{ID: 5, ProfileRefID: retailer.ID, BusinessType: "retail_store"}
}

func validSubmitInput() SubmitInput {
	return SubmitInput{
		BusinessType:      "kirana",
		YearsInBusiness:   6,
		AnnualTurnover:    decimal.NewFromInt(1200000),
		EmployeeCount:     3,
		ShopOwnership:     profile.ShopRented,
		MonthlyRent:       decimal.NewFromInt(15000),
		BankAccountNumber: "123456789012",
		IFSCCode:          "HDFC0001234",
		BankName:          "HDFC Bank",
		BankBranch:        "MG Road",
	}
}

func TestSubmit_CreatesPendingAssessment(t *testing.T) {
	var savedProfile *profile.RetailerProfile
	profiles := &profilemock.Repo{
		GetRetailerProfileByProfileRefFn: func(ctx context.Context, profileRefID uint64) (*profile.RetailerProfile, error) {
			return retailerSubProfile(), nil
		},
		SaveRetailerProfileFn: func(ctx context.Context, rp *profile.RetailerProfile) error {
			savedProfile = rp
			return nil
		},
	}
	var savedBank *credit.BankDetails
	var createdAssessment *credit.Assessment
	loanRows := 0
	cr := &creditmock.Repo{
		GetBankDetailsByRetailerRefFn: func(ctx context.Context, retailerRefID uint64) (*credit.BankDetails, error) {
			return nil, gorm.ErrRecordNotFound
		},
		SaveBankDetailsFn: func(ctx context.Context, b *credit.BankDetails) error {
			savedBank = b
			return nil
		},
		CreateExistingLoanFn: func(ctx context.Context, l *credit.ExistingLoan) error {
			loanRows++
			return nil
		},
		CreateAssessmentFn: func(ctx context.Context, a *credit.Assessment) error {
			createdAssessment = a
			return nil
		},
	}
	uc := NewUsecase(profiles, cr, uowmock.Passthrough(uow.Repos{Profiles: profiles, Credit: cr}))

	in := validSubmitInput()
	in.ExistingLoans = true
	in.LoanAmount = decimal.NewFromInt(200000)
	in.LoanProvider = "Bajaj Finance"
	in.MonthlyEMI = decimal.NewFromInt(8000)

	got, err := uc.Submit(context.Background(), retailer, in)
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if got.Status != string(credit.AssessmentPending) {
		t.Fatalf("status=%s, want pending", got.Status)
	}
	if len(got.AssessmentID) != 32 {
		t.Fatalf("AssessmentID length: %d", len(got.AssessmentID))
	}
	if savedProfile == nil || savedProfile.BusinessType != "kirana" || !savedProfile.MonthlyRent.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("profile patch: %+v", savedProfile)
	}
	if savedBank == nil || savedBank.RetailerRefID != 5 || savedBank.IFSCCode != "HDFC0001234" {
		t.Fatalf("bank upsert: %+v", savedBank)
	}
	if loanRows != 1 {
		t.Fatalf("loan rows=%d, want 1", loanRows)
	}
	if createdAssessment == nil || createdAssessment.RetailerRefID != 5 || createdAssessment.Status != credit.AssessmentPending {
		t.Fatalf("assessment row: %+v", createdAssessment)
	}
}

// Owned premises zero out the declared rent; no loan declaration, no loan row.
func TestSubmit_OwnedShop_NoLoans(t *testing.T) {
	var savedProfile *profile.RetailerProfile
	profiles := &profilemock.Repo{
		GetRetailerProfileByProfileRefFn: func(ctx context.Context, profileRefID uint64) (*profile.RetailerProfile, error) {
			return retailerSubProfile(), nil
		},
		SaveRetailerProfileFn: func(ctx context.Context, rp *profile.RetailerProfile) error {
			savedProfile = rp
			return nil
		},
	}
	cr := &creditmock.Repo{
		GetBankDetailsByRetailerRefFn: func(ctx context.Context, retailerRefID uint64) (*credit.BankDetails, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateExistingLoanFn: func(ctx context.Context, l *credit.ExistingLoan) error {
			t.Fatal("no loan row without a declaration")
			return nil
		},
	}
	uc := NewUsecase(profiles, cr, uowmock.Passthrough(uow.Repos{Profiles: profiles, Credit: cr}))

	in := validSubmitInput()
	in.ShopOwnership = profile.ShopOwned
	if _, err := uc.Submit(context.Background(), retailer, in); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if !savedProfile.MonthlyRent.IsZero() {
		t.Fatalf("rent should be zeroed for owned shop, got %s", savedProfile.MonthlyRent)
	}
}

// Resubmission reuses the existing bank row instead of inserting a second one.
func TestSubmit_BankDetailsUpsert(t *testing.T) {
	existing := &credit.BankDetails{ID: 9, RetailerRefID: 5, AccountNumber: "old", BankName: "Old Bank"}
	profiles := &profilemock.Repo{
		GetRetailerProfileByProfileRefFn: func(ctx context.Context, profileRefID uint64) (*profile.RetailerProfile, error) {
			return retailerSubProfile(), nil
		},
	}
	var savedBank *credit.BankDetails
	cr := &creditmock.Repo{
		GetBankDetailsByRetailerRefFn: func(ctx context.Context, retailerRefID uint64) (*credit.BankDetails, error) {
			return existing, nil
		},
		SaveBankDetailsFn: func(ctx context.Context, b *credit.BankDetails) error {
			savedBank = b
			return nil
		},
	}
	uc := NewUsecase(profiles, cr, uowmock.Passthrough(uow.Repos{Profiles: profiles, Credit: cr}))

	if _, err := uc.Submit(context.Background(), retailer, validSubmitInput()); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if savedBank.ID != 9 {
		t.Fatalf("expected update of existing row, got id=%d", savedBank.ID)
	}
	if savedBank.AccountNumber != "123456789012" {
		t.Fatalf("account not overwritten: %s", savedBank.AccountNumber)
	}
}

func TestSubmit_SupplierForbidden(t *testing.T) {
	uc := NewUsecase(&profilemock.Repo{}, &creditmock.Repo{}, uowmock.Passthrough(uow.Repos{}))
	if _, err := uc.Submit(context.Background(), supplier, validSubmitInput()); !apperr.IsKind(err, apperr.Permission) {
		t.Fatalf("want Permission, got %v", err)
	}
}

func TestStatus_NoneSentinel(t *testing.T) {
	profiles := &profilemock.Repo{
		GetRetailerProfileByProfileRefFn: func(ctx context.Context, profileRefID uint64) (*profile.RetailerProfile, error) {
			return retailerSubProfile(), nil
		},
	}
	cr := &creditmock.Repo{
		LatestAssessmentByRetailerRefFn: func(ctx context.Context, retailerRefID uint64) (*credit.Assessment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(profiles, cr, uowmock.Passthrough(uow.Repos{}))

	got, err := uc.Status(context.Background(), retailer)
	if err != nil {
		t.Fatalf("Status err: %v", err)
	}
	if got.Status != StatusNone {
		t.Fatalf("status=%s, want none", got.Status)
	}
}

func TestStatus_LatestAssessment(t *testing.T) {
	when := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	profiles := &profilemock.Repo{
		GetRetailerProfileByProfileRefFn: func(ctx context.Context, profileRefID uint64) (*profile.RetailerProfile, error) {
			return retailerSubProfile(), nil
		},
	}
	cr := &creditmock.Repo{
		LatestAssessmentByRetailerRefFn: func(ctx context.Context, retailerRefID uint64) (*credit.Assessment, error) {
			return &credit.Assessment{
				Status:         credit.AssessmentApproved,
				CreditScore:    720,
				ApprovedLimit:  decimal.NewFromInt(75000),
				Notes:          "approved after review",
				AssessmentDate: when,
			}, nil
		},
	}
	uc := NewUsecase(profiles, cr, uowmock.Passthrough(uow.Repos{}))

	got, err := uc.Status(context.Background(), retailer)
	if err != nil {
		t.Fatalf("Status err: %v", err)
	}
	if got.Status != string(credit.AssessmentApproved) || got.CreditScore != 720 {
		t.Fatalf("unexpected status dto: %+v", got)
	}
	if got.AssessmentDate == nil || !got.AssessmentDate.Equal(when) {
		t.Fatalf("assessment date: %v", got.AssessmentDate)
	}
}
