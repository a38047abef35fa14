package assessment

import (
	"context"
	"errors"
	"time"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/credit"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/uow"
	"tradecredit-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase captures a retailer's financial profile and produces a pending
// assessment for manual review. No scoring happens here: score, approved
// limit and final status are written by the out-of-band review process.
type Usecase struct {
	profiles profile.Repository
	credit   credit.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(profiles profile.Repository, cr credit.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{profiles: profiles, credit: cr, uow: tx}
}

type SubmitInput struct {
	BusinessType    string
	YearsInBusiness int
	AnnualTurnover  decimal.Decimal
	EmployeeCount   int
	ShopOwnership   profile.ShopOwnership
	MonthlyRent     decimal.Decimal

	BankAccountNumber string
	IFSCCode          string
	BankName          string
	BankBranch        string

	ExistingLoans bool
	LoanAmount    decimal.Decimal
	LoanProvider  string
	MonthlyEMI    decimal.Decimal
}

type SubmitResult struct {
	AssessmentID string `json:"assessment_id"`
	Status       string `json:"status"`
}

type StatusDTO struct {
	Status         string          `json:"status"`
	CreditScore    int             `json:"creditScore,omitempty"`
	CreditLimit    decimal.Decimal `json:"creditLimit,omitempty"`
	Message        string          `json:"message,omitempty"`
	AssessmentDate *time.Time      `json:"assessmentDate,omitempty"`
}

// StatusNone is the sentinel returned when no assessment exists yet.
const StatusNone = "none"

// Submit performs the whole intake as one atomic unit: profile patch, bank
// details upsert, optional loan declaration, new pending assessment row.
func (u *Usecase) Submit(ctx context.Context, caller *profile.Profile, in SubmitInput) (*SubmitResult, error) {
	if caller.Role != profile.RoleRetailer {
		return nil, apperr.New(apperr.Permission, "only_retailers_can_request_assessment")
	}

	var out *SubmitResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rp, err := r.Profiles.GetRetailerProfileByProfileRef(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "retailer_profile_not_found")
			}
			return err
		}

		rp.BusinessType = in.BusinessType
		rp.YearsInBusiness = in.YearsInBusiness
		rp.AnnualTurnover = in.AnnualTurnover
		rp.EmployeeCount = in.EmployeeCount
		rp.ShopOwnership = in.ShopOwnership
		// Rent only applies to rented premises.
		if in.ShopOwnership == profile.ShopRented {
			rp.MonthlyRent = in.MonthlyRent
		} else {
			rp.MonthlyRent = decimal.Zero
		}
		if err := r.Profiles.SaveRetailerProfile(ctx, rp); err != nil {
			return err
		}

		bank, err := r.Credit.GetBankDetailsByRetailerRef(ctx, rp.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			bank = &credit.BankDetails{RetailerRefID: rp.ID}
		}
		bank.AccountNumber = in.BankAccountNumber
		bank.IFSCCode = in.IFSCCode
		bank.BankName = in.BankName
		bank.BankBranch = in.BankBranch
		if err := r.Credit.SaveBankDetails(ctx, bank); err != nil {
			return err
		}

		if in.ExistingLoans {
			loan := &credit.ExistingLoan{
				RetailerRefID: rp.ID,
				LoanAmount:    in.LoanAmount,
				LoanProvider:  in.LoanProvider,
				MonthlyEMI:    in.MonthlyEMI,
			}
			if err := r.Credit.CreateExistingLoan(ctx, loan); err != nil {
				return err
			}
		}

		a := &credit.Assessment{
			AssessmentID:  id.NewID32(),
			RetailerRefID: rp.ID,
			Status:        credit.AssessmentPending,
			Notes:         "credit assessment requested by retailer",
		}
		if err := r.Credit.CreateAssessment(ctx, a); err != nil {
			return err
		}

		out = &SubmitResult{AssessmentID: a.AssessmentID, Status: string(a.Status)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Status returns the most recent assessment, or the "none" sentinel.
func (u *Usecase) Status(ctx context.Context, caller *profile.Profile) (*StatusDTO, error) {
	if caller.Role != profile.RoleRetailer {
		return nil, apperr.New(apperr.Permission, "only_retailers_can_view_assessment_status")
	}
	rp, err := u.profiles.GetRetailerProfileByProfileRef(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "retailer_profile_not_found")
		}
		return nil, err
	}
	latest, err := u.credit.LatestAssessmentByRetailerRef(ctx, rp.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &StatusDTO{Status: StatusNone, Message: "no credit assessment found"}, nil
		}
		return nil, err
	}
	at := latest.AssessmentDate
	return &StatusDTO{
		Status:         string(latest.Status),
		CreditScore:    latest.CreditScore,
		CreditLimit:    latest.ApprovedLimit,
		Message:        latest.Notes,
		AssessmentDate: &at,
	}, nil
}
