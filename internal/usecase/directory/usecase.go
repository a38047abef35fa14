package directory

import (
	"context"
	"errors"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/due"
	"tradecredit-backend/internal/domain/profile"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase serves the retailer directory: listings, search, a supplier's
// recently billed retailers, and a per-retailer detail view.
type Usecase struct {
	profiles profile.Repository
	dues     due.Repository
}

func NewUsecase(profiles profile.Repository, dues due.Repository) *Usecase {
	return &Usecase{profiles: profiles, dues: dues}
}

type RetailerDTO struct {
	ProfileID    string `json:"id"`
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	GSTNumber    string `json:"gst_number"`
	Address      string `json:"address"`
}

type RetailerDetailsDTO struct {
	RetailerDTO
	BusinessType    string          `json:"business_type"`
	YearsInBusiness int             `json:"years_in_business"`
	AnnualTurnover  decimal.Decimal `json:"annual_turnover"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	CreditScore     int             `json:"credit_score"`
	TotalDues       decimal.Decimal `json:"total_dues"`
	PaymentHistory  int64           `json:"payment_history"`
}

func (u *Usecase) ListRetailers(ctx context.Context) ([]RetailerDTO, error) {
	profiles, err := u.profiles.ListByRole(ctx, profile.RoleRetailer)
	if err != nil {
		return nil, err
	}
	return toDTOs(profiles), nil
}

func (u *Usecase) SearchRetailers(ctx context.Context, query string) ([]RetailerDTO, error) {
	profiles, err := u.profiles.SearchRetailers(ctx, query)
	if err != nil {
		return nil, err
	}
	return toDTOs(profiles), nil
}

// RecentRetailers lists the distinct retailers behind the caller's latest
// dues, newest first.
func (u *Usecase) RecentRetailers(ctx context.Context, caller *profile.Profile) ([]RetailerDTO, error) {
	if caller.Role != profile.RoleSupplier {
		return nil, apperr.New(apperr.Permission, "only_suppliers_can_list_recent_retailers")
	}
	ids, err := u.dues.RecentRetailerIDs(ctx, caller.ID, 5)
	if err != nil {
		return nil, err
	}
	profiles, err := u.profiles.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	// Preserve recency order; ListByIDs does not guarantee it.
	byID := make(map[uint64]profile.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	out := make([]RetailerDTO, 0, len(ids))
	for _, pid := range ids {
		if p, ok := byID[pid]; ok {
			out = append(out, toDTO(&p))
		}
	}
	return out, nil
}

// RetailerDetails combines the retailer's credit profile with its outstanding
// total and count of settled dues.
func (u *Usecase) RetailerDetails(ctx context.Context, retailerProfileID string) (*RetailerDetailsDTO, error) {
	p, err := u.profiles.GetByProfileID(ctx, retailerProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "retailer_not_found")
		}
		return nil, err
	}
	if p.Role != profile.RoleRetailer {
		return nil, apperr.New(apperr.NotFound, "retailer_not_found")
	}
	rp, err := u.profiles.GetRetailerProfileByProfileRef(ctx, p.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "retailer_profile_not_found")
		}
		return nil, err
	}

	outstanding, err := u.dues.SumByRetailerAndStatuses(ctx, p.ID, []due.Status{due.StatusPending, due.StatusOverdue})
	if err != nil {
		return nil, err
	}
	paid, err := u.dues.CountByRetailerAndStatus(ctx, p.ID, due.StatusPaid)
	if err != nil {
		return nil, err
	}

	return &RetailerDetailsDTO{
		RetailerDTO:     toDTO(p),
		BusinessType:    rp.BusinessType,
		YearsInBusiness: rp.YearsInBusiness,
		AnnualTurnover:  rp.AnnualTurnover,
		CreditLimit:     rp.CreditLimit,
		AvailableCredit: rp.AvailableCredit,
		CreditScore:     rp.CreditScore,
		TotalDues:       outstanding,
		PaymentHistory:  paid,
	}, nil
}

func toDTO(p *profile.Profile) RetailerDTO {
	return RetailerDTO{
		ProfileID:    p.ProfileID,
		BusinessName: p.BusinessName,
		Phone:        p.Phone,
		GSTNumber:    p.GSTNumber,
		Address:      p.Address,
	}
}

func toDTOs(profiles []profile.Profile) []RetailerDTO {
	out := make([]RetailerDTO, 0, len(profiles))
	for i := range profiles {
		out = append(out, toDTO(&profiles[i]))
	}
	return out
}
