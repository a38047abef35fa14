package trade

import (
	"context"
	"errors"
	"time"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/transaction"
	"tradecredit-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const historyLimit = 10

// Usecase exposes the transaction log: completed trades recorded for sales
// history, never touched by settlement.
type Usecase struct {
	transactions transaction.Repository
	profiles     profile.Repository
}

func NewUsecase(transactions transaction.Repository, profiles profile.Repository) *Usecase {
	return &Usecase{transactions: transactions, profiles: profiles}
}

type RecordInput struct {
	RetailerID  string
	Amount      decimal.Decimal
	Description string
}

type TransactionDTO struct {
	TransactionID string          `json:"transaction_id"`
	SupplierName  string          `json:"supplier_name"`
	RetailerName  string          `json:"retailer_name"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Record appends a completed trade to the log.
func (u *Usecase) Record(ctx context.Context, caller *profile.Profile, in RecordInput) (*TransactionDTO, error) {
	if caller.Role != profile.RoleSupplier {
		return nil, apperr.New(apperr.Permission, "only_suppliers_can_record_transactions")
	}
	if !in.Amount.IsPositive() {
		return nil, apperr.New(apperr.Validation, "amount_must_be_positive")
	}
	retailer, err := u.profiles.GetByProfileID(ctx, in.RetailerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Validation, "retailer_not_found")
		}
		return nil, err
	}
	if retailer.Role != profile.RoleRetailer {
		return nil, apperr.New(apperr.Validation, "selected_party_is_not_a_retailer")
	}

	t := &transaction.Transaction{
		TransactionID: id.NewID32(),
		SupplierID:    caller.ID,
		RetailerID:    retailer.ID,
		Amount:        in.Amount,
		Description:   in.Description,
	}
	if err := u.transactions.Create(ctx, t); err != nil {
		return nil, err
	}
	return &TransactionDTO{
		TransactionID: t.TransactionID,
		SupplierName:  caller.BusinessName,
		RetailerName:  retailer.BusinessName,
		Amount:        t.Amount,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}, nil
}

// List returns the caller's side of the log.
func (u *Usecase) List(ctx context.Context, caller *profile.Profile) ([]TransactionDTO, error) {
	return u.list(ctx, caller, 0)
}

// History returns the ten most recent trades for the caller.
func (u *Usecase) History(ctx context.Context, caller *profile.Profile) ([]TransactionDTO, error) {
	return u.list(ctx, caller, historyLimit)
}

func (u *Usecase) list(ctx context.Context, caller *profile.Profile, limit int) ([]TransactionDTO, error) {
	var (
		rows []transaction.Transaction
		err  error
	)
	switch caller.Role {
	case profile.RoleSupplier:
		if limit > 0 {
			rows, err = u.transactions.RecentBySupplier(ctx, caller.ID, limit)
		} else {
			rows, err = u.transactions.ListBySupplier(ctx, caller.ID)
		}
	case profile.RoleRetailer:
		if limit > 0 {
			rows, err = u.transactions.RecentByRetailer(ctx, caller.ID, limit)
		} else {
			rows, err = u.transactions.ListByRetailer(ctx, caller.ID)
		}
	default:
		return nil, apperr.New(apperr.Validation, "invalid_role_for_transactions")
	}
	if err != nil {
		return nil, err
	}

	names, err := u.partyIndex(ctx, rows)
	if err != nil {
		return nil, err
	}
	out := make([]TransactionDTO, 0, len(rows))
	for i := range rows {
		t := &rows[i]
		dto := TransactionDTO{
			TransactionID: t.TransactionID,
			Amount:        t.Amount,
			Description:   t.Description,
			CreatedAt:     t.CreatedAt,
		}
		if p, ok := names[t.SupplierID]; ok {
			dto.SupplierName = p.BusinessName
		}
		if p, ok := names[t.RetailerID]; ok {
			dto.RetailerName = p.BusinessName
		}
		out = append(out, dto)
	}
	return out, nil
}

func (u *Usecase) partyIndex(ctx context.Context, rows []transaction.Transaction) (map[uint64]profile.Profile, error) {
	seen := map[uint64]bool{}
	var ids []uint64
	for i := range rows {
		for _, pid := range []uint64{rows[i].SupplierID, rows[i].RetailerID} {
			if !seen[pid] {
				seen[pid] = true
				ids = append(ids, pid)
			}
		}
	}
	profiles, err := u.profiles.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]profile.Profile, len(profiles))
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}
