package ledger

import (
	"context"
	"errors"
	"time"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/due"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/uow"
	"tradecredit-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase owns the due-entry lifecycle: creation, edits, deletion, listing and
// the overdue promotion sweep.
type Usecase struct {
	dues     due.Repository
	profiles profile.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(dues due.Repository, profiles profile.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{dues: dues, profiles: profiles, uow: tx}
}

type CreateDueInput struct {
	RetailerID   string
	Amount       decimal.Decimal
	Description  string
	PurchaseDate time.Time
	DueDate      time.Time
}

type UpdateDueInput struct {
	Amount      *decimal.Decimal
	Description *string
	DueDate     *time.Time
}

type DueDTO struct {
	DueID        string          `json:"due_id"`
	SupplierID   string          `json:"supplier"`
	RetailerID   string          `json:"retailer"`
	SupplierName string          `json:"supplier_name"`
	RetailerName string          `json:"retailer_name"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	PurchaseDate string          `json:"purchase_date"`
	DueDate      string          `json:"due_date"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

const dateLayout = "2006-01-02"

// canView is the single ownership predicate: each party only ever sees its
// own side of the ledger.
func canView(p *profile.Profile, e *due.Entry) bool {
	return p.ID == e.SupplierID || p.ID == e.RetailerID
}

// ownedBy gates mutations: only the supplier who created the entry.
func ownedBy(p *profile.Profile, e *due.Entry) bool {
	return p.Role == profile.RoleSupplier && p.ID == e.SupplierID
}

func (u *Usecase) Create(ctx context.Context, caller *profile.Profile, in CreateDueInput) (*DueDTO, error) {
	if caller.Role != profile.RoleSupplier {
		return nil, apperr.New(apperr.Permission, "only_suppliers_can_create_dues")
	}
	if !in.Amount.IsPositive() {
		return nil, apperr.New(apperr.Validation, "amount_must_be_positive")
	}
	if in.DueDate.IsZero() || in.PurchaseDate.IsZero() {
		return nil, apperr.New(apperr.Validation, "missing_dates")
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

	e := &due.Entry{
		DueID:        id.NewID32(),
		SupplierID:   caller.ID,
		RetailerID:   retailer.ID,
		Amount:       in.Amount,
		Description:  in.Description,
		PurchaseDate: due.Midnight(in.PurchaseDate),
		DueDate:      due.Midnight(in.DueDate),
		Status:       due.StatusPending,
	}
	if err := u.dues.Create(ctx, e); err != nil {
		return nil, err
	}
	return u.toDTO(e, caller, retailer), nil
}

func (u *Usecase) Get(ctx context.Context, caller *profile.Profile, dueID string) (*DueDTO, error) {
	e, err := u.load(ctx, dueID)
	if err != nil {
		return nil, err
	}
	if !canView(caller, e) {
		return nil, apperr.New(apperr.Permission, "not_a_party_to_this_due")
	}
	return u.hydrate(ctx, e)
}

func (u *Usecase) Update(ctx context.Context, caller *profile.Profile, dueID string, in UpdateDueInput) (*DueDTO, error) {
	e, err := u.load(ctx, dueID)
	if err != nil {
		return nil, err
	}
	if !ownedBy(caller, e) {
		return nil, apperr.New(apperr.Permission, "only_the_owning_supplier_can_update")
	}
	// Partial update: untouched fields keep their values.
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, apperr.New(apperr.Validation, "amount_must_be_positive")
		}
		e.Amount = *in.Amount
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.DueDate != nil {
		e.DueDate = due.Midnight(*in.DueDate)
	}
	if err := u.dues.Save(ctx, e); err != nil {
		return nil, err
	}
	return u.hydrate(ctx, e)
}

// Delete refuses to orphan payments: a due that has been paid against cannot
// be removed.
func (u *Usecase) Delete(ctx context.Context, caller *profile.Profile, dueID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		e, err := r.Dues.GetByDueIDForUpdate(ctx, dueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "due_not_found")
			}
			return err
		}
		if !ownedBy(caller, e) {
			return apperr.New(apperr.Permission, "only_the_owning_supplier_can_delete")
		}
		n, err := r.Payments.CountByDueRef(ctx, e.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.New(apperr.Conflict, "due_has_payments")
		}
		return r.Dues.Delete(ctx, e)
	})
}

func (u *Usecase) List(ctx context.Context, caller *profile.Profile) ([]DueDTO, error) {
	var (
		entries []due.Entry
		err     error
	)
	switch caller.Role {
	case profile.RoleSupplier:
		entries, err = u.dues.ListBySupplier(ctx, caller.ID)
	case profile.RoleRetailer:
		entries, err = u.dues.ListByRetailer(ctx, caller.ID)
	default:
		return nil, apperr.New(apperr.Validation, "invalid_role_for_dues")
	}
	if err != nil {
		return nil, err
	}

	names, err := u.partyIndex(ctx, entries)
	if err != nil {
		return nil, err
	}
	out := make([]DueDTO, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, *u.toDTO(e, names[e.SupplierID], names[e.RetailerID]))
	}
	return out, nil
}

// PromoteOverdue runs the stored-status sweep (pending past due date becomes
// overdue). Invoked at startup and from the cron schedule.
func (u *Usecase) PromoteOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return u.dues.PromoteOverdue(ctx, asOf)
}

func (u *Usecase) load(ctx context.Context, dueID string) (*due.Entry, error) {
	e, err := u.dues.GetByDueID(ctx, dueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "due_not_found")
		}
		return nil, err
	}
	return e, nil
}

func (u *Usecase) hydrate(ctx context.Context, e *due.Entry) (*DueDTO, error) {
	names, err := u.partyIndex(ctx, []due.Entry{*e})
	if err != nil {
		return nil, err
	}
	return u.toDTO(e, names[e.SupplierID], names[e.RetailerID]), nil
}

func (u *Usecase) partyIndex(ctx context.Context, entries []due.Entry) (map[uint64]*profile.Profile, error) {
	seen := map[uint64]bool{}
	var ids []uint64
	for i := range entries {
		for _, pid := range []uint64{entries[i].SupplierID, entries[i].RetailerID} {
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
	out := make(map[uint64]*profile.Profile, len(profiles))
	for i := range profiles {
		out[profiles[i].ID] = &profiles[i]
	}
	return out, nil
}

func (u *Usecase) toDTO(e *due.Entry, supplier, retailer *profile.Profile) *DueDTO {
	dto := &DueDTO{
		DueID:        e.DueID,
		Amount:       e.Amount,
		Description:  e.Description,
		PurchaseDate: e.PurchaseDate.Format(dateLayout),
		DueDate:      e.DueDate.Format(dateLayout),
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
	}
	if supplier != nil {
		dto.SupplierID = supplier.ProfileID
		dto.SupplierName = supplier.BusinessName
	}
	if retailer != nil {
		dto.RetailerID = retailer.ProfileID
		dto.RetailerName = retailer.BusinessName
	}
	return dto
}
