package payment

import (
	"context"
	"errors"
	"time"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/due"
	"tradecredit-backend/internal/domain/payment"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/uow"
	"tradecredit-backend/pkg/id"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Usecase records settlements: one payment row plus the due's status flip,
// committed together or not at all.
type Usecase struct {
	uow uow.UnitOfWork
	log *logrus.Logger
}

func NewUsecase(tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	return &Usecase{uow: tx, log: log}
}

type PayInput struct {
	Amount      decimal.Decimal
	Method      string
	ReferenceID string
}

type PaymentDTO struct {
	PaymentID   string          `json:"payment_id"`
	DueID       string          `json:"due_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"payment_method"`
	Status      string          `json:"status"`
	ReferenceID string          `json:"reference_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Pay settles a due. The paid amount is not reconciled against the due's
// amount: a partial payment still settles the entry in full.
func (u *Usecase) Pay(ctx context.Context, caller *profile.Profile, dueID string, in PayInput) (*PaymentDTO, error) {
	if !in.Amount.IsPositive() {
		return nil, apperr.New(apperr.Validation, "amount_must_be_positive")
	}
	if in.Method == "" {
		return nil, apperr.New(apperr.Validation, "missing_payment_method")
	}

	var dto *PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		e, err := r.Dues.GetByDueIDForUpdate(ctx, dueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "due_not_found")
			}
			return err
		}
		if caller.ID != e.RetailerID {
			return apperr.New(apperr.Permission, "only_the_due_retailer_can_pay")
		}
		if e.Status == due.StatusPaid {
			return apperr.New(apperr.Conflict, "already_paid")
		}

		p := &payment.Payment{
			PaymentID:   id.NewID32(),
			DueRefID:    e.ID,
			Amount:      in.Amount,
			Method:      in.Method,
			Status:      payment.StatusCompleted,
			ReferenceID: in.ReferenceID,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		e.Status = due.StatusPaid
		if err := r.Dues.Save(ctx, e); err != nil {
			return err
		}

		dto = &PaymentDTO{
			PaymentID:   p.PaymentID,
			DueID:       e.DueID,
			Amount:      p.Amount,
			Method:      p.Method,
			Status:      p.Status,
			ReferenceID: p.ReferenceID,
			CreatedAt:   p.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"due_id": dto.DueID,
		"amount": dto.Amount.String(),
		"method": dto.Method,
	}).Info("payment recorded")
	return dto, nil
}
