package uow

import (
	"context"

	"tradecredit-backend/internal/domain/credit"
	"tradecredit-backend/internal/domain/due"
	"tradecredit-backend/internal/domain/payment"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/transaction"
)

// Repos bundles every repository bound to the same transaction.
type Repos struct {
	Profiles     profile.Repository
	Dues         due.Repository
	Payments     payment.Repository
	Transactions transaction.Repository
	Credit       credit.Repository
}

// UnitOfWork runs fn atomically: every write through r commits together or not
// at all. Dashboard reads also run through it so each stat group observes one
// snapshot.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
