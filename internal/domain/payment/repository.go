package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByDueRef(ctx context.Context, dueRefID uint64) ([]Payment, error)
	CountByDueRef(ctx context.Context, dueRefID uint64) (int64, error)
}
