package paymentmock

import (
	"context"

	domain "tradecredit-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, p *domain.Payment) error
	ListByDueRefFn  func(ctx context.Context, dueRefID uint64) ([]domain.Payment, error)
	CountByDueRefFn func(ctx context.Context, dueRefID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByDueRef(ctx context.Context, dueRefID uint64) ([]domain.Payment, error) {
	if m.ListByDueRefFn != nil {
		return m.ListByDueRefFn(ctx, dueRefID)
	}
	return nil, nil
}

func (m *Repo) CountByDueRef(ctx context.Context, dueRefID uint64) (int64, error) {
	if m.CountByDueRefFn != nil {
		return m.CountByDueRefFn(ctx, dueRefID)
	}
	return 0, nil
}
