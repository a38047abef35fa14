package profilemock

import (
	"context"

	domain "tradecredit-backend/internal/domain/profile"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	CreateFn                         func(ctx context.Context, p *domain.Profile) error
	GetByProfileIDFn                 func(ctx context.Context, profileID string) (*domain.Profile, error)
	GetByIDFn                        func(ctx context.Context, id uint64) (*domain.Profile, error)
	GetByEmailFn                     func(ctx context.Context, email string) (*domain.Profile, error)
	ListByRoleFn                     func(ctx context.Context, role domain.Role) ([]domain.Profile, error)
	SearchRetailersFn                func(ctx context.Context, query string) ([]domain.Profile, error)
	ListByIDsFn                      func(ctx context.Context, ids []uint64) ([]domain.Profile, error)
	CreateRetailerProfileFn          func(ctx context.Context, rp *domain.RetailerProfile) error
	GetRetailerProfileByProfileRefFn func(ctx context.Context, profileRefID uint64) (*domain.RetailerProfile, error)
	SaveRetailerProfileFn            func(ctx context.Context, rp *domain.RetailerProfile) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByProfileID(ctx context.Context, profileID string) (*domain.Profile, error) {
	if m.GetByProfileIDFn != nil {
		return m.GetByProfileIDFn(ctx, profileID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Profile, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, nil
}

func (m *Repo) SearchRetailers(ctx context.Context, query string) ([]domain.Profile, error) {
	if m.SearchRetailersFn != nil {
		return m.SearchRetailersFn(ctx, query)
	}
	return nil, nil
}

func (m *Repo) ListByIDs(ctx context.Context, ids []uint64) ([]domain.Profile, error) {
	if m.ListByIDsFn != nil {
		return m.ListByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *Repo) CreateRetailerProfile(ctx context.Context, rp *domain.RetailerProfile) error {
	if m.CreateRetailerProfileFn != nil {
		return m.CreateRetailerProfileFn(ctx, rp)
	}
	return nil
}

func (m *Repo) GetRetailerProfileByProfileRef(ctx context.Context, profileRefID uint64) (*domain.RetailerProfile, error) {
	if m.GetRetailerProfileByProfileRefFn != nil {
		return m.GetRetailerProfileByProfileRefFn(ctx, profileRefID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveRetailerProfile(ctx context.Context, rp *domain.RetailerProfile) error {
	if m.SaveRetailerProfileFn != nil {
		return m.SaveRetailerProfileFn(ctx, rp)
	}
	return nil
}
