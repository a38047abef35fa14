package profile

import "context"

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByProfileID(ctx context.Context, profileID string) (*Profile, error)
	GetByID(ctx context.Context, id uint64) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	ListByRole(ctx context.Context, role Role) ([]Profile, error)
	SearchRetailers(ctx context.Context, query string) ([]Profile, error)
	ListByIDs(ctx context.Context, ids []uint64) ([]Profile, error)

	CreateRetailerProfile(ctx context.Context, rp *RetailerProfile) error
	GetRetailerProfileByProfileRef(ctx context.Context, profileRefID uint64) (*RetailerProfile, error)
	SaveRetailerProfile(ctx context.Context, rp *RetailerProfile) error
}
