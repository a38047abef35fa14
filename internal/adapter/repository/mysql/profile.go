package mysql

import (
	"context"

	profileDomain "tradecredit-backend/internal/domain/profile"

	"gorm.io/gorm"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) Create(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByProfileID(ctx context.Context, profileID string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint64) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) ListByRole(ctx context.Context, role profileDomain.Role) ([]profileDomain.Profile, error) {
	var out []profileDomain.Profile
	res := r.db.WithContext(ctx).Where("role = ?", role).Order("business_name").Find(&out)
	return out, res.Error
}

func (r *ProfileRepository) SearchRetailers(ctx context.Context, query string) ([]profileDomain.Profile, error) {
	var out []profileDomain.Profile
	res := r.db.WithContext(ctx).
		Where("role = ? AND business_name LIKE ?", profileDomain.RoleRetailer, "%"+query+"%").
		Order("business_name").
		Find(&out)
	return out, res.Error
}

func (r *ProfileRepository) ListByIDs(ctx context.Context, ids []uint64) ([]profileDomain.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []profileDomain.Profile
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out)
	return out, res.Error
}

func (r *ProfileRepository) CreateRetailerProfile(ctx context.Context, rp *profileDomain.RetailerProfile) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *ProfileRepository) GetRetailerProfileByProfileRef(ctx context.Context, profileRefID uint64) (*profileDomain.RetailerProfile, error) {
	var out profileDomain.RetailerProfile
	res := r.db.WithContext(ctx).Where("profile_ref_id = ?", profileRefID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) SaveRetailerProfile(ctx context.Context, rp *profileDomain.RetailerProfile) error {
	return r.db.WithContext(ctx).Save(rp).Error
}
