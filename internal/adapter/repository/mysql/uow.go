package mysql

import (
	"context"

	"tradecredit-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Profiles:     &ProfileRepository{db: tx},
			Dues:         &DueRepository{db: tx},
			Payments:     &PaymentRepository{db: tx},
			Transactions: &TransactionRepository{db: tx},
			Credit:       &CreditRepository{db: tx},
		})
	})
}
