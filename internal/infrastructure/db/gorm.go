package db

import (
	"time"

	"tradecredit-backend/internal/domain/credit"
	"tradecredit-backend/internal/domain/due"
	"tradecredit-backend/internal/domain/payment"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/transaction"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(mysql.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Info("gorm: connected")
	return db, nil
}

// Migrate creates or updates the relational schema for every ledger entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&profile.Profile{},
		&profile.RetailerProfile{},
		&due.Entry{},
		&payment.Payment{},
		&transaction.Transaction{},
		&credit.BankDetails{},
		&credit.ExistingLoan{},
		&credit.Assessment{},
	)
}
