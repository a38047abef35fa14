package identity

import (
	"context"
	"errors"
	"time"

	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/uow"
	"tradecredit-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// Usecase registers parties and issues session tokens. Registration runs in
// one transaction: the rollback is the compensating cleanup for a partially
// created identity.
type Usecase struct {
	profiles  profile.Repository
	uow       uow.UnitOfWork
	jwtSecret []byte
	log       *logrus.Logger
}

func NewUsecase(profiles profile.Repository, tx uow.UnitOfWork, jwtSecret string, log *logrus.Logger) *Usecase {
	return &Usecase{profiles: profiles, uow: tx, jwtSecret: []byte(jwtSecret), log: log}
}

type RegisterInput struct {
	Role         profile.Role
	Email        string
	Password     string
	ContactName  string
	BusinessName string
	Phone        string
	GSTNumber    string
	Address      string

	// Retailer-only seed attributes.
	BusinessType    string
	YearsInBusiness int
	AnnualTurnover  decimal.Decimal
}

type RegisterFintechInput struct {
	Email              string
	Password           string
	BusinessName       string
	Phone              string
	GSTNumber          string
	Address            string
	RegistrationNumber string
	LicenseNumber      string
	CreditLimit        *decimal.Decimal
	InterestRate       *decimal.Decimal
}

type ProfileDTO struct {
	ProfileID    string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"user_type"`
	BusinessName string `json:"business_name"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*ProfileDTO, error) {
	if !profile.ValidRole(in.Role) {
		return nil, apperr.New(apperr.Validation, "invalid_user_type")
	}
	if in.BusinessName == "" {
		return nil, apperr.New(apperr.Validation, "business_name_required")
	}
	if in.Email == "" || in.Password == "" {
		return nil, apperr.New(apperr.Validation, "email_and_password_required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &profile.Profile{
		ProfileID:    id.NewID32(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		BusinessName: in.BusinessName,
		ContactName:  in.ContactName,
		Phone:        in.Phone,
		GSTNumber:    in.GSTNumber,
		Address:      in.Address,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Profiles.GetByEmail(ctx, in.Email); err == nil {
			return apperr.New(apperr.Conflict, "email_already_registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := r.Profiles.Create(ctx, p); err != nil {
			return err
		}
		if in.Role == profile.RoleRetailer {
			bt := in.BusinessType
			if bt == "" {
				bt = "retail_store"
			}
			rp := &profile.RetailerProfile{
				ProfileRefID:    p.ID,
				BusinessType:    bt,
				YearsInBusiness: in.YearsInBusiness,
				AnnualTurnover:  in.AnnualTurnover,
			}
			if err := r.Profiles.CreateRetailerProfile(ctx, rp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"email": p.Email, "role": p.Role}).Info("party registered")
	return toDTO(p), nil
}

func (u *Usecase) RegisterFintech(ctx context.Context, in RegisterFintechInput) (*ProfileDTO, error) {
	if in.BusinessName == "" {
		return nil, apperr.New(apperr.Validation, "business_name_required")
	}
	if in.Email == "" || in.Password == "" {
		return nil, apperr.New(apperr.Validation, "email_and_password_required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &profile.Profile{
		ProfileID:          id.NewID32(),
		Email:              in.Email,
		PasswordHash:       string(hash),
		Role:               profile.RoleFintech,
		BusinessName:       in.BusinessName,
		Phone:              in.Phone,
		GSTNumber:          in.GSTNumber,
		Address:            in.Address,
		RegistrationNumber: in.RegistrationNumber,
		LicenseNumber:      in.LicenseNumber,
		CreditLimit:        in.CreditLimit,
		InterestRate:       in.InterestRate,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Profiles.GetByEmail(ctx, in.Email); err == nil {
			return apperr.New(apperr.Conflict, "email_already_registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.Profiles.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	u.log.WithField("email", p.Email).Info("fintech registered")
	return toDTO(p), nil
}

// Login verifies credentials and issues an HS256 token whose subject is the
// profile's public id.
func (u *Usecase) Login(ctx context.Context, email, password string) (string, *ProfileDTO, error) {
	p, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.New(apperr.Validation, "invalid_credentials")
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.Validation, "invalid_credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   p.ProfileID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	u.log.WithField("email", p.Email).Info("login")
	return signed, toDTO(p), nil
}

// ParseToken resolves a bearer token back to the profile public id.
func (u *Usecase) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", apperr.New(apperr.Permission, "invalid_token")
	}
	claims := token.Claims.(*jwt.RegisteredClaims)
	return claims.Subject, nil
}

func toDTO(p *profile.Profile) *ProfileDTO {
	return &ProfileDTO{
		ProfileID:    p.ProfileID,
		Email:        p.Email,
		Role:         string(p.Role),
		BusinessName: p.BusinessName,
	}
}
