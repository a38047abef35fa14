package http

import (
	"net/http"

	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/usecase/identity"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type AuthHandler struct{ uc *identity.Usecase }

func NewAuthHandler(uc *identity.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	UserType     string `json:"user_type"      validate:"required,oneof=retailer supplier fintech"`
	Email        string `json:"email"          validate:"required,email"`
	Password     string `json:"password"       validate:"required,min=8"`
	ContactName  string `json:"contact_name"`
	BusinessName string `json:"business_name"  validate:"required"`
	Phone        string `json:"phone"`
	GSTNumber    string `json:"gst_number"`
	Address      string `json:"address"`

	BusinessType    string  `json:"business_type"`
	YearsInBusiness int     `json:"years_in_business"`
	AnnualTurnover  float64 `json:"annual_turnover"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Register(c.Request().Context(), identity.RegisterInput{
		Role:            profile.Role(req.UserType),
		Email:           req.Email,
		Password:        req.Password,
		ContactName:     req.ContactName,
		BusinessName:    req.BusinessName,
		Phone:           req.Phone,
		GSTNumber:       req.GSTNumber,
		Address:         req.Address,
		BusinessType:    req.BusinessType,
		YearsInBusiness: req.YearsInBusiness,
		AnnualTurnover:  decimal.NewFromFloat(req.AnnualTurnover),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "registration successful", "user": dto})
}

type registerFintechReq struct {
	Email              string   `json:"email"               validate:"required,email"`
	Password           string   `json:"password"            validate:"required,min=8"`
	BusinessName       string   `json:"business_name"       validate:"required"`
	Phone              string   `json:"phone"`
	GSTNumber          string   `json:"gst_number"`
	Address            string   `json:"address"`
	RegistrationNumber string   `json:"registrationNumber"`
	LicenseNumber      string   `json:"licenseNumber"`
	CreditLimit        *float64 `json:"creditLimit"`
	InterestRate       *float64 `json:"interestRate"`
}

func (h *AuthHandler) RegisterFintech(c echo.Context) error {
	var req registerFintechReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ToFieldErrors(err)})
	}
	in := identity.RegisterFintechInput{
		Email:              req.Email,
		Password:           req.Password,
		BusinessName:       req.BusinessName,
		Phone:              req.Phone,
		GSTNumber:          req.GSTNumber,
		Address:            req.Address,
		RegistrationNumber: req.RegistrationNumber,
		LicenseNumber:      req.LicenseNumber,
	}
	if req.CreditLimit != nil {
		d := decimal.NewFromFloat(*req.CreditLimit)
		in.CreditLimit = &d
	}
	if req.InterestRate != nil {
		d := decimal.NewFromFloat(*req.InterestRate)
		in.InterestRate = &d
	}
	dto, err := h.uc.RegisterFintech(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "fintech registration successful", "user": dto})
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ToFieldErrors(err)})
	}
	token, dto, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": dto})
}
