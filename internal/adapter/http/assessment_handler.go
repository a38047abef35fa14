package http

import (
	"net/http"

	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/usecase/assessment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type AssessmentHandler struct{ uc *assessment.Usecase }

func NewAssessmentHandler(uc *assessment.Usecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

type submitAssessmentReq struct {
	BusinessType    string  `json:"businessType"    validate:"required"`
	YearsInBusiness int     `json:"yearsInBusiness" validate:"gte=0"`
	AnnualTurnover  float64 `json:"annualTurnover"  validate:"gte=0"`
	EmployeeCount   int     `json:"employeeCount"   validate:"gte=1"`
	ShopOwnership   string  `json:"shopOwnership"   validate:"required,oneof=owned rented"`
	MonthlyRent     float64 `json:"monthlyRent"     validate:"gte=0"`

	BankAccountNumber string `json:"bankAccountNumber" validate:"required"`
	IFSCCode          string `json:"ifscCode"          validate:"required"`
	BankName          string `json:"bankName"          validate:"required"`
	BankBranch        string `json:"bankBranch"`

	ExistingLoans bool    `json:"existingLoans"`
	LoanAmount    float64 `json:"loanAmount"   validate:"gte=0"`
	LoanProvider  string  `json:"loanProvider"`
	MonthlyEMI    float64 `json:"monthlyEmi"   validate:"gte=0"`
}

func (h *AssessmentHandler) Submit(c echo.Context) error {
	var req submitAssessmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.Submit(c.Request().Context(), Caller(c), assessment.SubmitInput{
		BusinessType:      req.BusinessType,
		YearsInBusiness:   req.YearsInBusiness,
		AnnualTurnover:    decimal.NewFromFloat(req.AnnualTurnover),
		EmployeeCount:     req.EmployeeCount,
		ShopOwnership:     profile.ShopOwnership(req.ShopOwnership),
		MonthlyRent:       decimal.NewFromFloat(req.MonthlyRent),
		BankAccountNumber: req.BankAccountNumber,
		IFSCCode:          req.IFSCCode,
		BankName:          req.BankName,
		BankBranch:        req.BankBranch,
		ExistingLoans:     req.ExistingLoans,
		LoanAmount:        decimal.NewFromFloat(req.LoanAmount),
		LoanProvider:      req.LoanProvider,
		MonthlyEMI:        decimal.NewFromFloat(req.MonthlyEMI),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":       "credit assessment request submitted",
		"assessment_id": out.AssessmentID,
		"status":        out.Status,
	})
}

func (h *AssessmentHandler) Status(c echo.Context) error {
	out, err := h.uc.Status(c.Request().Context(), Caller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
