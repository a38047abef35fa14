package http

import (
	"net/http"
	"time"

	"tradecredit-backend/internal/usecase/ledger"
	paymentuc "tradecredit-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type DueHandler struct {
	ledger   *ledger.Usecase
	payments *paymentuc.Usecase
}

func NewDueHandler(l *ledger.Usecase, p *paymentuc.Usecase) *DueHandler {
	return &DueHandler{ledger: l, payments: p}
}

const dateLayout = "2006-01-02"

type createDueReq struct {
	Retailer     string  `json:"retailer"      validate:"required,hex32"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	Description  string  `json:"description"`
	PurchaseDate string  `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	DueDate      string  `json:"due_date"      validate:"required,datetime=2006-01-02"`
}

func (h *DueHandler) CreateDue(c echo.Context) error {
	var req createDueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ToFieldErrors(err)})
	}
	purchase, _ := time.Parse(dateLayout, req.PurchaseDate)
	dueDate, _ := time.Parse(dateLayout, req.DueDate)

	dto, err := h.ledger.Create(c.Request().Context(), Caller(c), ledger.CreateDueInput{
		RetailerID:   req.Retailer,
		Amount:       decimal.NewFromFloat(req.Amount),
		Description:  req.Description,
		PurchaseDate: purchase,
		DueDate:      dueDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DueHandler) ListDues(c echo.Context) error {
	dtos, err := h.ledger.List(c.Request().Context(), Caller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *DueHandler) GetDue(c echo.Context) error {
	dto, err := h.ledger.Get(c.Request().Context(), Caller(c), c.Param("due_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateDueReq struct {
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *DueHandler) UpdateDue(c echo.Context) error {
	var req updateDueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ToFieldErrors(err)})
	}
	in := ledger.UpdateDueInput{Description: req.Description}
	if req.Amount != nil {
		d := decimal.NewFromFloat(*req.Amount)
		in.Amount = &d
	}
	if req.DueDate != nil {
		t, _ := time.Parse(dateLayout, *req.DueDate)
		in.DueDate = &t
	}
	dto, err := h.ledger.Update(c.Request().Context(), Caller(c), c.Param("due_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DueHandler) DeleteDue(c echo.Context) error {
	if err := h.ledger.Delete(c.Request().Context(), Caller(c), c.Param("due_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type payReq struct {
	Amount      float64 `json:"amount"         validate:"required,gt=0,dec2"`
	Method      string  `json:"payment_method" validate:"required"`
	ReferenceID string  `json:"reference_id"`
}

func (h *DueHandler) Pay(c echo.Context) error {
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.payments.Pay(c.Request().Context(), Caller(c), c.Param("due_id"), paymentuc.PayInput{
		Amount:      decimal.NewFromFloat(req.Amount),
		Method:      req.Method,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "payment successful", "payment": dto})
}
