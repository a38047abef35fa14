package http

import (
	"net/http"

	"tradecredit-backend/internal/usecase/trade"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct{ uc *trade.Usecase }

func NewTransactionHandler(uc *trade.Usecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func (h *TransactionHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), Caller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) History(c echo.Context) error {
	out, err := h.uc.History(c.Request().Context(), Caller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type recordTransactionReq struct {
	Retailer    string  `json:"retailer"    validate:"required,hex32"`
	Amount      float64 `json:"amount"      validate:"required,gt=0,dec2"`
	Description string  `json:"description"`
}

func (h *TransactionHandler) Record(c echo.Context) error {
	var req recordTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Record(c.Request().Context(), Caller(c), trade.RecordInput{
		RetailerID:  req.Retailer,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
