package http

import (
	"net/http"

	"tradecredit-backend/internal/usecase/directory"

	"github.com/labstack/echo/v4"
)

type RetailerHandler struct{ uc *directory.Usecase }

func NewRetailerHandler(uc *directory.Usecase) *RetailerHandler {
	return &RetailerHandler{uc: uc}
}

func (h *RetailerHandler) List(c echo.Context) error {
	out, err := h.uc.ListRetailers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RetailerHandler) Search(c echo.Context) error {
	out, err := h.uc.SearchRetailers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RetailerHandler) Recent(c echo.Context) error {
	out, err := h.uc.RecentRetailers(c.Request().Context(), Caller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RetailerHandler) Details(c echo.Context) error {
	out, err := h.uc.RetailerDetails(c.Request().Context(), c.Param("retailer_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
