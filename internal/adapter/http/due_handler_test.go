package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dueDomain "tradecredit-backend/internal/domain/due"
	profileDomain "tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/domain/uow"
	"tradecredit-backend/internal/testutil/duemock"
	"tradecredit-backend/internal/testutil/paymentmock"
	"tradecredit-backend/internal/testutil/profilemock"
	"tradecredit-backend/internal/testutil/uowmock"
	"tradecredit-backend/internal/usecase/ledger"
	paymentuc "tradecredit-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var (
	testSupplier = &profileDomain.Profile{ID: 1, ProfileID: strings.Repeat("a", 32), Role: profileDomain.RoleSupplier, BusinessName: "Mehta Wholesale"}
	testRetailer = &profileDomain.Profile{ID: 2, ProfileID: strings.Repeat("b", 32), Role: profileDomain.RoleRetailer, BusinessName: "Sharma Stores"}
)

// newCallerContext builds an echo context with the caller profile already
// resolved, the way the auth middleware leaves it.
func newCallerContext(e *echo.Echo, req *stdhttp.Request, caller *profileDomain.Profile) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CallerKey, caller)
	return c, rec
}

func dueHandlerWith(dues *duemock.Repo, profiles *profilemock.Repo, payments *paymentmock.Repo) *DueHandler {
	tx := uowmock.Passthrough(uow.Repos{Dues: dues, Payments: payments, Profiles: profiles})
	l := ledger.NewUsecase(dues, profiles, tx)
	p := paymentuc.NewUsecase(tx, testLogger())
	return NewDueHandler(l, p)
}

// -------- tests --------

func TestCreateDue_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := dueHandlerWith(&duemock.Repo{}, &profilemock.Repo{
		GetByProfileIDFn: func(ctx context.Context, profileID string) (*profileDomain.Profile, error) {
			return testRetailer, nil
		},
	}, &paymentmock.Repo{})

	reqBody := map[string]any{
		"retailer":      testRetailer.ProfileID,
		"amount":        1500.50,
		"description":   "monthly stock",
		"purchase_date": "2025-06-01",
		"due_date":      "2025-06-15",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/dues", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newCallerContext(e, req, testSupplier)

	if err := h.CreateDue(c); err != nil {
		t.Fatalf("CreateDue error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var dto ledger.DueDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != string(dueDomain.StatusPending) {
		t.Fatalf("status = %s, want pending", dto.Status)
	}
	if dto.DueDate != "2025-06-15" {
		t.Fatalf("due_date = %s", dto.DueDate)
	}
	if dto.RetailerName != "Sharma Stores" {
		t.Fatalf("retailer_name = %s", dto.RetailerName)
	}
}

func TestCreateDue_RetailerCaller_403(t *testing.T) {
	e := newEchoWithValidator()
	h := dueHandlerWith(&duemock.Repo{}, &profilemock.Repo{}, &paymentmock.Repo{})

	reqBody := map[string]any{
		"retailer":      testRetailer.ProfileID,
		"amount":        100,
		"purchase_date": "2025-06-01",
		"due_date":      "2025-06-15",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/dues", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newCallerContext(e, req, testRetailer)

	if err := h.CreateDue(c); err != nil {
		t.Fatalf("CreateDue error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "only_suppliers_can_create_dues" {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestCreateDue_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := dueHandlerWith(&duemock.Repo{}, &profilemock.Repo{}, &paymentmock.Repo{})

	reqBody := map[string]any{
		"retailer":      "NOT_HEX",
		"amount":        10.123,
		"purchase_date": "01-06-2025",
		"due_date":      "2025-06-15",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/dues", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newCallerContext(e, req, testSupplier)

	if err := h.CreateDue(c); err != nil {
		t.Fatalf("CreateDue error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Error != "validation_failed" {
		t.Fatalf("error = %q", er.Error)
	}
	if !containsFieldMsg(er.Details, "Retailer", "32-char lowercase hex") {
		t.Fatalf("missing hex32 detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "Amount", "at most 2 decimal places") {
		t.Fatalf("missing dec2 detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "PurchaseDate", "date in format") {
		t.Fatalf("missing datetime detail: %+v", er.Details)
	}
}

func TestCreateDue_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := dueHandlerWith(&duemock.Repo{}, &profilemock.Repo{}, &paymentmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/dues", strings.NewReader(`{"retailer":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newCallerContext(e, req, testSupplier)

	if err := h.CreateDue(c); err != nil {
		t.Fatalf("CreateDue error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPay_SuccessThenConflict(t *testing.T) {
	e := newEchoWithValidator()
	entry := &dueDomain.Entry{
		ID: 7, DueID: strings.Repeat("d", 32),
		SupplierID: testSupplier.ID, RetailerID: testRetailer.ID,
		Amount: decimal.NewFromInt(500), Status: dueDomain.StatusPending,
	}
	dues := &duemock.Repo{
		GetByDueIDForUpdateFn: func(ctx context.Context, dueID string) (*dueDomain.Entry, error) {
			return entry, nil
		},
	}
	h := dueHandlerWith(dues, &profilemock.Repo{}, &paymentmock.Repo{})

	pay := func() *httptest.ResponseRecorder {
		reqBody := map[string]any{"amount": 500, "payment_method": "upi"}
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/dues/"+entry.DueID+"/pay", mustJSON(reqBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, rec := newCallerContext(e, req, testRetailer)
		c.SetParamNames("due_id")
		c.SetParamValues(entry.DueID)
		if err := h.Pay(c); err != nil {
			t.Fatalf("Pay error: %v", err)
		}
		return rec
	}

	rec := pay()
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("first pay status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body["message"] != "payment successful" {
		t.Fatalf("message = %v", body["message"])
	}

	// The entry is now paid; a second settlement attempt is rejected.
	rec = pay()
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("second pay status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "already_paid" {
		t.Fatalf("error = %q, want already_paid", er.Error)
	}
}

func TestDeleteDue_NoContent(t *testing.T) {
	e := newEchoWithValidator()
	entry := &dueDomain.Entry{
		ID: 7, DueID: strings.Repeat("d", 32),
		SupplierID: testSupplier.ID, RetailerID: testRetailer.ID,
		Amount: decimal.NewFromInt(500), Status: dueDomain.StatusPending,
	}
	dues := &duemock.Repo{
		GetByDueIDForUpdateFn: func(ctx context.Context, dueID string) (*dueDomain.Entry, error) {
			return entry, nil
		},
	}
	h := dueHandlerWith(dues, &profilemock.Repo{}, &paymentmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodDelete, "/api/dues/"+entry.DueID, nil)
	c, rec := newCallerContext(e, req, testSupplier)
	c.SetParamNames("due_id")
	c.SetParamValues(entry.DueID)

	if err := h.DeleteDue(c); err != nil {
		t.Fatalf("DeleteDue error: %v", err)
	}
	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestGetDue_NotFoundParty(t *testing.T) {
	e := newEchoWithValidator()
	entry := &dueDomain.Entry{
		ID: 7, DueID: strings.Repeat("d", 32),
		SupplierID: testSupplier.ID, RetailerID: testRetailer.ID,
		Amount: decimal.NewFromInt(500), Status: dueDomain.StatusPending,
	}
	dues := &duemock.Repo{
		GetByDueIDFn: func(ctx context.Context, dueID string) (*dueDomain.Entry, error) {
			return entry, nil
		},
	}
	h := dueHandlerWith(dues, &profilemock.Repo{}, &paymentmock.Repo{})

	stranger := &profileDomain.Profile{ID: 42, ProfileID: strings.Repeat("c", 32), Role: profileDomain.RoleRetailer}
	req := httptest.NewRequest(stdhttp.MethodGet, "/api/dues/"+entry.DueID, nil)
	c, rec := newCallerContext(e, req, stranger)
	c.SetParamNames("due_id")
	c.SetParamValues(entry.DueID)

	if err := h.GetDue(c); err != nil {
		t.Fatalf("GetDue error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
