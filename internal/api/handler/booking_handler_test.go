package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

type stubBookingService struct {
	createErr error
	updateErr error

	lastCreate ports.CreateBookingInput
	lastID     string
	lastStatus domain.BookingStatus
}

func (s *stubBookingService) Create(_ context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	s.lastCreate = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Booking{
		ID:      "bk_1",
		UserID:  input.OwnerID,
		Name:    input.Name,
		Email:   input.Email,
		Service: input.Service,
		Status:  domain.StatusPending,
		Date:    input.Date,
	}, nil
}

func (s *stubBookingService) ListAll(_ context.Context) ([]*domain.BookingWithOwner, error) {
	return []*domain.BookingWithOwner{
		{Booking: domain.Booking{ID: "bk_1", Status: domain.StatusPending}, OwnerName: "Alice", OwnerEmail: "alice@example.com"},
	}, nil
}

func (s *stubBookingService) ListForOwner(_ context.Context, ownerID string) ([]*domain.Booking, error) {
	return []*domain.Booking{{ID: "bk_1", UserID: ownerID, Status: domain.StatusPending}}, nil
}

func (s *stubBookingService) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	s.lastID, s.lastStatus = id, status
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &domain.Booking{ID: id, Status: status}, nil
}

func newBookingContext(t *testing.T, method, path, body string, claims bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims {
		c.Set("user_id", "u_1")
		c.Set("role", "user")
	}
	return c, rec
}

const validBookingJSON = `{
	"name": "Alice",
	"email": "alice@example.com",
	"phone": "+1 555 0100",
	"service": "Career Counselling",
	"date": "2026-09-15",
	"time_slot": "10:00 - 11:00",
	"notes": "first session"
}`

func TestBookingHandler_Create_Success(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc)

	c, rec := newBookingContext(t, http.MethodPost, "/bookings", validBookingJSON, true)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastCreate.OwnerID != "u_1" {
		t.Fatalf("owner must come from the session, got %q", svc.lastCreate.OwnerID)
	}
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if !svc.lastCreate.Date.Equal(want) {
		t.Fatalf("date parsed wrong: %v", svc.lastCreate.Date)
	}

	var resp bookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Booking == nil || resp.Booking.Status != domain.StatusPending {
		t.Fatalf("unexpected booking: %+v", resp.Booking)
	}
}

func TestBookingHandler_Create_OwnerInPayloadIgnored(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc)

	body := strings.Replace(validBookingJSON, `"name"`, `"user_id": "someone-else", "name"`, 1)
	c, _ := newBookingContext(t, http.MethodPost, "/bookings", body, true)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if svc.lastCreate.OwnerID != "u_1" {
		t.Fatalf("payload user_id must be ignored, got %q", svc.lastCreate.OwnerID)
	}
}

func TestBookingHandler_Create_NoClaims(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, _ := newBookingContext(t, http.MethodPost, "/bookings", validBookingJSON, false)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBookingHandler_Create_UnknownService(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	body := strings.Replace(validBookingJSON, "Career Counselling", "Dog Walking", 1)
	c, _ := newBookingContext(t, http.MethodPost, "/bookings", body, true)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_Create_BadDate(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	body := strings.Replace(validBookingJSON, "2026-09-15", "15/09/2026", 1)
	c, _ := newBookingContext(t, http.MethodPost, "/bookings", body, true)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_Create_RFC3339DateAccepted(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc)

	body := strings.Replace(validBookingJSON, "2026-09-15", "2026-09-15T10:00:00Z", 1)
	c, rec := newBookingContext(t, http.MethodPost, "/bookings", body, true)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBookingHandler_ListAll(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, rec := newBookingContext(t, http.MethodGet, "/bookings", "", true)
	if err := h.ListAll(c); err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listBookingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 1 || len(resp.Bookings) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Bookings[0].OwnerEmail != "alice@example.com" {
		t.Fatalf("owner join missing: %+v", resp.Bookings[0])
	}
}

func TestBookingHandler_ListMine(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, rec := newBookingContext(t, http.MethodGet, "/bookings/user/my-bookings", "", true)
	if err := h.ListMine(c); err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}

	var resp listOwnBookingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 1 || resp.Bookings[0].UserID != "u_1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestBookingHandler_UpdateStatus_Success(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc)

	c, rec := newBookingContext(t, http.MethodPatch, "/bookings/bk_1", `{"status":"confirmed"}`, true)
	c.SetParamNames("id")
	c.SetParamValues("bk_1")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastID != "bk_1" || svc.lastStatus != domain.StatusConfirmed {
		t.Fatalf("service called with %q/%q", svc.lastID, svc.lastStatus)
	}
}

func TestBookingHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, _ := newBookingContext(t, http.MethodPatch, "/bookings/bk_1", `{"status":"shipped"}`, true)
	c.SetParamNames("id")
	c.SetParamValues("bk_1")
	err := h.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_UpdateStatus_ServiceErrorPropagates(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{updateErr: domain.ErrBookingNotFound})

	c, _ := newBookingContext(t, http.MethodPatch, "/bookings/missing", `{"status":"confirmed"}`, true)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.UpdateStatus(c); err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound to propagate, got %v", err)
	}
}
