package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

type stubAuthService struct {
	signupErr error
	loginErr  error
	resetErr  error

	lastSignup ports.SignupInput
	lastEmail  string
	lastToken  string
}

func (s *stubAuthService) Signup(_ context.Context, input ports.SignupInput) (string, *domain.User, error) {
	s.lastSignup = input
	if s.signupErr != nil {
		return "", nil, s.signupErr
	}
	return "signed.token", &domain.User{ID: "u_1", Name: input.Name, Email: input.Email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "signed.token", &domain.User{ID: "u_1", Email: email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) RequestPasswordReset(_ context.Context, email string) error {
	s.lastEmail = email
	return nil
}

func (s *stubAuthService) ResetPassword(_ context.Context, token, _ string) error {
	s.lastToken = token
	return s.resetErr
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Alice","email":"alice@example.com","password":"longenough","phone":"+1 555 0100"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token == "" || resp.User == nil || resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if svc.lastSignup.Phone != "+1 555 0100" {
		t.Fatalf("phone not forwarded: %+v", svc.lastSignup)
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupErr: domain.ErrUserExists})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Alice","email":"alice@example.com","password":"longenough"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_ValidationError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupErr: domain.ErrValidation})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Bob","email":"bob@example.com","password":"short"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_BadJSON(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/signup", `{"name":`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on malformed JSON, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"longenough"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token != "signed.token" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_ForgotPassword_AlwaysOK(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/forgot-password",
		`{"email":"nobody@example.com"}`)
	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("ForgotPassword returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastEmail != "nobody@example.com" {
		t.Fatalf("email not forwarded: %q", svc.lastEmail)
	}
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{resetErr: domain.ErrInvalidResetToken})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/reset-password",
		`{"token":"deadbeef","password":"newpassword"}`)
	err := h.ResetPassword(c)
	if err == nil {
		t.Fatalf("expected the error to propagate to the central handler")
	}
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/reset-password",
		`{"token":"abc123","password":"newpassword"}`)
	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastToken != "abc123" {
		t.Fatalf("token not forwarded: %q", svc.lastToken)
	}
}
