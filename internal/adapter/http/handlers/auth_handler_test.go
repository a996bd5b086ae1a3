package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkmaster/internal/adapter/http/handlers/mocks"
	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc, nil)
	r := newRouter()
	r.POST("/v1/auth/login", h.Login)

	t.Run("invalid email", func(t *testing.T) {
		uc.EXPECT().Login(gomock.Any(), "nope").Return(entities.Session{}, "", usecase.ErrInvalidEmail)
		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"nope"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_EMAIL" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		if w := perform(r, http.MethodPost, "/v1/auth/login", `{`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("token issued", func(t *testing.T) {
		s := entities.Session{Email: "ana@frota.com", Name: "ana", Authenticated: true, ExpiresAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
		uc.EXPECT().Login(gomock.Any(), "ana@frota.com").Return(s, "tok", nil)
		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@frota.com"}`)
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["token"] != "tok" || body["name"] != "ana" || body["authenticated"] != true {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}

func TestAuthHandler_Session(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc, nil)
	r := newRouter()
	r.GET("/v1/auth/session", h.Session)

	t.Run("invalid token reads as signed out", func(t *testing.T) {
		uc.EXPECT().Verify("bad").Return(entities.Session{}, usecase.ErrInvalidSession)
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || decodeBody(t, w)["authenticated"] != false {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("no header", func(t *testing.T) {
		uc.EXPECT().Verify("").Return(entities.DevSession(), nil)
		w := perform(r, http.MethodGet, "/v1/auth/session", "")
		body := decodeBody(t, w)
		if body["authenticated"] != true || body["name"] != "dev" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
		if _, ok := body["token"]; ok {
			t.Fatal("session must not echo a token")
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(nil, nil)
	r := newRouter()
	r.POST("/v1/auth/logout", h.Logout)
	if w := perform(r, http.MethodPost, "/v1/auth/logout", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
