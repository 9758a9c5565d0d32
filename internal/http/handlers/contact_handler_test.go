package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
	"github.com/mkaravas/go-assistant-backend/internal/services"
)

func registerContactRoute(h *Handlers) func(*gin.Engine) {
	return func(r *gin.Engine) {
		r.POST("/contact", h.SubmitContact)
	}
}

func TestSubmitContact_Created(t *testing.T) {
	h := newStubHandlers(stubConvSvc{}, stubReactSvc{}, stubContactSvc{
		submit: func(_ context.Context, name, email, message string) (*domain.ContactMessage, error) {
			if name != "Ada" || email != "ada@example.com" || message != "hello" {
				t.Fatalf("unexpected args: %q %q %q", name, email, message)
			}
			return &domain.ContactMessage{ID: "ct1"}, nil
		},
	})

	w := serve(t, registerContactRoute(h), http.MethodPost, "/contact",
		`{"name":"Ada","email":"ada@example.com","message":"hello"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d: %s", w.Code, w.Body.String())
	}
	var resp ContactResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.ID != "ct1" {
		t.Fatalf("body: %s", w.Body.String())
	}
}

func TestSubmitContact_BindingErrors(t *testing.T) {
	h := newStubHandlers(stubConvSvc{}, stubReactSvc{}, stubContactSvc{
		submit: func(context.Context, string, string, string) (*domain.ContactMessage, error) {
			t.Fatal("service must not be called on a binding error")
			return nil, nil
		},
	})
	bodies := []string{
		`{}`,
		`{"name":"Ada","email":"not-an-email","message":"hi"}`,
		`{"name":"Ada","email":"ada@example.com"}`,
	}
	for _, body := range bodies {
		w := serve(t, registerContactRoute(h), http.MethodPost, "/contact", body, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: code = %d", body, w.Code)
		}
	}
}

func TestSubmitContact_ServiceErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid", services.ErrInvalidContact, http.StatusBadRequest},
		{"too long", services.ErrTooLong, http.StatusBadRequest},
		{"other", errors.New("insert failed"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newStubHandlers(stubConvSvc{}, stubReactSvc{}, stubContactSvc{
				submit: func(context.Context, string, string, string) (*domain.ContactMessage, error) {
					return nil, tc.err
				},
			})
			w := serve(t, registerContactRoute(h), http.MethodPost, "/contact",
				`{"name":"Ada","email":"ada@example.com","message":"hi"}`, nil)
			if w.Code != tc.wantCode {
				t.Fatalf("code = %d, want %d", w.Code, tc.wantCode)
			}
		})
	}
}
