package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
	"github.com/mkaravas/go-assistant-backend/internal/services"
)

func registerConvRoutes(h *Handlers) func(*gin.Engine) {
	return func(r *gin.Engine) {
		r.POST("/conversations", h.CreateConversation)
		r.DELETE("/conversations/:id", h.ClearConversation)
	}
}

func TestCreateConversation_TrimsTitle(t *testing.T) {
	var gotTitle string
	h := newStubHandlers(stubConvSvc{
		start: func(_ context.Context, title string) (*domain.Conversation, error) {
			gotTitle = title
			return &domain.Conversation{ID: "c1", Title: title}, nil
		},
	}, stubReactSvc{}, stubContactSvc{})

	w := serve(t, registerConvRoutes(h), http.MethodPost, "/conversations", `{"title":"  Go talk  "}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d: %s", w.Code, w.Body.String())
	}
	if gotTitle != "Go talk" {
		t.Fatalf("title not trimmed: %q", gotTitle)
	}
	var resp ConversationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Conversation.ID != "c1" {
		t.Fatalf("body: %s", w.Body.String())
	}
}

func TestCreateConversation_EmptyBodyAllowed(t *testing.T) {
	h := newStubHandlers(stubConvSvc{}, stubReactSvc{}, stubContactSvc{})
	w := serve(t, registerConvRoutes(h), http.MethodPost, "/conversations", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("empty body should create, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateConversation_MalformedJSON(t *testing.T) {
	h := newStubHandlers(stubConvSvc{
		start: func(context.Context, string) (*domain.Conversation, error) {
			t.Fatal("service must not be called on a binding error")
			return nil, nil
		},
	}, stubReactSvc{}, stubContactSvc{})
	w := serve(t, registerConvRoutes(h), http.MethodPost, "/conversations", `{"title":`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", w.Code)
	}
}

func TestCreateConversation_ServiceError(t *testing.T) {
	h := newStubHandlers(stubConvSvc{
		start: func(context.Context, string) (*domain.Conversation, error) {
			return nil, errors.New("db down")
		},
	}, stubReactSvc{}, stubContactSvc{})
	w := serve(t, registerConvRoutes(h), http.MethodPost, "/conversations", `{}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", w.Code)
	}
	if er := decodeError(t, w); er.Code != ErrCodeCreateFailed {
		t.Fatalf("code = %q", er.Code)
	}
}

func TestClearConversation_InvalidID(t *testing.T) {
	h := newStubHandlers(stubConvSvc{}, stubReactSvc{}, stubContactSvc{})
	w := serve(t, registerConvRoutes(h), http.MethodDelete, "/conversations/not-a-uuid", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", w.Code)
	}
}

func TestClearConversation_ErrorMappings(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", services.ErrConversationNotFound, http.StatusNotFound},
		{"busy", services.ErrConversationBusy, http.StatusConflict},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newStubHandlers(stubConvSvc{
				clear: func(context.Context, string) (*domain.Conversation, error) { return nil, tc.err },
			}, stubReactSvc{}, stubContactSvc{})
			w := serve(t, registerConvRoutes(h), http.MethodDelete, "/conversations/"+uuid.NewString(), "", nil)
			if w.Code != tc.wantCode {
				t.Fatalf("code = %d, want %d", w.Code, tc.wantCode)
			}
		})
	}
}

func TestClearConversation_ReturnsReplacement(t *testing.T) {
	h := newStubHandlers(stubConvSvc{
		clear: func(context.Context, string) (*domain.Conversation, error) {
			return &domain.Conversation{ID: "replacement"}, nil
		},
	}, stubReactSvc{}, stubContactSvc{})
	w := serve(t, registerConvRoutes(h), http.MethodDelete, "/conversations/"+uuid.NewString(), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var resp ConversationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Conversation.ID != "replacement" {
		t.Fatalf("body: %s", w.Body.String())
	}
}
