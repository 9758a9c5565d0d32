package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
)

func newContactDB(t *testing.T) *ContactService {
	t.Helper()
	db := newSvcDB(t)
	if err := db.AutoMigrate(&domain.ContactMessage{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return &ContactService{DB: db}
}

func TestContactSubmit_Valid(t *testing.T) {
	s := newContactDB(t)

	cm, err := s.Submit(context.Background(), "  Ada Lovelace ", "ada@example.com", " hello ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if cm.Name != "Ada Lovelace" || cm.Message != "hello" {
		t.Fatalf("fields not trimmed: %+v", cm)
	}
	if cm.ID == "" {
		t.Fatal("missing id")
	}
}

func TestContactSubmit_Invalid(t *testing.T) {
	s := newContactDB(t)

	cases := []struct{ name, email, msg string }{
		{"", "a@b.com", "hi"},
		{"Ada", "not-an-email", "hi"},
		{"Ada", "a@b", "hi"},
		{"Ada", "a@b.com", "   "},
	}
	for _, tc := range cases {
		if _, err := s.Submit(context.Background(), tc.name, tc.email, tc.msg); !errors.Is(err, ErrInvalidContact) {
			t.Errorf("Submit(%q,%q,%q) err = %v, want ErrInvalidContact", tc.name, tc.email, tc.msg, err)
		}
	}
}

func TestContactSubmit_TooLong(t *testing.T) {
	s := newContactDB(t)
	s.MessageMaxRunes = 3

	if _, err := s.Submit(context.Background(), "Ada", "a@b.com", "abcd"); !errors.Is(err, ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
}
