package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
)

func TestCreateConversation_And_Get(t *testing.T) {
	db := newTestDB(t, &domain.Conversation{})

	conv, err := CreateConversation(context.Background(), db, "My conversation")
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	if conv.ID == "" {
		t.Fatal("empty conversation ID")
	}

	got, err := GetConversation(context.Background(), db, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if got.Title != "My conversation" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestGetConversation_NotFound(t *testing.T) {
	db := newTestDB(t, &domain.Conversation{})
	_, err := GetConversation(context.Background(), db, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateConversationTitle(t *testing.T) {
	db := newTestDB(t, &domain.Conversation{})
	conv := seedConversation(t, db)

	if err := UpdateConversationTitle(context.Background(), db, conv.ID, "Renamed"); err != nil {
		t.Fatalf("UpdateConversationTitle: %v", err)
	}
	got, err := GetConversation(context.Background(), db, conv.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", got.Title)
	}

	if err := UpdateConversationTitle(context.Background(), db, "missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id err = %v, want ErrNotFound", err)
	}
}

func TestDeleteConversation(t *testing.T) {
	db := newTestDB(t, &domain.Conversation{})
	conv := seedConversation(t, db)

	if err := DeleteConversation(context.Background(), db, conv.ID); err != nil {
		t.Fatalf("DeleteConversation: %v", err)
	}
	if _, err := GetConversation(context.Background(), db, conv.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("conversation still present after delete: %v", err)
	}
}
