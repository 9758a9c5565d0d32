// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the SubmitReceipt
// model used to implement safe-retry semantics for the submit endpoint.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
)

// ErrDuplicate indicates that a submit receipt already exists for the
// given (conversation_id, key) tuple.
var ErrDuplicate = errors.New("duplicate")

// GetSubmitReceipt returns a non-expired receipt or ErrNotFound.
func GetSubmitReceipt(ctx context.Context, db *gorm.DB, conversationID, key string, now time.Time) (*domain.SubmitReceipt, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, ErrNotFound
	}
	var rec domain.SubmitReceipt
	err := db.WithContext(ctx).
		Where("conversation_id = ? AND key = ? AND expires_at > ?", conversationID, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &rec, err
}

// CreateSubmitReceipt inserts a receipt and returns ErrDuplicate on unique violation.
func CreateSubmitReceipt(ctx context.Context, db *gorm.DB, conversationID, key, messageID string, status int, ttl time.Duration) (*domain.SubmitReceipt, error) {
	now := time.Now().UTC()
	rec := &domain.SubmitReceipt{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Key:            key,
		MessageID:      messageID,
		Status:         status,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}
