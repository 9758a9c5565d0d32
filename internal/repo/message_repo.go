// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message
// model, including the reaction-field update used by the reaction ledger and
// the bulk delete used by the conversation clear flow.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
)

// CreateMessage inserts a new message row. contextSnapshot is the running
// history string at the moment the message was created.
func CreateMessage(db *gorm.DB, conversationID, role, content, contextSnapshot string) (*domain.Message, error) {
	m := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Context:        contextSnapshot,
		UserAction:     domain.ReactionNone,
		CreatedAt:      time.Now().UTC(),
	}
	return m, db.Create(m).Error
}

// ListMessages returns messages ordered deterministically (CreatedAt ASC, ID ASC).
func ListMessages(db *gorm.DB, conversationID string, limit int) ([]domain.Message, error) {
	var out []domain.Message
	q := db.Where("conversation_id = ?", conversationID).Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// CountMessages uses a raw COUNT so a missing table surfaces as an error.
func CountMessages(db *gorm.DB, conversationID string) (int64, error) {
	var total int64
	err := db.Raw("SELECT COUNT(*) FROM messages WHERE conversation_id = ?", conversationID).Scan(&total).Error
	return total, err
}

// ListMessagesPage returns a paginated slice ordered (CreatedAt ASC, ID ASC).
func ListMessagesPage(db *gorm.DB, conversationID string, offset, limit int) ([]domain.Message, error) {
	var out []domain.Message
	err := db.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetMessage fetches a message by ID.
func GetMessage(db *gorm.DB, id string) (*domain.Message, error) {
	var m domain.Message
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateReaction writes the reaction fields of the message addressed by
// conversation ID and creation time. Only likes, dislikes, and user_action
// are touched; content and timestamps are left alone so a concurrent submit
// flow can never lose this update (disjoint columns, single UPDATE).
func UpdateReaction(ctx context.Context, db *gorm.DB, conversationID string, createdAt time.Time, s domain.ReactionState) error {
	res := db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("conversation_id = ? AND created_at = ?", conversationID, createdAt).
		Updates(map[string]any{
			"likes":       s.Likes,
			"dislikes":    s.Dislikes,
			"user_action": s.Action,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMessages bulk-removes all messages belonging to a conversation.
// Individual messages are never deleted; this is the only delete path.
// The delete is unscoped: a cleared conversation leaves no rows behind.
func DeleteMessages(ctx context.Context, db *gorm.DB, conversationID string) error {
	return db.WithContext(ctx).
		Unscoped().
		Where("conversation_id = ?", conversationID).
		Delete(&domain.Message{}).Error
}
