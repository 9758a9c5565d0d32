// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the insert-only repository function for
// the ContactMessage model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
)

// CreateContactMessage inserts a contact-form submission.
func CreateContactMessage(ctx context.Context, db *gorm.DB, name, email, message string) (*domain.ContactMessage, error) {
	cm := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(cm).Error; err != nil {
		return nil, err
	}
	return cm, nil
}
