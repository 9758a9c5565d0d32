// Package services: ContactService
//
// This file implements the contact-form use-case: validate the submission
// and persist it. Unlike conversation persistence, a failed insert here is
// surfaced, because the whole point of the operation is the durable record.
package services

import (
	"context"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
	"github.com/mkaravas/go-assistant-backend/internal/repo"
)

// emailRE is a pragmatic format check, not full RFC 5322.
var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ContactService records contact-form submissions.
type ContactService struct {
	DB *gorm.DB

	// MessageMaxRunes caps the stored message body. Zero disables.
	MessageMaxRunes int
}

// Submit validates and stores one contact submission.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || message == "" || !emailRE.MatchString(email) {
		return nil, ErrInvalidContact
	}
	if s.MessageMaxRunes > 0 && len([]rune(message)) > s.MessageMaxRunes {
		return nil, ErrTooLong
	}

	return repo.CreateContactMessage(ctx, s.DB, name, email, message)
}
