// Package services defines the business logic for conversations, reactions,
// and contact submissions. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes should be performed at the
// handler layer.
package services

import "errors"

var (
	// ErrConversationNotFound indicates that the requested conversation does
	// not exist.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrConversationBusy is returned when a submit arrives while another
	// submit for the same conversation is still being processed.
	ErrConversationBusy = errors.New("conversation is processing another message")

	// ErrEmptyPrompt is returned when a submit contains a blank or
	// whitespace-only prompt.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrTooLong is returned when a prompt exceeds the maximum configured
	// rune length.
	ErrTooLong = errors.New("prompt too long")

	// ErrMessageNotFound indicates that the requested message does not exist.
	ErrMessageNotFound = errors.New("message not found")

	// ErrInvalidReaction is returned when a reaction value is outside the
	// allowed set (like, dislike).
	ErrInvalidReaction = errors.New("reaction must be like or dislike")

	// ErrInvalidContact is returned when a contact submission is missing a
	// name or message, or carries a malformed email address.
	ErrInvalidContact = errors.New("invalid contact submission")
)
