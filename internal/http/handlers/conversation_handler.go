// Conversation HTTP handlers.
//
// This file exposes REST endpoints for conversation resources:
//   - POST   /conversations        (create)
//   - DELETE /conversations/{id}   (clear: drop history, rotate to a new ID)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
	"github.com/mkaravas/go-assistant-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// ConversationService defines the conversation lifecycle and turn operations
// consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ConversationService interface {
	// StartConversation creates a conversation with an optional title.
	StartConversation(ctx context.Context, title string) (*domain.Conversation, error)
	// Submit runs one turn and returns the assistant reply message.
	Submit(ctx context.Context, conversationID, text string) (*domain.Message, error)
	// Clear drops the conversation's history and returns a fresh conversation.
	Clear(ctx context.Context, conversationID string) (*domain.Conversation, error)
	// ListPage returns a page of messages and the total count.
	ListPage(ctx context.Context, conversationID string, page, pageSize int) ([]domain.Message, int64, error)
	// IsLoading reports whether a submit is in flight for the conversation.
	IsLoading(conversationID string) bool
}

// ReactionService defines the like/dislike toggle consumed by HTTP handlers.
type ReactionService interface {
	// React applies a like or dislike toggle and returns the new state.
	React(ctx context.Context, messageID string, action domain.Reaction) (domain.ReactionState, error)
}

// ContactService records contact-form submissions.
type ContactService interface {
	// Submit validates and stores one contact submission.
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for conversations, reactions, and contact.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic. DB is used only for transport-level
// conveniences (ETag stats, submit replay receipts).
type Handlers struct {
	convSvc    ConversationService
	reactSvc   ReactionService
	contactSvc ContactService
	db         *gorm.DB
}

// New constructs a Handlers instance bound to the given services.
func New(convSvc ConversationService, reactSvc ReactionService, contactSvc ContactService, db *gorm.DB) *Handlers {
	return &Handlers{convSvc: convSvc, reactSvc: reactSvc, contactSvc: contactSvc, db: db}
}

//
// DTOs
//

// CreateConversationRequest is the JSON payload for creating a conversation.
type CreateConversationRequest struct {
	// Title optionally names the conversation; a default is used when empty.
	Title string `json:"title" example:"Planning a Go service"`
}

// ConversationResponse wraps a single conversation resource.
type ConversationResponse struct {
	Conversation *domain.Conversation `json:"conversation"`
}

//
// Handlers
//

// CreateConversation godoc
// @ID          createConversation
// @Summary     Create a new conversation
// @Description Creates a conversation and returns the resource.
// @Tags        Conversations
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateConversationRequest  false  "Optional title"
// @Success     201  {object} handlers.ConversationResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /conversations [post]
func (h *Handlers) CreateConversation(c *gin.Context) {
	var req CreateConversationRequest
	// An empty body is fine; only malformed JSON is rejected.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid payload")
			return
		}
	}

	conv, err := h.convSvc.StartConversation(c.Request.Context(), strings.TrimSpace(req.Title))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, ConversationResponse{Conversation: conv})
}

// ClearConversation godoc
// @ID          clearConversation
// @Summary     Clear a conversation
// @Description Deletes the conversation's messages and returns a fresh conversation with a new ID.
// @Tags        Conversations
// @Produce     json
// @Param       id  path  string  true  "Conversation ID (UUID)"  format(uuid)
// @Success     200  {object} handlers.ConversationResponse "Replacement conversation"
// @Failure     400  {object} handlers.ErrorResponse "Invalid conversation id"
// @Failure     404  {object} handlers.ErrorResponse "Conversation not found"
// @Failure     409  {object} handlers.ErrorResponse "Submit in progress"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /conversations/{id} [delete]
func (h *Handlers) ClearConversation(c *gin.Context) {
	conversationID := c.Param("id")
	if _, err := uuid.Parse(conversationID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "conversation id must be a UUID")
		return
	}

	fresh, err := h.convSvc.Clear(c.Request.Context(), conversationID)
	if err != nil {
		switch err {
		case services.ErrConversationNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "conversation not found")
		case services.ErrConversationBusy:
			fail(c, http.StatusConflict, ErrCodeConflict, "conversation is processing another message")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeClearFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ConversationResponse{Conversation: fresh})
}
