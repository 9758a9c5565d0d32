// Package services: ReactionService
//
// This file implements the like/dislike toggle on assistant messages.
// Transitions are computed from the message's current reaction state, then
// written back as an atomic update of the reaction columns only, matched by
// conversation ID and message creation time. The reaction write and the
// submit flow touch disjoint columns of the same row; the service lock keeps
// the read-modify-write itself from interleaving.
//
// The database update is best-effort: a failure is logged and the new state
// is still returned, mirroring how the submit flow treats persistence.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
	"github.com/mkaravas/go-assistant-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReactionService implements the reaction toggle use-case.
type ReactionService struct {
	DB  *gorm.DB
	Log zerolog.Logger

	mu sync.Mutex
}

// React applies a like or dislike toggle to the message and returns the
// resulting reaction state.
//
// Semantics:
//   - action must be like or dislike; otherwise ErrInvalidReaction.
//   - messageID must exist; otherwise ErrMessageNotFound.
//   - Toggling the active action turns it off; switching actions moves the
//     count from one side to the other.
func (s *ReactionService) React(ctx context.Context, messageID string, action domain.Reaction) (domain.ReactionState, error) {
	tr := otel.Tracer("services/ReactionService")
	ctx, span := tr.Start(ctx, "React",
		trace.WithAttributes(
			attribute.String("message.id", messageID),
			attribute.String("action", string(action)),
		),
	)
	defer span.End()

	if action != domain.ReactionLike && action != domain.ReactionDislike {
		return domain.ReactionState{}, ErrInvalidReaction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := repo.GetMessage(s.DB.WithContext(ctx), messageID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReactionState{}, ErrMessageNotFound
		}
		return domain.ReactionState{}, err
	}

	next := domain.ReactionStateOf(msg).Apply(action)

	if err := repo.UpdateReaction(ctx, s.DB, msg.ConversationID, msg.CreatedAt, next); err != nil {
		s.Log.Warn().Err(err).
			Str("message_id", messageID).
			Str("action", string(action)).
			Msg("persist reaction failed")
	}
	return next, nil
}
