// Reaction HTTP handlers.
//
// This file exposes the REST endpoint for toggling a like/dislike reaction on
// an assistant message:
//   - POST /messages/{id}/reaction
//
// Repeating the active action toggles it off; switching actions moves the
// count from one side to the other. The response always carries the resulting
// counters and active action so clients can render without a follow-up read.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkaravas/go-assistant-backend/internal/domain"
	"github.com/mkaravas/go-assistant-backend/internal/services"
)

// ReactRequest is the JSON payload for toggling a reaction.
type ReactRequest struct {
	// Action is the reaction to toggle: "like" or "dislike".
	Action string `json:"action" binding:"required,oneof=like dislike" example:"like"`
}

// ReactResponse is the resulting reaction state of the message.
type ReactResponse struct {
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
	Action   string `json:"action"`
}

// React godoc
// @ID          reactToMessage
// @Summary     Toggle a reaction on a message
// @Description Applies a like or dislike toggle and returns the new reaction state.
// @Tags        Reactions
// @Accept      json
// @Produce     json
// @Param       id    path  string                true  "Message ID (UUID)"  format(uuid)
// @Param       body  body  handlers.ReactRequest true  "Reaction payload"
// @Success     200  {object} handlers.ReactResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404  {object} handlers.ErrorResponse "Message not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /messages/{id}/reaction [post]
func (h *Handlers) React(c *gin.Context) {
	var req ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "action must be like or dislike")
		return
	}

	st, err := h.reactSvc.React(c.Request.Context(), c.Param("id"), domain.Reaction(req.Action))
	if err != nil {
		switch err {
		case services.ErrMessageNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
		case services.ErrInvalidReaction:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "action must be like or dislike")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, ReactResponse{
		Likes:    st.Likes,
		Dislikes: st.Dislikes,
		Action:   string(st.Action),
	})
}
