// Contact HTTP handler.
//
// This file exposes the contact-form endpoint:
//   - POST /contact
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkaravas/go-assistant-backend/internal/services"
)

// ContactRequest is the JSON payload for a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=1" example:"Ada Lovelace"`
	Email   string `json:"email" binding:"required,email" example:"ada@example.com"`
	Message string `json:"message" binding:"required,min=1" example:"Loving the assistant."`
}

// ContactResponse acknowledges a stored submission.
type ContactResponse struct {
	ID string `json:"id"`
}

// SubmitContact godoc
// @ID          submitContact
// @Summary     Submit the contact form
// @Tags        Contact
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.ContactRequest  true  "Contact payload"
// @Success     201  {object} handlers.ContactResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, email and message are required")
		return
	}

	cm, err := h.contactSvc.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		switch err {
		case services.ErrInvalidContact, services.ErrTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, ContactResponse{ID: cm.ID})
}
