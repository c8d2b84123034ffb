package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/basilogast/portfolio-server/internal/service"
)

type contactPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// SubmitContact relays a contact form submission via the mail transport.
// Fields are not validated server-side; the mail template renders whatever
// was sent, empty values included.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "Invalid request payload") {
		return
	}

	err := a.contact.Send(service.ContactInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Message:   payload.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send message. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully!",
	})
}
