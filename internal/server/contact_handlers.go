package server

import (
	"time"

	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetContacts handles GET /api/contacts
// @Summary List contact messages
// @Description Newest first.
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 500 "Persistence failure"
// @Router /contacts [get]
func (s *Server) GetContacts(c *fiber.Ctx) error {
	contacts, err := s.portfolio.GetAllContacts(c.UserContext())
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(contacts)
}

// SaveContact handles POST /api/contacts
// @Summary Submit a contact message
// @Description createdAt defaults to the time of the request when omitted.
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body models.Contact true "Contact message"
// @Success 201 {object} models.Contact
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} object{error=string}
// @Failure 500 "Persistence failure"
// @Router /contacts [post]
func (s *Server) SaveContact(c *fiber.Ctx) error {
	contact, err := parseBody[models.Contact](c)
	if err != nil {
		return nil
	}

	if contact.CreatedAt == nil {
		now := time.Now().UTC()
		contact.CreatedAt = &now
	}

	saved, err := s.portfolio.SaveContact(c.UserContext(), contact)
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}
