package server

import (
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profile
// @Summary Get the profile
// @Description Returns the portfolio owner's profile, or 404 with an empty body before one is saved.
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 "No profile saved yet"
// @Failure 500 "Persistence failure"
// @Router /profile [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.portfolio.GetProfile(c.UserContext())
	if err != nil {
		return persistenceFailure(c, err)
	}
	if profile == nil {
		c.Status(fiber.StatusNotFound)
		return nil
	}
	return c.JSON(profile)
}

// SaveProfile handles POST /api/profile
// @Summary Save the profile
// @Description Creates or replaces the single profile. Any id in the body is ignored.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.Profile true "Profile"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 "Persistence failure"
// @Router /profile [post]
func (s *Server) SaveProfile(c *fiber.Ctx) error {
	profile, err := parseBody[models.Profile](c)
	if err != nil {
		return nil
	}

	saved, err := s.portfolio.SaveProfile(c.UserContext(), profile)
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(saved)
}
