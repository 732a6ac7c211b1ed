package server

import (
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetExperiences handles GET /api/experiences
// @Summary List experiences
// @Description Most recent start date first.
// @Tags experiences
// @Produce json
// @Success 200 {array} models.Experience
// @Failure 500 "Persistence failure"
// @Router /experiences [get]
func (s *Server) GetExperiences(c *fiber.Ctx) error {
	experiences, err := s.portfolio.GetAllExperiences(c.UserContext())
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(experiences)
}

// SaveExperience handles POST /api/experiences
// @Summary Create or update an experience
// @Tags experiences
// @Accept json
// @Produce json
// @Param request body models.Experience true "Experience"
// @Success 200 {object} models.Experience
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 "Persistence failure"
// @Router /experiences [post]
func (s *Server) SaveExperience(c *fiber.Ctx) error {
	experience, err := parseBody[models.Experience](c)
	if err != nil {
		return nil
	}

	saved, err := s.portfolio.SaveExperience(c.UserContext(), experience)
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(saved)
}
