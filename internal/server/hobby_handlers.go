package server

import (
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetHobbies handles GET /api/hobbies
// @Summary List hobbies
// @Tags hobbies
// @Produce json
// @Success 200 {array} models.Hobby
// @Failure 500 "Persistence failure"
// @Router /hobbies [get]
func (s *Server) GetHobbies(c *fiber.Ctx) error {
	hobbies, err := s.portfolio.GetAllHobbies(c.UserContext())
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(hobbies)
}

// SaveHobby handles POST /api/hobbies
// @Summary Create or update a hobby
// @Tags hobbies
// @Accept json
// @Produce json
// @Param request body models.Hobby true "Hobby"
// @Success 200 {object} models.Hobby
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 "Persistence failure"
// @Router /hobbies [post]
func (s *Server) SaveHobby(c *fiber.Ctx) error {
	hobby, err := parseBody[models.Hobby](c)
	if err != nil {
		return nil
	}

	saved, err := s.portfolio.SaveHobby(c.UserContext(), hobby)
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(saved)
}
