package server

import (
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProjects handles GET /api/projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 "Persistence failure"
// @Router /projects [get]
func (s *Server) GetProjects(c *fiber.Ctx) error {
	projects, err := s.portfolio.GetAllProjects(c.UserContext())
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(projects)
}

// GetFeaturedProjects handles GET /api/projects/featured
// @Summary List featured projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 "Persistence failure"
// @Router /projects/featured [get]
func (s *Server) GetFeaturedProjects(c *fiber.Ctx) error {
	projects, err := s.portfolio.GetFeaturedProjects(c.UserContext())
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(projects)
}

// SaveProject handles POST /api/projects
// @Summary Create or update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body models.Project true "Project"
// @Success 200 {object} models.Project
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 "Persistence failure"
// @Router /projects [post]
func (s *Server) SaveProject(c *fiber.Ctx) error {
	project, err := parseBody[models.Project](c)
	if err != nil {
		return nil
	}

	saved, err := s.portfolio.SaveProject(c.UserContext(), project)
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(saved)
}
