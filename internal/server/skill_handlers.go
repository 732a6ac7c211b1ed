package server

import (
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkills handles GET /api/skills
// @Summary List skills
// @Tags skills
// @Produce json
// @Success 200 {array} models.Skill
// @Failure 500 "Persistence failure"
// @Router /skills [get]
func (s *Server) GetSkills(c *fiber.Ctx) error {
	skills, err := s.portfolio.GetAllSkills(c.UserContext())
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(skills)
}

// GetSkillsByCategory handles GET /api/skills/category/:category
// @Summary List skills in a category
// @Description Exact, case-sensitive match on category.
// @Tags skills
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} models.Skill
// @Failure 500 "Persistence failure"
// @Router /skills/category/{category} [get]
func (s *Server) GetSkillsByCategory(c *fiber.Ctx) error {
	skills, err := s.portfolio.GetSkillsByCategory(c.UserContext(), pathParam(c, "category"))
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(skills)
}

// SaveSkill handles POST /api/skills
// @Summary Create or update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Param request body models.Skill true "Skill"
// @Success 200 {object} models.Skill
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 "Persistence failure"
// @Router /skills [post]
func (s *Server) SaveSkill(c *fiber.Ctx) error {
	skill, err := parseBody[models.Skill](c)
	if err != nil {
		return nil
	}

	saved, err := s.portfolio.SaveSkill(c.UserContext(), skill)
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(saved)
}
