// Package service holds the application façade the HTTP layer talks to.
package service

import (
	"context"
	"log/slog"

	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/repository"
)

// Repositories groups the gateways PortfolioService delegates to.
type Repositories struct {
	Profiles    repository.ProfileRepository
	Skills      repository.SkillRepository
	Projects    repository.ProjectRepository
	Hobbies     repository.HobbyRepository
	Experiences repository.ExperienceRepository
	Contacts    repository.ContactRepository
}

// PortfolioService exposes read and save operations for every portfolio entity.
// It adds no validation; the storage engine's constraints are the only checks.
type PortfolioService struct {
	profileRepo    repository.ProfileRepository
	skillRepo      repository.SkillRepository
	projectRepo    repository.ProjectRepository
	hobbyRepo      repository.HobbyRepository
	experienceRepo repository.ExperienceRepository
	contactRepo    repository.ContactRepository
}

func NewPortfolioService(repos Repositories) *PortfolioService {
	return &PortfolioService{
		profileRepo:    repos.Profiles,
		skillRepo:      repos.Skills,
		projectRepo:    repos.Projects,
		hobbyRepo:      repos.Hobbies,
		experienceRepo: repos.Experiences,
		contactRepo:    repos.Contacts,
	}
}

func logFetched(ctx context.Context, what string, n int) {
	middleware.Logger.DebugContext(ctx, "Fetched "+what, slog.Int("count", n))
}

func logSaved(ctx context.Context, what string, id uint) {
	middleware.Logger.DebugContext(ctx, "Saved "+what, slog.Uint64("id", uint64(id)))
}

// GetProfile returns the single profile, or nil when none has been saved yet.
func (s *PortfolioService) GetProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, models.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		middleware.Logger.DebugContext(ctx, "No profile found")
	}
	return profile, nil
}

// SaveProfile writes the profile under the fixed profile id, whatever id the caller sent.
func (s *PortfolioService) SaveProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.ID = models.ProfileID
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	logSaved(ctx, "profile", profile.ID)
	return profile, nil
}

func (s *PortfolioService) GetAllSkills(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skillRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "skills", len(skills))
	return skills, nil
}

func (s *PortfolioService) GetSkillsByCategory(ctx context.Context, category string) ([]models.Skill, error) {
	skills, err := s.skillRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	middleware.Logger.DebugContext(ctx, "Fetched skills by category",
		slog.String("category", category),
		slog.Int("count", len(skills)),
	)
	return skills, nil
}

// GetSkillsByProficiency lists skills strongest first.
func (s *PortfolioService) GetSkillsByProficiency(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skillRepo.FindAllByProficiencyDesc(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "skills by proficiency", len(skills))
	return skills, nil
}

func (s *PortfolioService) SaveSkill(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	if err := s.skillRepo.Save(ctx, skill); err != nil {
		return nil, err
	}
	logSaved(ctx, "skill", skill.ID)
	return skill, nil
}

func (s *PortfolioService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "projects", len(projects))
	return projects, nil
}

func (s *PortfolioService) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByFeaturedTrue(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "featured projects", len(projects))
	return projects, nil
}

// GetRecentProjects lists projects by creation date, newest first.
func (s *PortfolioService) GetRecentProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAllByCreatedAtDesc(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "recent projects", len(projects))
	return projects, nil
}

func (s *PortfolioService) SaveProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	logSaved(ctx, "project", project.ID)
	return project, nil
}

func (s *PortfolioService) GetAllHobbies(ctx context.Context) ([]models.Hobby, error) {
	hobbies, err := s.hobbyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "hobbies", len(hobbies))
	return hobbies, nil
}

func (s *PortfolioService) SaveHobby(ctx context.Context, hobby *models.Hobby) (*models.Hobby, error) {
	if err := s.hobbyRepo.Save(ctx, hobby); err != nil {
		return nil, err
	}
	logSaved(ctx, "hobby", hobby.ID)
	return hobby, nil
}

// GetAllExperiences lists experiences with the most recent start date first.
func (s *PortfolioService) GetAllExperiences(ctx context.Context) ([]models.Experience, error) {
	experiences, err := s.experienceRepo.FindAllByStartDateDesc(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "experiences", len(experiences))
	return experiences, nil
}

func (s *PortfolioService) SaveExperience(ctx context.Context, experience *models.Experience) (*models.Experience, error) {
	if err := s.experienceRepo.Save(ctx, experience); err != nil {
		return nil, err
	}
	logSaved(ctx, "experience", experience.ID)
	return experience, nil
}

// GetAllContacts lists contact messages, newest first.
func (s *PortfolioService) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepo.FindAllByCreatedAtDesc(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "contacts", len(contacts))
	return contacts, nil
}

func (s *PortfolioService) GetUnreadContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepo.FindByReadFalse(ctx)
	if err != nil {
		return nil, err
	}
	logFetched(ctx, "unread contacts", len(contacts))
	return contacts, nil
}

func (s *PortfolioService) SaveContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	logSaved(ctx, "contact", contact.ID)
	return contact, nil
}
