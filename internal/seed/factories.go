package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"folio/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// DemoOptions sizes a generated demo portfolio.
type DemoOptions struct {
	Skills      int
	Projects    int
	Hobbies     int
	Experiences int
	Contacts    int
	// Seed makes generation reproducible; 0 picks a random seed.
	Seed int64
}

// DefaultDemoOptions is a portfolio of believable size.
var DefaultDemoOptions = DemoOptions{Skills: 12, Projects: 6, Hobbies: 4, Experiences: 4, Contacts: 8}

var (
	skillCategories = []string{"Backend", "Frontend", "DevOps", "Data", "Tooling"}
	hobbyNames      = []string{
		"Climbing", "Photography", "Chess", "Cycling", "Woodworking",
		"Baking", "Hiking", "Guitar", "Gardening", "Running",
	}
)

// Factory builds portfolio records filled with fake but plausible content.
// It does not persist anything.
type Factory struct {
	faker *gofakeit.Faker
}

// NewFactory creates a Factory. A zero seed is random.
func NewFactory(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// Profile builds the portfolio owner.
func (f *Factory) Profile() *models.Profile {
	first, last := f.faker.FirstName(), f.faker.LastName()
	handle := strings.ToLower(first + last)
	return &models.Profile{
		FullName:        first + " " + last,
		Title:           f.faker.JobTitle(),
		Bio:             f.faker.Paragraph(2, 3, 12, "\n\n"),
		ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/300?u=%s", handle),
		Email:           fmt.Sprintf("%s@example.com", handle),
		Phone:           f.faker.Phone(),
		Location:        f.faker.City() + ", " + f.faker.Country(),
		LinkedinURL:     "https://www.linkedin.com/in/" + handle,
		GithubURL:       "https://github.com/" + handle,
		WebsiteURL:      "https://" + handle + ".dev",
	}
}

// Skill builds one skill.
func (f *Factory) Skill() *models.Skill {
	proficiency := f.faker.Number(40, 100)
	return &models.Skill{
		Name:        f.faker.ProgrammingLanguage(),
		Category:    f.faker.RandomString(skillCategories),
		Proficiency: &proficiency,
		Description: f.faker.Sentence(10),
	}
}

// Project builds one project created within the last three years.
func (f *Factory) Project() *models.Project {
	name := f.faker.AppName()
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	created := models.DateOf(f.faker.DateRange(time.Now().AddDate(-3, 0, 0), time.Now()))

	techs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		techs = append(techs, f.faker.ProgrammingLanguage())
	}

	return &models.Project{
		Name:         name,
		Description:  f.faker.Paragraph(1, 3, 10, " "),
		ImageURL:     fmt.Sprintf("https://picsum.photos/seed/%s/800/600", slug),
		GithubURL:    "https://github.com/example/" + slug,
		LiveURL:      "https://" + slug + ".example.com",
		Technologies: strings.Join(techs, ","),
		CreatedAt:    &created,
		Featured:     f.faker.Number(1, 3) == 1,
	}
}

// Hobby builds one hobby.
func (f *Factory) Hobby() *models.Hobby {
	name := f.faker.RandomString(hobbyNames)
	return &models.Hobby{
		Name:        name,
		Description: f.faker.Sentence(12),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/600/400", strings.ToLower(name)),
	}
}

// Experiences builds a consecutive career history, oldest first. The last
// position is current and has no end date.
func (f *Factory) Experiences(n int) []models.Experience {
	out := make([]models.Experience, 0, n)
	start := time.Now().AddDate(-2*n, 0, 0)
	for i := 0; i < n; i++ {
		startDate := models.DateOf(start)
		exp := models.Experience{
			Title:          f.faker.JobTitle(),
			Company:        f.faker.Company(),
			Location:       f.faker.City(),
			StartDate:      &startDate,
			Description:    f.faker.Paragraph(1, 2, 14, " "),
			CompanyLogoURL: fmt.Sprintf("https://logo.clearbit.com/%s", f.faker.DomainName()),
		}

		end := start.AddDate(0, f.faker.Number(12, 24), 0)
		if i == n-1 {
			exp.Current = true
		} else {
			endDate := models.DateOf(end)
			exp.EndDate = &endDate
		}
		out = append(out, exp)
		start = end.AddDate(0, 0, 1)
	}
	return out
}

// Contact builds one visitor message received in the last 60 days.
func (f *Factory) Contact() *models.Contact {
	created := f.faker.DateRange(time.Now().AddDate(0, 0, -60), time.Now())
	return &models.Contact{
		Name:      f.faker.Name(),
		Email:     f.faker.Email(),
		Subject:   f.faker.Sentence(5),
		Message:   f.faker.Paragraph(1, 3, 12, " "),
		CreatedAt: &created,
		Read:      f.faker.Bool(),
	}
}

// Demo builds a complete fixture sized by opts.
func (f *Factory) Demo(opts DemoOptions) *Fixture {
	fixture := &Fixture{
		Profile:     f.Profile(),
		Experiences: f.Experiences(opts.Experiences),
	}
	for i := 0; i < opts.Skills; i++ {
		fixture.Skills = append(fixture.Skills, *f.Skill())
	}
	for i := 0; i < opts.Projects; i++ {
		fixture.Projects = append(fixture.Projects, *f.Project())
	}
	for i := 0; i < opts.Hobbies; i++ {
		fixture.Hobbies = append(fixture.Hobbies, *f.Hobby())
	}
	for i := 0; i < opts.Contacts; i++ {
		fixture.Contacts = append(fixture.Contacts, *f.Contact())
	}
	return fixture
}

// SeedDemo generates a demo portfolio and saves it.
func (s *Seeder) SeedDemo(ctx context.Context, opts DemoOptions) (Summary, error) {
	return s.Apply(ctx, NewFactory(opts.Seed).Demo(opts))
}
