package memory

import (
	"fmt"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
	"github.com/oksasatya/wil-portal/pkg/helpers"
)

// DemoCredential is a seeded account with its plain-text demo password.
type DemoCredential struct {
	User     entity.User
	Password string
}

// DemoCredentials lists the demo accounts advertised on the login page.
func DemoCredentials() []DemoCredential {
	return []DemoCredential{
		{
			User: entity.User{
				ID:    "1",
				Email: "student@aui.ma",
				Role:  entity.RoleStudent,
				Name:  "Demo Student",
				Profile: entity.Profile{
					StudentID: "STU001",
					Major:     "Computer Science",
					Year:      "Junior",
					GPA:       "3.5",
				},
			},
			Password: "student123",
		},
		{
			User: entity.User{
				ID:      "2",
				Email:   "employer@techcorp.ma",
				Role:    entity.RoleEmployer,
				Name:    "TechCorp Recruiter",
				Profile: entity.Profile{Company: "TechCorp Morocco"},
			},
			Password: "employer123",
		},
		{
			User: entity.User{
				ID:    "3",
				Email: "admin@aui.ma",
				Role:  entity.RoleAdmin,
				Name:  "WIL Administrator",
			},
			Password: "admin123",
		},
	}
}

// SeedUsers hashes every demo password with a fresh salt at the given cost.
func SeedUsers(creds []DemoCredential, cost int) ([]entity.User, error) {
	users := make([]entity.User, 0, len(creds))
	for _, c := range creds {
		hash, err := helpers.HashPassword(c.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", c.User.Email, err)
		}
		u := c.User
		u.PasswordHash = hash
		users = append(users, u)
	}
	return users, nil
}

// DefaultPrograms returns the catalog in display order: coop, remote, alternance.
func DefaultPrograms() []entity.Program {
	return []entity.Program{
		{
			ID:           "1",
			Slug:         "coop",
			Name:         "Co-op Program",
			Description:  "Traditional cooperative education with leading companies",
			Duration:     "4-6 months",
			Requirements: "Minimum GPA 3.0, completed foundational courses, faculty recommendation",
			Benefits:     "Real-world experience, networking, potential job offers, academic credit",
		},
		{
			ID:           "2",
			Slug:         "remote",
			Name:         "Remote@AUI",
			Description:  "Remote work opportunities with global companies",
			Duration:     "3-12 months",
			Requirements: "Strong communication skills, self-motivated, technical proficiency",
			Benefits:     "Global exposure, flexible schedule, digital skills, cultural exchange",
		},
		{
			ID:           "3",
			Slug:         "alternance",
			Name:         "Alternance",
			Description:  "Work-study program alternating between academic and professional periods",
			Duration:     "12-24 months",
			Requirements: "Academic standing, industry partner agreement, schedule flexibility",
			Benefits:     "Balanced learning, steady income, deep integration, enhanced employability",
		},
	}
}

// DefaultStats is the placement snapshot shown on the landing page.
func DefaultStats() entity.Stats {
	return entity.Stats{
		TotalApplications:    245,
		ActivePrograms:       3,
		PartnerCompanies:     45,
		SuccessfulPlacements: 189,
		ProgramStats: map[string]entity.ProgramStats{
			"coop":       {Applications: 125, Placements: 98},
			"remote":     {Applications: 78, Placements: 62},
			"alternance": {Applications: 42, Placements: 29},
		},
	}
}
