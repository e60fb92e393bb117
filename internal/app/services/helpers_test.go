package services

import (
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/repositories/memory"
)

// stores bundles the in-memory repositories a service test needs
type stores struct {
	users        *memory.UserRepository
	placements   *memory.PlacementRepository
	applications *memory.ApplicationRepository
}

func newStores() *stores {
	users := memory.NewUserRepository()
	return &stores{
		users:        users,
		placements:   memory.NewPlacementRepository(),
		applications: memory.NewApplicationRepository(users),
	}
}

// daysFromNow returns a date the given number of whole days from today
func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func testPlacement(company string, deadline time.Time, branches ...models.Branch) *models.Placement {
	if len(branches) == 0 {
		branches = []models.Branch{models.BranchCS}
	}
	return &models.Placement{
		Company:  company,
		Position: "Software Engineer",
		Package:  12.5,
		Deadline: deadline,
		Branches: branches,
		Status:   models.PlacementActive,
	}
}

func testStudent(id int64, branch models.Branch) *models.User {
	return &models.User{
		ID:     id,
		Name:   "Test Student",
		Email:  "student@example.com",
		Role:   models.RoleStudent,
		Branch: branch,
	}
}
