package dto

import "github.com/campushub/placement-portal/internal/app/models"

// OverviewResponse carries the admin dashboard counters
type OverviewResponse struct {
	ActivePlacements     int                   `json:"activePlacements" example:"12"`
	RegisteredStudents   int                   `json:"registeredStudents" example:"240"`
	TotalApplications    int                   `json:"totalApplications" example:"384"`
	PlacedThisYear       int                   `json:"placedThisYear" example:"57"`
	ApplicationsByBranch map[models.Branch]int `json:"applicationsByBranch"`
}
