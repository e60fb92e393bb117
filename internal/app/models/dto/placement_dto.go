package dto

import "github.com/campushub/placement-portal/internal/app/models"

// PlacementRequest represents the payload for creating or updating a placement.
// Deadline is a calendar date; applications stay open through the end of that day.
type PlacementRequest struct {
	Company     string          `json:"company" binding:"required"`
	Position    string          `json:"position" binding:"required"`
	Package     float64         `json:"package" binding:"required,gt=0"`
	Eligibility string          `json:"eligibility"`
	Description string          `json:"description"`
	Deadline    string          `json:"deadline" binding:"required,datetime=2006-01-02" example:"2026-09-30"`
	Branches    []models.Branch `json:"branches" binding:"required"`
}

// PlacementListResponse wraps a list of placements with its length
type PlacementListResponse struct {
	Placements []*models.Placement `json:"placements"`
	Total      int                 `json:"total"`
}
