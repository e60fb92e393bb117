package models

import (
	"time"
)

// Placement defines the placement drive model based on the 'placements' table
type Placement struct {
	ID          int64           `json:"id" db:"id" example:"1"`                                 // Unique identifier for the placement
	Company     string          `json:"company" db:"company" example:"TCS"`                     // Hiring company name
	Position    string          `json:"position" db:"position" example:"Software Engineer"`     // Offered position
	Package     float64         `json:"package" db:"package" example:"6.5"`                     // Annual package in LPA
	Eligibility string          `json:"eligibility" db:"eligibility" example:"CGPA above 7.0"`  // Advisory eligibility text, never enforced programmatically
	Description string          `json:"description" db:"description"`                           // Role description
	Deadline    time.Time       `json:"deadline" db:"deadline" example:"2026-09-30T00:00:00Z"`  // Application deadline, inclusive through end of day
	Branches    []Branch        `json:"branches" db:"branches" example:"cs,it"`                 // Eligible branches, never empty
	Status      PlacementStatus `json:"status" db:"status" example:"active"`                    // active or inactive
	CreatedBy   int64           `json:"createdBy,omitempty" db:"created_by" example:"2"`        // Admin user that posted the drive
	CreatedAt   time.Time       `json:"createdAt" db:"created_at" example:"2026-08-01T10:00:00Z"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at" example:"2026-08-02T15:30:00Z"`
}

// AcceptsBranch reports whether the branch is among the eligible ones
func (p *Placement) AcceptsBranch(branch Branch) bool {
	for _, b := range p.Branches {
		if b == branch {
			return true
		}
	}
	return false
}
