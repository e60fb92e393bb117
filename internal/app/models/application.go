package models

import (
	"time"
)

// Application defines the application model based on the 'applications' table.
// Company and Position are denormalized snapshots taken at apply time, so later
// edits to the placement never rewrite application history.
type Application struct {
	ID          int64             `json:"id" db:"id" example:"1"`
	StudentID   int64             `json:"studentId" db:"student_id" example:"5"`          // Owning student user id
	PlacementID int64             `json:"placementId" db:"placement_id" example:"3"`      // Referenced placement id
	Company     string            `json:"company" db:"company" example:"TCS"`             // Company snapshot at apply time
	Position    string            `json:"position" db:"position" example:"Software Engineer"` // Position snapshot at apply time
	AppliedDate time.Time         `json:"appliedDate" db:"applied_date" example:"2026-08-15T00:00:00Z"`
	Status      ApplicationStatus `json:"status" db:"status" example:"pending"`
	CoverLetter string            `json:"coverLetter,omitempty" db:"cover_letter"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at" example:"2026-08-15T10:00:00Z"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at" example:"2026-08-15T10:00:00Z"`

	// Relations (populated when needed)
	Student *User `json:"student,omitempty"` // Owning student, for admin listings
}
