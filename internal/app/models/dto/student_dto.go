package dto

import "github.com/campushub/placement-portal/internal/app/models"

// AddStudentRequest represents an admin adding a student directly. The account
// is created with the configured default password and a derived student number.
type AddStudentRequest struct {
	Name   string        `json:"name" binding:"required"`
	Email  string        `json:"email" binding:"required,email"`
	Branch models.Branch `json:"branch" binding:"required,oneof=cs it ece me ce"`
	CGPA   float64       `json:"cgpa" binding:"omitempty,min=0,max=10"`
}

// UpdateProfileRequest represents a partial profile update. Branch and role are
// immutable after creation; only the fields here may change. Nil pointers leave
// the current value untouched.
type UpdateProfileRequest struct {
	Name    *string  `json:"name,omitempty"`
	Email   *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string  `json:"phone,omitempty"`
	Address *string  `json:"address,omitempty"`
	CGPA    *float64 `json:"cgpa,omitempty" binding:"omitempty,min=0,max=10"`
}

// StudentResponse decorates a student with their derived placement standing
type StudentResponse struct {
	*models.User
	Standing models.StudentStanding `json:"standing" example:"searching"`
}

// StudentListResponse wraps a list of students with its length
type StudentListResponse struct {
	Students []*StudentResponse `json:"students"`
	Total    int                `json:"total"`
}
