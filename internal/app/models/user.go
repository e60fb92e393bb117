package models

import (
	"time"
)

// User defines the user model based on the 'users' table. Admin accounts carry
// empty branch/student number/CGPA fields; only students ever have them set.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Priya Sharma"`                   // Full name
	Email     string    `json:"email" db:"email" example:"priya@college.edu"`            // Email address, unique across all users
	Password  string    `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
	Role      Role      `json:"role" db:"role" example:"student"`                        // Account role (student or admin)
	Branch    Branch    `json:"branch,omitempty" db:"branch" example:"cs"`               // Academic branch (students only)
	StudentNo string    `json:"studentId,omitempty" db:"student_no" example:"CS2026042"` // Derived student number, unique among students
	CGPA      float64   `json:"cgpa,omitempty" db:"cgpa" example:"8.45"`                 // Cumulative GPA on a 0-10 scale
	Phone     string    `json:"phone,omitempty" db:"phone" example:"+91 9876543210"`     // Contact phone
	Address   string    `json:"address,omitempty" db:"address"`                          // Postal address
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2026-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2026-01-02T15:30:00Z"`
}

// IsStudent reports whether the account has the student role
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
