package dto

import "github.com/campushub/placement-portal/internal/app/models"

// LoginRequest represents login credentials. Role scopes the lookup so a student
// cannot log in through the admin form and vice versa.
type LoginRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required,oneof=student admin"`
}

// RegisterRequest represents a self-registration request. Branch is required for
// students; AdminCode is required for admin accounts.
type RegisterRequest struct {
	Name      string        `json:"name" binding:"required"`
	Email     string        `json:"email" binding:"required,email"`
	Password  string        `json:"password" binding:"required,min=8"`
	Role      models.Role   `json:"role" binding:"required,oneof=student admin"`
	Branch    models.Branch `json:"branch,omitempty"`
	AdminCode string        `json:"adminCode,omitempty"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"86400"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *models.User  `json:"user"`
}
