package dto

import "github.com/campushub/placement-portal/internal/app/models"

// ApplyRequest represents a student applying to a placement
type ApplyRequest struct {
	PlacementID int64  `json:"placementId" binding:"required,min=1"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// ApplicationDecisionRequest represents an admin approving or rejecting an application
type ApplicationDecisionRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=approved rejected"`
}

// ApplicationListResponse wraps a list of applications with its length
type ApplicationListResponse struct {
	Applications []*models.Application `json:"applications"`
	Total        int                   `json:"total"`
}
