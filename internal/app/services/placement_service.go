package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

// PlacementService handles placement drive operations
type PlacementService struct {
	placementRepo repositories.IPlacementRepository
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(placementRepo repositories.IPlacementRepository) *PlacementService {
	return &PlacementService{
		placementRepo: placementRepo,
	}
}

// validatePlacement validates placement data before any mutation
func (s *PlacementService) validatePlacement(placement *models.Placement) error {
	if placement.Company == "" {
		return apperrors.NewValidationError("company cannot be empty")
	}
	if placement.Position == "" {
		return apperrors.NewValidationError("position cannot be empty")
	}
	if placement.Package <= 0 {
		return apperrors.NewValidationError("package must be a positive amount")
	}
	if len(placement.Branches) == 0 {
		return apperrors.ErrNoEligibleBranch
	}
	for _, branch := range placement.Branches {
		if !branch.IsValid() {
			return apperrors.NewValidationError(fmt.Sprintf("unknown branch code %q", branch))
		}
	}
	return nil
}

// Create validates and stores a new placement drive. New drives are always active.
func (s *PlacementService) Create(ctx context.Context, placement *models.Placement) error {
	placement.Status = models.PlacementActive

	if err := s.validatePlacement(placement); err != nil {
		return err
	}

	if err := s.placementRepo.Create(ctx, placement); err != nil {
		return fmt.Errorf("error creating placement: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of a placement. Editing a drive always
// resets it to active, matching the administrative edit flow.
func (s *PlacementService) Update(ctx context.Context, placement *models.Placement) (*models.Placement, error) {
	placement.Status = models.PlacementActive

	if err := s.validatePlacement(placement); err != nil {
		return nil, err
	}

	if err := s.placementRepo.Update(ctx, placement); err != nil {
		return nil, err
	}

	return s.placementRepo.GetByID(ctx, placement.ID)
}

// Deactivate retires a placement drive. The record is kept so existing
// applications always resolve; it simply stops being eligible.
func (s *PlacementService) Deactivate(ctx context.Context, id int64) error {
	return s.placementRepo.Deactivate(ctx, id)
}

// GetByID retrieves a single placement
func (s *PlacementService) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	return s.placementRepo.GetByID(ctx, id)
}

// ListAll retrieves every placement for administrative views
func (s *PlacementService) ListAll(ctx context.Context) ([]*models.Placement, error) {
	return s.placementRepo.GetAll(ctx)
}

// ListOpenFor retrieves active placements still open as of the given instant that
// accept the branch, ordered soonest deadline first.
func (s *PlacementService) ListOpenFor(ctx context.Context, branch models.Branch, asOf time.Time) ([]*models.Placement, error) {
	return s.placementRepo.GetOpenForBranch(ctx, branch, asOf)
}
