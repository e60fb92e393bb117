package services

import (
	"context"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/helpers"
)

// upcomingLimit caps the "upcoming drives" view to the few soonest deadlines
const upcomingLimit = 3

// EligibilityService answers what a student can see and do right now. It holds
// no state of its own; every answer is derived from the placement and
// application stores at call time.
type EligibilityService struct {
	placementRepo   repositories.IPlacementRepository
	applicationRepo repositories.IApplicationRepository
}

// NewEligibilityService creates a new eligibility service instance
func NewEligibilityService(
	placementRepo repositories.IPlacementRepository,
	applicationRepo repositories.IApplicationRepository,
) *EligibilityService {
	return &EligibilityService{
		placementRepo:   placementRepo,
		applicationRepo: applicationRepo,
	}
}

// IsEligible reports whether a student may view and apply to a placement as of
// the given instant: the drive must be active, its deadline still open (a
// deadline is inclusive through the end of its own day), and the student's
// branch among the eligible ones.
func IsEligible(student *models.User, placement *models.Placement, asOf time.Time) bool {
	if placement.Status != models.PlacementActive {
		return false
	}
	if helpers.DeadlinePassed(placement.Deadline, asOf) {
		return false
	}
	return placement.AcceptsBranch(student.Branch)
}

// AvailablePlacements lists every placement the student is eligible for as of
// the given instant, in the catalog's natural order.
func (s *EligibilityService) AvailablePlacements(ctx context.Context, student *models.User, asOf time.Time) ([]*models.Placement, error) {
	placements, err := s.placementRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var available []*models.Placement
	for _, placement := range placements {
		if IsEligible(student, placement, asOf) {
			available = append(available, placement)
		}
	}

	return available, nil
}

// UpcomingPlacements lists the soonest-closing eligible placements, capped to a
// handful for the dashboard. The cap is a display convenience, not an
// eligibility limit.
func (s *EligibilityService) UpcomingPlacements(ctx context.Context, student *models.User, asOf time.Time) ([]*models.Placement, error) {
	placements, err := s.placementRepo.GetOpenForBranch(ctx, student.Branch, asOf)
	if err != nil {
		return nil, err
	}

	if len(placements) > upcomingLimit {
		placements = placements[:upcomingLimit]
	}

	return placements, nil
}

// Standing derives a student's placement standing: placed as soon as any
// application of theirs is approved, searching otherwise. A placed student may
// still hold pending applications elsewhere.
func (s *EligibilityService) Standing(ctx context.Context, studentID int64) (models.StudentStanding, error) {
	placed, err := s.applicationRepo.HasApprovedForStudent(ctx, studentID)
	if err != nil {
		return "", err
	}

	if placed {
		return models.StandingPlaced, nil
	}
	return models.StandingSearching, nil
}
