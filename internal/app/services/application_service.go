package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/helpers"
)

// ApplicationService owns the application lifecycle: apply, review, withdraw
type ApplicationService struct {
	applicationRepo repositories.IApplicationRepository
	placementRepo   repositories.IPlacementRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	placementRepo repositories.IPlacementRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		placementRepo:   placementRepo,
	}
}

// Apply submits a student's application for a placement. Preconditions are
// checked in a fixed order and the first failure wins: the placement must
// exist, its deadline must not have passed, and the student must not already
// hold an application for it. Company and position are snapshotted from the
// placement at this instant, so later edits never rewrite application history.
func (s *ApplicationService) Apply(ctx context.Context, studentID, placementID int64, coverLetter string) (*models.Application, error) {
	placement, err := s.placementRepo.GetByID(ctx, placementID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if helpers.DeadlinePassed(placement.Deadline, now) {
		return nil, apperrors.ErrDeadlineExpired
	}

	existing, err := s.applicationRepo.GetByStudentAndPlacement(ctx, studentID, placementID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing application: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		StudentID:   studentID,
		PlacementID: placementID,
		Company:     placement.Company,
		Position:    placement.Position,
		AppliedDate: helpers.StartOfDay(now),
		Status:      models.ApplicationPending,
		CoverLetter: coverLetter,
	}

	// The store's (student, placement) uniqueness constraint backs up the
	// check above against racing submissions.
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// Decide sets an admin decision on an application. The status is overwritten
// unconditionally; re-deciding an already decided application is allowed.
func (s *ApplicationService) Decide(ctx context.Context, applicationID int64, status models.ApplicationStatus) (*models.Application, error) {
	if !status.IsDecision() {
		return nil, apperrors.ErrInvalidDecision
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}

	return s.applicationRepo.GetByID(ctx, applicationID)
}

// Withdraw removes a student's application. Only the owning student may
// withdraw; any other caller is refused.
func (s *ApplicationService) Withdraw(ctx context.Context, callerStudentID, applicationID int64) error {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if application.StudentID != callerStudentID {
		return apperrors.NewForbiddenError("applications can only be withdrawn by their owner")
	}

	return s.applicationRepo.Delete(ctx, applicationID)
}

// ListFor retrieves a student's applications
func (s *ApplicationService) ListFor(ctx context.Context, studentID int64) ([]*models.Application, error) {
	return s.applicationRepo.ListByStudent(ctx, studentID)
}

// ListAll retrieves every application for administrative review
func (s *ApplicationService) ListAll(ctx context.Context) ([]*models.Application, error) {
	return s.applicationRepo.ListAll(ctx)
}
