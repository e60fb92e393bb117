package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/repositories"
)

// StatsService aggregates counters for the admin dashboard
type StatsService struct {
	userRepo        repositories.IUserRepository
	placementRepo   repositories.IPlacementRepository
	applicationRepo repositories.IApplicationRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	userRepo repositories.IUserRepository,
	placementRepo repositories.IPlacementRepository,
	applicationRepo repositories.IApplicationRepository,
) *StatsService {
	return &StatsService{
		userRepo:        userRepo,
		placementRepo:   placementRepo,
		applicationRepo: applicationRepo,
	}
}

// Overview returns the dashboard counters as of now.
func (s *StatsService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	activePlacements, err := s.placementRepo.CountByStatus(ctx, models.PlacementActive)
	if err != nil {
		return nil, fmt.Errorf("error counting active placements: %w", err)
	}

	students, err := s.userRepo.CountStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	applications, err := s.applicationRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting applications: %w", err)
	}

	placed, err := s.applicationRepo.CountApprovedInYear(ctx, time.Now().Year())
	if err != nil {
		return nil, fmt.Errorf("error counting placed students: %w", err)
	}

	byBranch, err := s.applicationRepo.CountByBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting applications by branch: %w", err)
	}

	return &dto.OverviewResponse{
		ActivePlacements:     activePlacements,
		RegisteredStudents:   students,
		TotalApplications:    applications,
		PlacedThisYear:       placed,
		ApplicationsByBranch: byBranch,
	}, nil
}
