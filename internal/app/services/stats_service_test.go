package services

import (
	"context"
	"testing"

	"github.com/campushub/placement-portal/internal/app/models"
)

func TestStatsOverview(t *testing.T) {
	s := newStores()
	statsService := NewStatsService(s.users, s.placements, s.applications)
	studentService := NewStudentService(s.users)
	placementService := NewPlacementService(s.placements)
	applicationService := NewApplicationService(s.applications, s.placements)
	ctx := context.Background()

	csStudent, err := studentService.CreateStudent(ctx, "Asha", "asha@example.com", "password123", models.BranchCS, 8.2)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	meStudent, err := studentService.CreateStudent(ctx, "Ravi", "ravi@example.com", "password123", models.BranchME, 7.1)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}

	open := testPlacement("Acme", daysFromNow(7), models.BranchCS, models.BranchME)
	retired := testPlacement("Globex", daysFromNow(7), models.BranchCS, models.BranchME)
	for _, p := range []*models.Placement{open, retired} {
		if err := placementService.Create(ctx, p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := placementService.Deactivate(ctx, retired.ID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	first, err := applicationService.Apply(ctx, csStudent.ID, open.ID, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := applicationService.Apply(ctx, meStudent.ID, open.ID, ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := applicationService.Decide(ctx, first.ID, models.ApplicationApproved); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	overview, err := statsService.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if overview.ActivePlacements != 1 {
		t.Errorf("ActivePlacements = %d, want 1", overview.ActivePlacements)
	}
	if overview.RegisteredStudents != 2 {
		t.Errorf("RegisteredStudents = %d, want 2", overview.RegisteredStudents)
	}
	if overview.TotalApplications != 2 {
		t.Errorf("TotalApplications = %d, want 2", overview.TotalApplications)
	}
	if overview.PlacedThisYear != 1 {
		t.Errorf("PlacedThisYear = %d, want 1", overview.PlacedThisYear)
	}
	if overview.ApplicationsByBranch[models.BranchCS] != 1 {
		t.Errorf("ApplicationsByBranch[cs] = %d, want 1", overview.ApplicationsByBranch[models.BranchCS])
	}
	if overview.ApplicationsByBranch[models.BranchME] != 1 {
		t.Errorf("ApplicationsByBranch[me] = %d, want 1", overview.ApplicationsByBranch[models.BranchME])
	}
}
