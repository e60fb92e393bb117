package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
)

func TestIsEligible(t *testing.T) {
	now := time.Now()
	student := testStudent(1, models.BranchCS)

	tests := []struct {
		name   string
		mutate func(p *models.Placement)
		want   bool
	}{
		{
			name:   "open and branch matches",
			mutate: func(p *models.Placement) {},
			want:   true,
		},
		{
			name:   "inactive drive",
			mutate: func(p *models.Placement) { p.Status = models.PlacementInactive },
			want:   false,
		},
		{
			name:   "deadline passed",
			mutate: func(p *models.Placement) { p.Deadline = now.AddDate(0, 0, -1) },
			want:   false,
		},
		{
			name:   "deadline today still open",
			mutate: func(p *models.Placement) { p.Deadline = now },
			want:   true,
		},
		{
			name:   "branch not listed",
			mutate: func(p *models.Placement) { p.Branches = []models.Branch{models.BranchME} },
			want:   false,
		},
		{
			name: "branch among several",
			mutate: func(p *models.Placement) {
				p.Branches = []models.Branch{models.BranchME, models.BranchCS, models.BranchIT}
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placement := testPlacement("Acme", now.AddDate(0, 0, 7))
			tt.mutate(placement)

			if got := IsEligible(student, placement, now); got != tt.want {
				t.Errorf("IsEligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsEligibleFlipsWhenDeactivated(t *testing.T) {
	s := newStores()
	service := NewEligibilityService(s.placements, s.applications)
	ctx := context.Background()
	student := testStudent(1, models.BranchCS)

	placement := testPlacement("Acme", daysFromNow(7))
	if err := s.placements.Create(ctx, placement); err != nil {
		t.Fatalf("seeding placement: %v", err)
	}

	available, err := service.AvailablePlacements(ctx, student, time.Now())
	if err != nil {
		t.Fatalf("AvailablePlacements() error = %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("AvailablePlacements() returned %d, want 1", len(available))
	}

	if err := s.placements.Deactivate(ctx, placement.ID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	available, err = service.AvailablePlacements(ctx, student, time.Now())
	if err != nil {
		t.Fatalf("AvailablePlacements() error = %v", err)
	}
	if len(available) != 0 {
		t.Errorf("AvailablePlacements() after deactivation returned %d, want 0", len(available))
	}
}

func TestAvailablePlacementsFiltersByBranch(t *testing.T) {
	s := newStores()
	service := NewEligibilityService(s.placements, s.applications)
	ctx := context.Background()

	forCS := testPlacement("Acme", daysFromNow(7), models.BranchCS)
	forME := testPlacement("Globex", daysFromNow(7), models.BranchME)
	forBoth := testPlacement("Initech", daysFromNow(7), models.BranchCS, models.BranchME)
	for _, p := range []*models.Placement{forCS, forME, forBoth} {
		if err := s.placements.Create(ctx, p); err != nil {
			t.Fatalf("seeding placement: %v", err)
		}
	}

	available, err := service.AvailablePlacements(ctx, testStudent(1, models.BranchCS), time.Now())
	if err != nil {
		t.Fatalf("AvailablePlacements() error = %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("AvailablePlacements() returned %d, want 2", len(available))
	}
	for _, p := range available {
		if p.Company == "Globex" {
			t.Error("AvailablePlacements() included a drive for another branch")
		}
	}
}

func TestUpcomingPlacementsCapAndOrder(t *testing.T) {
	s := newStores()
	service := NewEligibilityService(s.placements, s.applications)
	ctx := context.Background()

	// Five open drives with staggered deadlines, created out of order
	for i, days := range []int{9, 3, 12, 6, 15} {
		p := testPlacement(fmt.Sprintf("Company%d", i), daysFromNow(days))
		if err := s.placements.Create(ctx, p); err != nil {
			t.Fatalf("seeding placement: %v", err)
		}
	}

	upcoming, err := service.UpcomingPlacements(ctx, testStudent(1, models.BranchCS), time.Now())
	if err != nil {
		t.Fatalf("UpcomingPlacements() error = %v", err)
	}
	if len(upcoming) != 3 {
		t.Fatalf("UpcomingPlacements() returned %d, want 3", len(upcoming))
	}
	for i := 1; i < len(upcoming); i++ {
		if upcoming[i].Deadline.Before(upcoming[i-1].Deadline) {
			t.Errorf("UpcomingPlacements() not ordered by soonest deadline")
		}
	}
	// The three soonest are days 3, 6 and 9
	if upcoming[0].Company != "Company1" {
		t.Errorf("first upcoming = %q, want Company1 (closes soonest)", upcoming[0].Company)
	}
}

func TestStanding(t *testing.T) {
	s := newStores()
	service := NewEligibilityService(s.placements, s.applications)
	applications := NewApplicationService(s.applications, s.placements)
	ctx := context.Background()

	placement := testPlacement("Acme", daysFromNow(7))
	if err := s.placements.Create(ctx, placement); err != nil {
		t.Fatalf("seeding placement: %v", err)
	}

	standing, err := service.Standing(ctx, 10)
	if err != nil {
		t.Fatalf("Standing() error = %v", err)
	}
	if standing != models.StandingSearching {
		t.Errorf("Standing() with no applications = %q, want searching", standing)
	}

	application, err := applications.Apply(ctx, 10, placement.ID, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	standing, _ = service.Standing(ctx, 10)
	if standing != models.StandingSearching {
		t.Errorf("Standing() with pending application = %q, want searching", standing)
	}

	if _, err := applications.Decide(ctx, application.ID, models.ApplicationApproved); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	standing, _ = service.Standing(ctx, 10)
	if standing != models.StandingPlaced {
		t.Errorf("Standing() with approved application = %q, want placed", standing)
	}

	// Rejecting flips it back
	if _, err := applications.Decide(ctx, application.ID, models.ApplicationRejected); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	standing, _ = service.Standing(ctx, 10)
	if standing != models.StandingSearching {
		t.Errorf("Standing() after rejection = %q, want searching", standing)
	}
}
