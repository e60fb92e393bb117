package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

func TestPlacementServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Placement)
		wantErr error
	}{
		{
			name:    "empty company",
			mutate:  func(p *models.Placement) { p.Company = "" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "empty position",
			mutate:  func(p *models.Placement) { p.Position = "" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "zero package",
			mutate:  func(p *models.Placement) { p.Package = 0 },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "no branches",
			mutate:  func(p *models.Placement) { p.Branches = nil },
			wantErr: apperrors.ErrNoEligibleBranch,
		},
		{
			name:    "unknown branch",
			mutate:  func(p *models.Placement) { p.Branches = []models.Branch{"aero"} },
			wantErr: apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewPlacementService(newStores().placements)
			placement := testPlacement("Acme", daysFromNow(7))
			tt.mutate(placement)

			err := service.Create(context.Background(), placement)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlacementServiceCreateIsActive(t *testing.T) {
	store := newStores().placements
	service := NewPlacementService(store)

	placement := testPlacement("Acme", daysFromNow(7))
	placement.Status = models.PlacementInactive

	if err := service.Create(context.Background(), placement); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if placement.ID == 0 {
		t.Error("Create() did not assign an id")
	}
	if placement.Status != models.PlacementActive {
		t.Errorf("Create() status = %q, want active", placement.Status)
	}
}

func TestPlacementServiceUpdateReactivates(t *testing.T) {
	store := newStores().placements
	service := NewPlacementService(store)
	ctx := context.Background()

	placement := testPlacement("Acme", daysFromNow(7))
	if err := service.Create(ctx, placement); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := service.Deactivate(ctx, placement.ID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	placement.Position = "Data Engineer"
	updated, err := service.Update(ctx, placement)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != models.PlacementActive {
		t.Errorf("Update() status = %q, want active", updated.Status)
	}
	if updated.Position != "Data Engineer" {
		t.Errorf("Update() position = %q, want Data Engineer", updated.Position)
	}
}

func TestPlacementServiceDeactivateKeepsRecord(t *testing.T) {
	store := newStores().placements
	service := NewPlacementService(store)
	ctx := context.Background()

	placement := testPlacement("Acme", daysFromNow(7))
	if err := service.Create(ctx, placement); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := service.Deactivate(ctx, placement.ID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	got, err := service.GetByID(ctx, placement.ID)
	if err != nil {
		t.Fatalf("GetByID() after deactivation error = %v", err)
	}
	if got.Status != models.PlacementInactive {
		t.Errorf("status after deactivation = %q, want inactive", got.Status)
	}

	all, err := service.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListAll() returned %d placements, want 1", len(all))
	}
}

func TestPlacementServiceDeactivateMissing(t *testing.T) {
	service := NewPlacementService(newStores().placements)

	err := service.Deactivate(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Errorf("Deactivate(99) error = %v, want ErrPlacementNotFound", err)
	}
}

func TestPlacementServiceIDsNotReused(t *testing.T) {
	store := newStores().placements
	service := NewPlacementService(store)
	ctx := context.Background()

	first := testPlacement("Acme", daysFromNow(7))
	if err := service.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := service.Deactivate(ctx, first.ID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	second := testPlacement("Globex", daysFromNow(10))
	if err := service.Create(ctx, second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("id %d reused after deactivation", first.ID)
	}
	if second.ID != first.ID+1 {
		t.Errorf("second id = %d, want %d", second.ID, first.ID+1)
	}
}

func TestPlacementServiceIDsContinueFromHighest(t *testing.T) {
	store := newStores().placements
	service := NewPlacementService(store)
	ctx := context.Background()

	for _, id := range []int64{1, 3, 5} {
		seeded := testPlacement("Seeded", daysFromNow(7))
		seeded.ID = id
		store.Seed(seeded)
	}

	placement := testPlacement("Acme", daysFromNow(7))
	if err := service.Create(ctx, placement); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if placement.ID != 6 {
		t.Errorf("new id = %d, want 6 (one past the highest existing id)", placement.ID)
	}
}
