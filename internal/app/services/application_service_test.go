package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *stores, *models.Placement) {
	t.Helper()

	s := newStores()
	service := NewApplicationService(s.applications, s.placements)

	placement := testPlacement("Acme", daysFromNow(7))
	if err := s.placements.Create(context.Background(), placement); err != nil {
		t.Fatalf("seeding placement: %v", err)
	}

	return service, s, placement
}

func TestApplyHappyPath(t *testing.T) {
	service, _, placement := newApplicationFixture(t)

	application, err := service.Apply(context.Background(), 10, placement.ID, "please consider me")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if application.ID == 0 {
		t.Error("Apply() did not assign an id")
	}
	if application.Status != models.ApplicationPending {
		t.Errorf("status = %q, want pending", application.Status)
	}
	if application.Company != placement.Company || application.Position != placement.Position {
		t.Errorf("snapshot = %q/%q, want %q/%q",
			application.Company, application.Position, placement.Company, placement.Position)
	}
	if application.CoverLetter != "please consider me" {
		t.Errorf("coverLetter = %q", application.CoverLetter)
	}
}

func TestApplyMissingPlacement(t *testing.T) {
	service, _, _ := newApplicationFixture(t)

	_, err := service.Apply(context.Background(), 10, 999, "")
	if !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Errorf("Apply() error = %v, want ErrPlacementNotFound", err)
	}
}

func TestApplyDeadlinePassed(t *testing.T) {
	service, s, _ := newApplicationFixture(t)

	expired := testPlacement("Globex", daysFromNow(-1))
	if err := s.placements.Create(context.Background(), expired); err != nil {
		t.Fatalf("seeding placement: %v", err)
	}

	_, err := service.Apply(context.Background(), 10, expired.ID, "")
	if !errors.Is(err, apperrors.ErrDeadlineExpired) {
		t.Errorf("Apply() error = %v, want ErrDeadlineExpired", err)
	}
}

func TestApplyOnDeadlineDaySucceeds(t *testing.T) {
	service, s, _ := newApplicationFixture(t)

	// Deadline is today: open through the end of the day
	today := testPlacement("Globex", daysFromNow(0))
	if err := s.placements.Create(context.Background(), today); err != nil {
		t.Fatalf("seeding placement: %v", err)
	}

	if _, err := service.Apply(context.Background(), 10, today.ID, ""); err != nil {
		t.Errorf("Apply() on the deadline day error = %v, want success", err)
	}
}

func TestApplyDuplicate(t *testing.T) {
	service, _, placement := newApplicationFixture(t)
	ctx := context.Background()

	if _, err := service.Apply(ctx, 10, placement.ID, ""); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}

	_, err := service.Apply(ctx, 10, placement.ID, "")
	if !errors.Is(err, apperrors.ErrAlreadyApplied) {
		t.Errorf("second Apply() error = %v, want ErrAlreadyApplied", err)
	}

	// A different student is unaffected
	if _, err := service.Apply(ctx, 11, placement.ID, ""); err != nil {
		t.Errorf("Apply() by another student error = %v", err)
	}
}

func TestApplyDeadlineCheckedBeforeDuplicate(t *testing.T) {
	service, s, _ := newApplicationFixture(t)
	ctx := context.Background()

	placement := testPlacement("Globex", daysFromNow(1))
	if err := s.placements.Create(ctx, placement); err != nil {
		t.Fatalf("seeding placement: %v", err)
	}
	if _, err := service.Apply(ctx, 10, placement.ID, ""); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}

	// Close the drive, then reapply: the deadline failure must win
	placement.Deadline = daysFromNow(-2)
	if err := s.placements.Update(ctx, placement); err != nil {
		t.Fatalf("updating placement: %v", err)
	}

	_, err := service.Apply(ctx, 10, placement.ID, "")
	if !errors.Is(err, apperrors.ErrDeadlineExpired) {
		t.Errorf("Apply() error = %v, want ErrDeadlineExpired before ErrAlreadyApplied", err)
	}
}

func TestDecide(t *testing.T) {
	service, _, placement := newApplicationFixture(t)
	ctx := context.Background()

	application, err := service.Apply(ctx, 10, placement.ID, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	decided, err := service.Decide(ctx, application.ID, models.ApplicationApproved)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if decided.Status != models.ApplicationApproved {
		t.Errorf("status = %q, want approved", decided.Status)
	}

	// A later decision overwrites an earlier one
	decided, err = service.Decide(ctx, application.ID, models.ApplicationRejected)
	if err != nil {
		t.Fatalf("second Decide() error = %v", err)
	}
	if decided.Status != models.ApplicationRejected {
		t.Errorf("status = %q, want rejected", decided.Status)
	}
}

func TestDecideInvalidStatus(t *testing.T) {
	service, _, placement := newApplicationFixture(t)
	ctx := context.Background()

	application, err := service.Apply(ctx, 10, placement.ID, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	for _, status := range []models.ApplicationStatus{models.ApplicationPending, "accepted", ""} {
		if _, err := service.Decide(ctx, application.ID, status); !errors.Is(err, apperrors.ErrInvalidDecision) {
			t.Errorf("Decide(%q) error = %v, want ErrInvalidDecision", status, err)
		}
	}
}

func TestDecideMissingApplication(t *testing.T) {
	service, _, _ := newApplicationFixture(t)

	_, err := service.Decide(context.Background(), 999, models.ApplicationApproved)
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Errorf("Decide(999) error = %v, want ErrApplicationNotFound", err)
	}
}

func TestWithdrawOwnershipEnforced(t *testing.T) {
	service, _, placement := newApplicationFixture(t)
	ctx := context.Background()

	application, err := service.Apply(ctx, 10, placement.ID, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	err = service.Withdraw(ctx, 11, application.ID)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Withdraw() by non-owner error = %v, want ErrPermissionDenied", err)
	}

	// The application must still be there
	if _, err := service.applicationRepo.GetByID(ctx, application.ID); err != nil {
		t.Errorf("application removed despite refused withdrawal: %v", err)
	}
}

func TestWithdrawThenReapply(t *testing.T) {
	service, _, placement := newApplicationFixture(t)
	ctx := context.Background()

	application, err := service.Apply(ctx, 10, placement.ID, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if err := service.Withdraw(ctx, 10, application.ID); err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}

	listed, err := service.ListFor(ctx, 10)
	if err != nil {
		t.Fatalf("ListFor() error = %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("ListFor() after withdrawal returned %d applications, want 0", len(listed))
	}

	// The drive is still open, so reapplying works
	if _, err := service.Apply(ctx, 10, placement.ID, ""); err != nil {
		t.Errorf("Apply() after withdrawal error = %v", err)
	}
}

func TestWithdrawMissingApplication(t *testing.T) {
	service, _, _ := newApplicationFixture(t)

	err := service.Withdraw(context.Background(), 10, 999)
	if !errors.Is(err, apperrors.ErrApplicationNotFound) {
		t.Errorf("Withdraw(999) error = %v, want ErrApplicationNotFound", err)
	}
}

func TestListForIsScopedToStudent(t *testing.T) {
	service, s, placement := newApplicationFixture(t)
	ctx := context.Background()

	other := testPlacement("Globex", daysFromNow(3))
	if err := s.placements.Create(ctx, other); err != nil {
		t.Fatalf("seeding placement: %v", err)
	}

	if _, err := service.Apply(ctx, 10, placement.ID, ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := service.Apply(ctx, 10, other.ID, ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := service.Apply(ctx, 11, placement.ID, ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	mine, err := service.ListFor(ctx, 10)
	if err != nil {
		t.Fatalf("ListFor() error = %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("ListFor(10) returned %d applications, want 2", len(mine))
	}
	for _, application := range mine {
		if application.StudentID != 10 {
			t.Errorf("ListFor(10) returned application of student %d", application.StudentID)
		}
	}

	all, err := service.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListAll() returned %d applications, want 3", len(all))
	}
}

func TestApplicationSnapshotSurvivesPlacementEdit(t *testing.T) {
	service, s, placement := newApplicationFixture(t)
	ctx := context.Background()

	application, err := service.Apply(ctx, 10, placement.ID, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	placement.Company = "Renamed Corp"
	placement.Position = "Renamed Role"
	if err := s.placements.Update(ctx, placement); err != nil {
		t.Fatalf("updating placement: %v", err)
	}

	got, err := service.applicationRepo.GetByID(ctx, application.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Company != "Acme" {
		t.Errorf("company snapshot = %q, want Acme", got.Company)
	}
}
