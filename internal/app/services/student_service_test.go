package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/auth"
)

func TestCreateStudentDerivesStudentNo(t *testing.T) {
	s := newStores()
	service := NewStudentService(s.users)
	ctx := context.Background()
	year := time.Now().Year()

	first, err := service.CreateStudent(ctx, "Asha", "asha@example.com", "password123", models.BranchCS, 8.2)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if want := fmt.Sprintf("CS%d001", year); first.StudentNo != want {
		t.Errorf("studentNo = %q, want %q", first.StudentNo, want)
	}

	// Second student in the same branch gets the next ordinal
	second, err := service.CreateStudent(ctx, "Ravi", "ravi@example.com", "password123", models.BranchCS, 7.4)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if want := fmt.Sprintf("CS%d002", year); second.StudentNo != want {
		t.Errorf("studentNo = %q, want %q", second.StudentNo, want)
	}

	// A different branch has its own counter
	other, err := service.CreateStudent(ctx, "Mina", "mina@example.com", "password123", models.BranchECE, 9.1)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if want := fmt.Sprintf("ECE%d001", year); other.StudentNo != want {
		t.Errorf("studentNo = %q, want %q", other.StudentNo, want)
	}
}

func TestCreateStudentHashesPassword(t *testing.T) {
	s := newStores()
	service := NewStudentService(s.users)

	student, err := service.CreateStudent(context.Background(), "Asha", "asha@example.com", "password123", models.BranchCS, 8.2)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if student.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(student.Password, "$2") {
		t.Errorf("password %q does not look like a bcrypt hash", student.Password)
	}
	if !auth.CheckPassword(student.Password, "password123") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestCreateStudentValidation(t *testing.T) {
	s := newStores()
	service := NewStudentService(s.users)
	ctx := context.Background()

	if _, err := service.CreateStudent(ctx, "X", "x@example.com", "pw", "aero", 8); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("CreateStudent() with unknown branch error = %v, want ErrValidationFailed", err)
	}
	if _, err := service.CreateStudent(ctx, "X", "x@example.com", "pw", models.BranchCS, 10.5); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("CreateStudent() with cgpa 10.5 error = %v, want ErrValidationFailed", err)
	}
}

func TestCreateStudentEmailConflict(t *testing.T) {
	s := newStores()
	service := NewStudentService(s.users)
	ctx := context.Background()

	if _, err := service.CreateStudent(ctx, "Asha", "asha@example.com", "password123", models.BranchCS, 8.2); err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}

	_, err := service.CreateStudent(ctx, "Other", "asha@example.com", "password123", models.BranchIT, 7.0)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("CreateStudent() with taken email error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	s := newStores()
	service := NewStudentService(s.users)
	ctx := context.Background()

	student, err := service.CreateStudent(ctx, "Asha", "asha@example.com", "password123", models.BranchCS, 8.2)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}

	phone := "555-0134"
	updated, err := service.UpdateProfile(ctx, student.ID, nil, nil, &phone, nil, nil)
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if updated.Phone != "555-0134" {
		t.Errorf("phone = %q, want 555-0134", updated.Phone)
	}
	if updated.Name != "Asha" {
		t.Errorf("name changed to %q by a nil field", updated.Name)
	}
	if updated.Email != "asha@example.com" {
		t.Errorf("email changed to %q by a nil field", updated.Email)
	}
	if updated.CGPA != 8.2 {
		t.Errorf("cgpa changed to %v by a nil field", updated.CGPA)
	}
}

func TestUpdateProfileImmutableFields(t *testing.T) {
	s := newStores()
	service := NewStudentService(s.users)
	ctx := context.Background()

	student, err := service.CreateStudent(ctx, "Asha", "asha@example.com", "password123", models.BranchCS, 8.2)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}

	name := "Asha K"
	updated, err := service.UpdateProfile(ctx, student.ID, &name, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if updated.Branch != models.BranchCS {
		t.Errorf("branch = %q, must not change", updated.Branch)
	}
	if updated.StudentNo != student.StudentNo {
		t.Errorf("studentNo = %q, must not change", updated.StudentNo)
	}
	if updated.Role != models.RoleStudent {
		t.Errorf("role = %q, must not change", updated.Role)
	}
}

func TestUpdateProfileCGPARange(t *testing.T) {
	s := newStores()
	service := NewStudentService(s.users)
	ctx := context.Background()

	student, err := service.CreateStudent(ctx, "Asha", "asha@example.com", "password123", models.BranchCS, 8.2)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}

	bad := 11.0
	if _, err := service.UpdateProfile(ctx, student.ID, nil, nil, nil, nil, &bad); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateProfile() with cgpa 11 error = %v, want ErrValidationFailed", err)
	}
}

func TestUpdateProfileMissingUser(t *testing.T) {
	service := NewStudentService(newStores().users)

	name := "Ghost"
	_, err := service.UpdateProfile(context.Background(), 999, &name, nil, nil, nil, nil)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("UpdateProfile(999) error = %v, want ErrUserNotFound", err)
	}
}

func TestListStudentsBranchFilter(t *testing.T) {
	s := newStores()
	service := NewStudentService(s.users)
	ctx := context.Background()

	for i, branch := range []models.Branch{models.BranchCS, models.BranchCS, models.BranchME} {
		email := fmt.Sprintf("student%d@example.com", i)
		if _, err := service.CreateStudent(ctx, "S", email, "password123", branch, 7); err != nil {
			t.Fatalf("CreateStudent() error = %v", err)
		}
	}

	tests := []struct {
		filter string
		want   int
	}{
		{filter: "", want: 3},
		{filter: "all", want: 3},
		{filter: "cs", want: 2},
		{filter: "me", want: 1},
		{filter: "it", want: 0},
	}

	for _, tt := range tests {
		students, err := service.ListStudents(ctx, tt.filter)
		if err != nil {
			t.Fatalf("ListStudents(%q) error = %v", tt.filter, err)
		}
		if len(students) != tt.want {
			t.Errorf("ListStudents(%q) returned %d, want %d", tt.filter, len(students), tt.want)
		}
	}

	if _, err := service.ListStudents(ctx, "aero"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("ListStudents(aero) error = %v, want ErrValidationFailed", err)
	}
}
