package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/auth"
)

// StudentService handles student account and profile operations
type StudentService struct {
	userRepo repositories.IUserRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(userRepo repositories.IUserRepository) *StudentService {
	return &StudentService{
		userRepo: userRepo,
	}
}

// deriveStudentNo builds the student number for a new registration:
// branch code uppercased, the current year, and the branch's registration
// ordinal zero-padded to three digits. Self-registration and administrative
// adds share this single rule.
func (s *StudentService) deriveStudentNo(ctx context.Context, branch models.Branch) (string, error) {
	count, err := s.userRepo.CountStudentsByBranch(ctx, branch)
	if err != nil {
		return "", fmt.Errorf("error counting branch students: %w", err)
	}

	return fmt.Sprintf("%s%d%03d", strings.ToUpper(string(branch)), time.Now().Year(), count+1), nil
}

// CreateStudent registers a student account with a derived student number and a
// bcrypt-hashed password. Fails with a conflict when the email is taken.
func (s *StudentService) CreateStudent(ctx context.Context, name, email, password string, branch models.Branch, cgpa float64) (*models.User, error) {
	if !branch.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown branch code %q", branch))
	}
	if cgpa < 0 || cgpa > 10 {
		return nil, apperrors.NewValidationError("cgpa must be between 0.0 and 10.0")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	studentNo, err := s.deriveStudentNo(ctx, branch)
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		Role:      models.RoleStudent,
		Branch:    branch,
		StudentNo: studentNo,
		CGPA:      cgpa,
	}

	if err := s.userRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetByID retrieves a user account
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies a partial update to the mutable profile fields of a
// user: name, email, phone, address and CGPA. Branch, role and student number
// are immutable after creation. Nil fields keep their current value.
func (s *StudentService) UpdateProfile(ctx context.Context, userID int64, name, email, phone, address *string, cgpa *float64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}
	if phone != nil {
		user.Phone = *phone
	}
	if address != nil {
		user.Address = *address
	}
	if cgpa != nil {
		if *cgpa < 0 || *cgpa > 10 {
			return nil, apperrors.NewValidationError("cgpa must be between 0.0 and 10.0")
		}
		user.CGPA = *cgpa
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// ListStudents retrieves student accounts, filtered by branch when the filter
// names one ("all" or empty returns every branch).
func (s *StudentService) ListStudents(ctx context.Context, branch string) ([]*models.User, error) {
	if branch != "" && branch != "all" && !models.Branch(branch).IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown branch code %q", branch))
	}

	return s.userRepo.ListStudents(ctx, branch)
}
