package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

// ApplicationRepository is an in-memory application store. It keeps a reference
// to the user store so branch-grouped counts and admin listings can resolve the
// owning student, the way the postgres implementation joins users.
type ApplicationRepository struct {
	mu           sync.Mutex
	applications map[int64]*models.Application
	users        *UserRepository
}

// NewApplicationRepository creates an empty in-memory application store
func NewApplicationRepository(users *UserRepository) *ApplicationRepository {
	return &ApplicationRepository{
		applications: make(map[int64]*models.Application),
		users:        users,
	}
}

// nextID assigns max(existing ids)+1, or 1 when empty. Withdrawals hard-delete
// records, so an id can be reused after the highest application is withdrawn.
func (r *ApplicationRepository) nextID() int64 {
	var max int64
	for id := range r.applications {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Create stores a new application, enforcing one application per
// (student, placement) pair.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.applications {
		if existing.StudentID == application.StudentID && existing.PlacementID == application.PlacementID {
			return apperrors.ErrAlreadyApplied
		}
	}

	application.ID = r.nextID()
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now

	clone := *application
	r.applications[application.ID] = &clone
	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	application, ok := r.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}

	clone := *application
	return &clone, nil
}

// GetByStudentAndPlacement retrieves the application for a pair, or nil
func (r *ApplicationRepository) GetByStudentAndPlacement(ctx context.Context, studentID, placementID int64) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, application := range r.applications {
		if application.StudentID == studentID && application.PlacementID == placementID {
			clone := *application
			return &clone, nil
		}
	}

	return nil, nil
}

// ListByStudent retrieves a student's applications, newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var applications []*models.Application
	for _, application := range r.applications {
		if application.StudentID == studentID {
			clone := *application
			applications = append(applications, &clone)
		}
	}

	sortNewestFirst(applications)
	return applications, nil
}

// ListAll retrieves every application with the owning student attached
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var applications []*models.Application
	for _, application := range r.applications {
		clone := *application
		if r.users != nil {
			if student, err := r.users.GetByID(ctx, clone.StudentID); err == nil {
				clone.Student = student
			}
		}
		applications = append(applications, &clone)
	}

	sortNewestFirst(applications)
	return applications, nil
}

// sortNewestFirst orders by applied date descending, breaking ties by id
func sortNewestFirst(applications []*models.Application) {
	sort.Slice(applications, func(i, j int) bool {
		if applications[i].AppliedDate.Equal(applications[j].AppliedDate) {
			return applications[i].ID > applications[j].ID
		}
		return applications[i].AppliedDate.After(applications[j].AppliedDate)
	})
}

// UpdateStatus overwrites the status of an application
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	application, ok := r.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}

	application.Status = status
	application.UpdatedAt = time.Now()
	return nil
}

// Delete removes an application record
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.applications[id]; !ok {
		return apperrors.ErrApplicationNotFound
	}

	delete(r.applications, id)
	return nil
}

// HasApprovedForStudent reports whether the student holds any approved application
func (r *ApplicationRepository) HasApprovedForStudent(ctx context.Context, studentID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, application := range r.applications {
		if application.StudentID == studentID && application.Status == models.ApplicationApproved {
			return true, nil
		}
	}

	return false, nil
}

// CountAll counts every application
func (r *ApplicationRepository) CountAll(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.applications), nil
}

// CountApprovedInYear counts approved applications applied in the given year
func (r *ApplicationRepository) CountApprovedInYear(ctx context.Context, year int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, application := range r.applications {
		if application.Status == models.ApplicationApproved && application.AppliedDate.Year() == year {
			count++
		}
	}

	return count, nil
}

// CountByBranch counts applications grouped by the owning student's branch
func (r *ApplicationRepository) CountByBranch(ctx context.Context) (map[models.Branch]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[models.Branch]int)
	for _, application := range r.applications {
		var branch models.Branch
		if r.users != nil {
			if student, err := r.users.GetByID(ctx, application.StudentID); err == nil {
				branch = student.Branch
			}
		}
		counts[branch]++
	}

	return counts, nil
}
