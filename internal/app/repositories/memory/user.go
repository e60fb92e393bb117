// Package memory provides in-memory repository implementations backed by plain
// maps. They satisfy the same contracts as the postgres repositories and are
// used by the service tests and anywhere a throwaway store is enough.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

// UserRepository is an in-memory user store
type UserRepository struct {
	mu    sync.Mutex
	users map[int64]*models.User
}

// NewUserRepository creates an empty in-memory user store
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[int64]*models.User),
	}
}

// nextID assigns max(existing ids)+1, or 1 when empty. Callers never delete
// users, so ids are effectively monotonic.
func (r *UserRepository) nextID() int64 {
	var max int64
	for id := range r.users {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Create stores a new user, enforcing email and student number uniqueness
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if user.StudentNo != "" && existing.StudentNo == user.StudentNo {
			return apperrors.ErrStudentNoExists
		}
	}

	user.ID = r.nextID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	clone := *user
	return &clone, nil
}

// GetByEmailAndRole retrieves a user by email scoped to a role
func (r *UserRepository) GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email && user.Role == role {
			clone := *user
			return &clone, nil
		}
	}

	return nil, apperrors.ErrUserNotFound
}

// EmailExists checks whether any account uses the email
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}

	return false, nil
}

// CountStudentsByBranch counts registered students in a branch
func (r *UserRepository) CountStudentsByBranch(ctx context.Context, branch models.Branch) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, user := range r.users {
		if user.Role == models.RoleStudent && user.Branch == branch {
			count++
		}
	}

	return count, nil
}

// CountStudents counts all registered students
func (r *UserRepository) CountStudents(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, user := range r.users {
		if user.Role == models.RoleStudent {
			count++
		}
	}

	return count, nil
}

// UpdateProfile updates the mutable profile fields of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}

	for _, other := range r.users {
		if other.ID != user.ID && other.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	existing.Name = user.Name
	existing.Email = user.Email
	existing.Phone = user.Phone
	existing.Address = user.Address
	existing.CGPA = user.CGPA
	existing.UpdatedAt = time.Now()

	return nil
}

// ListStudents retrieves student accounts, optionally filtered by branch
func (r *UserRepository) ListStudents(ctx context.Context, branch string) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var students []*models.User
	for _, user := range r.users {
		if user.Role != models.RoleStudent {
			continue
		}
		if branch != "" && branch != "all" && string(user.Branch) != branch {
			continue
		}
		clone := *user
		students = append(students, &clone)
	}

	sortByID(students, func(u *models.User) int64 { return u.ID })
	return students, nil
}
