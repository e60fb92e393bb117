package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/placement-portal/internal/app/models"
)

// IUserRepository is the storage contract for user accounts
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountStudentsByBranch(ctx context.Context, branch models.Branch) (int, error)
	CountStudents(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	ListStudents(ctx context.Context, branch string) ([]*models.User, error)
}

// IPlacementRepository is the storage contract for placement drives
type IPlacementRepository interface {
	Create(ctx context.Context, placement *models.Placement) error
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
	GetAll(ctx context.Context) ([]*models.Placement, error)
	GetOpenForBranch(ctx context.Context, branch models.Branch, asOf time.Time) ([]*models.Placement, error)
	Update(ctx context.Context, placement *models.Placement) error
	Deactivate(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status models.PlacementStatus) (int, error)
}

// IApplicationRepository is the storage contract for applications. The unique
// constraint on (student_id, placement_id) in the backing store is the
// authoritative duplicate guard; service-level checks are only the fast path.
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByStudentAndPlacement(ctx context.Context, studentID, placementID int64) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	ListAll(ctx context.Context) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	Delete(ctx context.Context, id int64) error
	HasApprovedForStudent(ctx context.Context, studentID int64) (bool, error)
	CountAll(ctx context.Context) (int, error)
	CountApprovedInYear(ctx context.Context, year int) (int, error)
	CountByBranch(ctx context.Context) (map[models.Branch]int, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        IUserRepository
	PlacementRepository   IPlacementRepository
	ApplicationRepository IApplicationRepository
}

// NewRepositories initializes postgres-backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		PlacementRepository:   NewPlacementRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
