package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

const applicationColumns = `id, student_id, placement_id, company, position, applied_date, status, COALESCE(cover_letter, ''), created_at, updated_at`

// scanApplication scans a full application row in applicationColumns order
func scanApplication(row pgx.Row) (*models.Application, error) {
	var application models.Application
	err := row.Scan(
		&application.ID,
		&application.StudentID,
		&application.PlacementID,
		&application.Company,
		&application.Position,
		&application.AppliedDate,
		&application.Status,
		&application.CoverLetter,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// Create inserts a new application. The unique constraint on
// (student_id, placement_id) is the authoritative duplicate guard.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (student_id, placement_id, company, position, applied_date, status, cover_letter)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		application.StudentID,
		application.PlacementID,
		application.Company,
		application.Position,
		application.AppliedDate,
		application.Status,
		application.CoverLetter,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_placement_key") {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	application, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return application, nil
}

// GetByStudentAndPlacement retrieves the application for a (student, placement)
// pair, or nil when none exists.
func (r *ApplicationRepository) GetByStudentAndPlacement(ctx context.Context, studentID, placementID int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE student_id = $1 AND placement_id = $2`

	application, err := scanApplication(r.db.QueryRow(ctx, query, studentID, placementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving application by pair: %w", err)
	}

	return application, nil
}

// ListByStudent retrieves a student's applications, newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE student_id = $1 ORDER BY applied_date DESC, id DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// ListAll retrieves every application with the owning student attached, for
// administrative review views.
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.placement_id, a.company, a.position, a.applied_date,
		       a.status, COALESCE(a.cover_letter, ''), a.created_at, a.updated_at,
		       u.id, u.name, u.email, u.role, COALESCE(u.branch, ''), COALESCE(u.student_no, ''), u.cgpa
		FROM applications a
		JOIN users u ON u.id = a.student_id
		ORDER BY a.applied_date DESC, a.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		var student models.User
		err := rows.Scan(
			&application.ID,
			&application.StudentID,
			&application.PlacementID,
			&application.Company,
			&application.Position,
			&application.AppliedDate,
			&application.Status,
			&application.CoverLetter,
			&application.CreatedAt,
			&application.UpdatedAt,
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Role,
			&student.Branch,
			&student.StudentNo,
			&student.CGPA,
		)
		if err != nil {
			return nil, err
		}
		application.Student = &student
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateStatus overwrites the status of an application
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// Delete removes an application record
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// HasApprovedForStudent reports whether the student holds any approved application
func (r *ApplicationRepository) HasApprovedForStudent(ctx context.Context, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE student_id = $1 AND status = $2)`,
		studentID, models.ApplicationApproved).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking approved applications: %w", err)
	}

	return exists, nil
}

// CountAll counts every application
func (r *ApplicationRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}

	return count, nil
}

// CountApprovedInYear counts approved applications applied in the given year
func (r *ApplicationRepository) CountApprovedInYear(ctx context.Context, year int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE status = $1 AND EXTRACT(YEAR FROM applied_date) = $2`,
		models.ApplicationApproved, year).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting approved applications: %w", err)
	}

	return count, nil
}

// CountByBranch counts applications grouped by the owning student's branch
func (r *ApplicationRepository) CountByBranch(ctx context.Context) (map[models.Branch]int, error) {
	query := `
		SELECT COALESCE(u.branch, ''), COUNT(*)
		FROM applications a
		JOIN users u ON u.id = a.student_id
		GROUP BY u.branch
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting applications by branch: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Branch]int)
	for rows.Next() {
		var branch string
		var count int
		if err := rows.Scan(&branch, &count); err != nil {
			return nil, err
		}
		counts[models.Branch(branch)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
