package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/helpers"
)

// PlacementRepository handles database operations for placement drives
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
	}
}

const placementColumns = `id, company, position, package, eligibility, description, deadline, branches, status, COALESCE(created_by, 0), created_at, updated_at`

// scanPlacement scans a full placement row in placementColumns order
func scanPlacement(row pgx.Row) (*models.Placement, error) {
	var placement models.Placement
	var branches []string
	err := row.Scan(
		&placement.ID,
		&placement.Company,
		&placement.Position,
		&placement.Package,
		&placement.Eligibility,
		&placement.Description,
		&placement.Deadline,
		&branches,
		&placement.Status,
		&placement.CreatedBy,
		&placement.CreatedAt,
		&placement.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	placement.Branches = make([]models.Branch, len(branches))
	for i, b := range branches {
		placement.Branches[i] = models.Branch(b)
	}

	return &placement, nil
}

// branchesToStrings converts the branch set for a text[] parameter
func branchesToStrings(branches []models.Branch) []string {
	out := make([]string, len(branches))
	for i, b := range branches {
		out[i] = string(b)
	}
	return out
}

// Create inserts a new placement
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	query := `
		INSERT INTO placements (company, position, package, eligibility, description, deadline, branches, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		placement.Company,
		placement.Position,
		placement.Package,
		placement.Eligibility,
		placement.Description,
		placement.Deadline,
		branchesToStrings(placement.Branches),
		placement.Status,
		nullableID(placement.CreatedBy),
	).Scan(&placement.ID, &placement.CreatedAt, &placement.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating placement: %w", err)
	}

	return nil
}

// nullableID returns nil for zero ids so optional FK columns stay NULL
func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

// GetByID retrieves a placement by ID
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements WHERE id = $1`

	placement, err := scanPlacement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}

	return placement, nil
}

// GetAll retrieves every placement regardless of status, for administrative views
func (r *PlacementRepository) GetAll(ctx context.Context) ([]*models.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements ORDER BY id`

	return r.queryPlacements(ctx, query)
}

// GetOpenForBranch retrieves active placements whose deadline has not passed as of
// the given instant and which accept the branch, soonest deadline first.
func (r *PlacementRepository) GetOpenForBranch(ctx context.Context, branch models.Branch, asOf time.Time) ([]*models.Placement, error) {
	query := `
		SELECT ` + placementColumns + `
		FROM placements
		WHERE status = $1 AND deadline >= $2 AND $3 = ANY(branches)
		ORDER BY deadline ASC, id ASC
	`

	return r.queryPlacements(ctx, query, models.PlacementActive, helpers.StartOfDay(asOf), string(branch))
}

func (r *PlacementRepository) queryPlacements(ctx context.Context, query string, args ...interface{}) ([]*models.Placement, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing placements: %w", err)
	}
	defer rows.Close()

	var placements []*models.Placement
	for rows.Next() {
		placement, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return placements, nil
}

// Update replaces the mutable fields of a placement and resets it to active
func (r *PlacementRepository) Update(ctx context.Context, placement *models.Placement) error {
	query := `
		UPDATE placements
		SET company = $1, position = $2, package = $3, eligibility = $4, description = $5,
		    deadline = $6, branches = $7, status = $8, updated_at = NOW()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		placement.Company,
		placement.Position,
		placement.Package,
		placement.Eligibility,
		placement.Description,
		placement.Deadline,
		branchesToStrings(placement.Branches),
		placement.Status,
		placement.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating placement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// Deactivate marks a placement inactive. Placements are never removed so
// applications can never reference a missing drive.
func (r *PlacementRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE placements SET status = $1, updated_at = NOW() WHERE id = $2`,
		models.PlacementInactive, id)
	if err != nil {
		return fmt.Errorf("error deactivating placement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// CountByStatus counts placements in the given status
func (r *PlacementRepository) CountByStatus(ctx context.Context, status models.PlacementStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM placements WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting placements: %w", err)
	}

	return count, nil
}
