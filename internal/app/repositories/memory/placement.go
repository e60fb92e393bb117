package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/helpers"
)

// PlacementRepository is an in-memory placement store
type PlacementRepository struct {
	mu         sync.Mutex
	placements map[int64]*models.Placement
}

// NewPlacementRepository creates an empty in-memory placement store
func NewPlacementRepository() *PlacementRepository {
	return &PlacementRepository{
		placements: make(map[int64]*models.Placement),
	}
}

// nextID assigns max(existing ids)+1, or 1 when empty. Deactivated placements
// stay in the store, so an id is never handed out twice.
func (r *PlacementRepository) nextID() int64 {
	var max int64
	for id := range r.placements {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Seed inserts a placement with a caller-chosen id, for tests that need a
// specific id layout.
func (r *PlacementRepository) Seed(placement *models.Placement) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *placement
	r.placements[placement.ID] = &clone
}

// Create stores a new placement
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	placement.ID = r.nextID()
	now := time.Now()
	placement.CreatedAt = now
	placement.UpdatedAt = now

	clone := *placement
	r.placements[placement.ID] = &clone
	return nil
}

// GetByID retrieves a placement by ID
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	placement, ok := r.placements[id]
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}

	clone := *placement
	return &clone, nil
}

// GetAll retrieves every placement regardless of status
func (r *PlacementRepository) GetAll(ctx context.Context) ([]*models.Placement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var placements []*models.Placement
	for _, placement := range r.placements {
		clone := *placement
		placements = append(placements, &clone)
	}

	sortByID(placements, func(p *models.Placement) int64 { return p.ID })
	return placements, nil
}

// GetOpenForBranch retrieves active, still-open placements accepting the branch,
// soonest deadline first.
func (r *PlacementRepository) GetOpenForBranch(ctx context.Context, branch models.Branch, asOf time.Time) ([]*models.Placement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var placements []*models.Placement
	for _, placement := range r.placements {
		if placement.Status != models.PlacementActive {
			continue
		}
		if helpers.DeadlinePassed(placement.Deadline, asOf) {
			continue
		}
		if !placement.AcceptsBranch(branch) {
			continue
		}
		clone := *placement
		placements = append(placements, &clone)
	}

	sortByDeadline(placements)
	return placements, nil
}

// sortByDeadline orders ascending by deadline, breaking ties by id
func sortByDeadline(placements []*models.Placement) {
	sort.Slice(placements, func(i, j int) bool {
		if placements[i].Deadline.Equal(placements[j].Deadline) {
			return placements[i].ID < placements[j].ID
		}
		return placements[i].Deadline.Before(placements[j].Deadline)
	})
}

// Update replaces the mutable fields of a placement
func (r *PlacementRepository) Update(ctx context.Context, placement *models.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.placements[placement.ID]
	if !ok {
		return apperrors.ErrPlacementNotFound
	}

	existing.Company = placement.Company
	existing.Position = placement.Position
	existing.Package = placement.Package
	existing.Eligibility = placement.Eligibility
	existing.Description = placement.Description
	existing.Deadline = placement.Deadline
	existing.Branches = append([]models.Branch(nil), placement.Branches...)
	existing.Status = placement.Status
	existing.UpdatedAt = time.Now()

	return nil
}

// Deactivate marks a placement inactive without removing it
func (r *PlacementRepository) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	placement, ok := r.placements[id]
	if !ok {
		return apperrors.ErrPlacementNotFound
	}

	placement.Status = models.PlacementInactive
	placement.UpdatedAt = time.Now()
	return nil
}

// CountByStatus counts placements in the given status
func (r *PlacementRepository) CountByStatus(ctx context.Context, status models.PlacementStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, placement := range r.placements {
		if placement.Status == status {
			count++
		}
	}

	return count, nil
}
