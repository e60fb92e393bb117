package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/services"
	"github.com/campushub/placement-portal/internal/middleware"
)

// PlacementController handles placement drive operations
type PlacementController struct {
	placementService   *services.PlacementService
	studentService     *services.StudentService
	eligibilityService *services.EligibilityService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(
	placementService *services.PlacementService,
	studentService *services.StudentService,
	eligibilityService *services.EligibilityService,
) *PlacementController {
	return &PlacementController{
		placementService:   placementService,
		studentService:     studentService,
		eligibilityService: eligibilityService,
	}
}

// CreatePlacement handles placement creation
// @Summary Create a placement drive
// @Description Creates a new placement drive. The drive is active immediately and accepts applications through the end of its deadline day.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PlacementRequest true "Placement information"
// @Success 201 {object} dto.APIResponse{data=models.Placement} "Placement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements [post]
func (c *PlacementController) CreatePlacement(ctx *gin.Context) {
	var req dto.PlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	placement, errDetail := placementFromRequest(&req)
	if errDetail != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errDetail))
		return
	}

	if userID, ok := middleware.CurrentUserID(ctx); ok {
		placement.CreatedBy = userID
	}

	if err := c.placementService.Create(ctx, placement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// GetPlacements lists placements visible to the caller
// @Summary List placements
// @Description Admins see every drive including inactive ones. Students see only active drives open for their branch whose deadline has not passed.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlacementListResponse} "Placements retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements [get]
func (c *PlacementController) GetPlacements(ctx *gin.Context) {
	var placements []*models.Placement
	var err error

	if role, _ := ctx.Get(middleware.ContextRole); role == string(models.RoleAdmin) {
		placements, err = c.placementService.ListAll(ctx)
	} else {
		userID, ok := middleware.CurrentUserID(ctx)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		var student *models.User
		student, err = c.studentService.GetByID(ctx, userID)
		if err == nil {
			placements, err = c.eligibilityService.AvailablePlacements(ctx, student, time.Now())
		}
	}

	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PlacementListResponse{Placements: placements, Total: len(placements)},
		Timestamp: time.Now(),
	})
}

// GetUpcomingPlacements lists the next few open drives for the caller's branch
// @Summary List upcoming placements
// @Description Returns up to three open drives for the student's branch, nearest deadline first.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlacementListResponse} "Upcoming placements retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/upcoming [get]
func (c *PlacementController) GetUpcomingPlacements(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.GetByID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	placements, err := c.eligibilityService.UpcomingPlacements(ctx, student, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PlacementListResponse{Placements: placements, Total: len(placements)},
		Timestamp: time.Now(),
	})
}

// GetPlacementByID retrieves a placement by ID
// @Summary Get placement by ID
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [get]
func (c *PlacementController) GetPlacementByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid placement ID")
		errorDetail = errorDetail.WithDetails("Placement ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	placement, err := c.placementService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// UpdatePlacement handles placement updates
// @Summary Update a placement drive
// @Description Replaces the drive's details. Updating a drive reactivates it.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Param request body dto.PlacementRequest true "Placement information"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [put]
func (c *PlacementController) UpdatePlacement(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid placement ID")
		errorDetail = errorDetail.WithDetails("Placement ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.PlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	placement, errDetail := placementFromRequest(&req)
	if errDetail != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errDetail))
		return
	}
	placement.ID = id

	updated, err := c.placementService.Update(ctx, placement)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updated,
		Timestamp: time.Now(),
	})
}

// DeletePlacement deactivates a placement drive
// @Summary Delete a placement drive
// @Description Marks the drive inactive. Existing applications keep referring to it.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Placement deactivated"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [delete]
func (c *PlacementController) DeletePlacement(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid placement ID")
		errorDetail = errorDetail.WithDetails("Placement ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.placementService.Deactivate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Placement deleted successfully"},
		Timestamp: time.Now(),
	})
}

// placementFromRequest builds a placement from a request payload, parsing the
// deadline date.
func placementFromRequest(req *dto.PlacementRequest) (*models.Placement, *dto.ErrorDetail) {
	deadline, err := time.ParseInLocation("2006-01-02", req.Deadline, time.Local)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid deadline")
		errorDetail = errorDetail.WithDetails("Deadline must be a date in YYYY-MM-DD format").WithField("deadline")
		return nil, errorDetail
	}

	return &models.Placement{
		Company:     req.Company,
		Position:    req.Position,
		Package:     req.Package,
		Eligibility: req.Eligibility,
		Description: req.Description,
		Deadline:    deadline,
		Branches:    req.Branches,
	}, nil
}
