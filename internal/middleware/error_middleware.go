package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call it
// after any service error so status codes and error codes stay consistent
// across the API.
func HandleAPIError(c *gin.Context, err error) {
	detail := detailFor(err)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		detail = detail.WithDetails(custom.Message)
	}

	c.JSON(statusFor(err), dto.NewErrorResponse(detail))
}

func statusFor(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest, apperrors.ErrNoEligibleBranch, apperrors.ErrInvalidDecision):
		return 400
	case apperrors.Is(err, apperrors.ErrInvalidCredentials,
		apperrors.ErrInvalidAdminCode, apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid):
		return 401
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return 403
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound, apperrors.ErrPlacementNotFound, apperrors.ErrApplicationNotFound):
		return 404
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists, apperrors.ErrStudentNoExists,
		apperrors.ErrAlreadyApplied, apperrors.ErrDeadlineExpired):
		return 409
	default:
		return 500
	}
}

func detailFor(err error) *dto.ErrorDetail {
	switch {
	case errors.Is(err, apperrors.ErrDeadlineExpired):
		return dto.NewErrorDetail(dto.ErrorCodeDeadlineExpired, "Application deadline has passed")
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		return dto.NewErrorDetail(dto.ErrorCodeDuplicateApplication, "Already applied for this placement")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrInvalidAdminCode):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidAdminCode, "Invalid admin code")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrPlacementNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Placement not found")
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Application not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrStudentNoExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student ID already exists")
	case errors.Is(err, apperrors.ErrConflict):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest, apperrors.ErrNoEligibleBranch, apperrors.ErrInvalidDecision):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	default:
		return dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
