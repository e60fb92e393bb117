package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/auth"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo       repositories.IUserRepository
	studentService *StudentService
	jwtService     *auth.JWTService
	adminCode      string
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	studentService *StudentService,
	jwtService *auth.JWTService,
	adminCode string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		studentService: studentService,
		jwtService:     jwtService,
		adminCode:      adminCode,
		logger:         logger,
	}
}

// Register creates a new account and returns it with a fresh access token.
// Students get a derived student number; admin registration requires the
// configured admin code.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var user *models.User
	var err error

	switch req.Role {
	case models.RoleStudent:
		user, err = s.studentService.CreateStudent(ctx, req.Name, req.Email, req.Password, req.Branch, 0)
		if err != nil {
			return nil, err
		}

	case models.RoleAdmin:
		if req.AdminCode != s.adminCode {
			return nil, apperrors.ErrInvalidAdminCode
		}

		exists, err := s.userRepo.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}

		user = &models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: hashed,
			Role:     models.RoleAdmin,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}

	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", req.Role))
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.issueToken(user)
}

// Login verifies credentials scoped to a role and returns the account with a
// fresh access token. The same message is returned for an unknown email and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string, role models.Role) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Debug().Int64("userID", user.ID).Msg("User logged in")

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: user,
	}, nil
}
