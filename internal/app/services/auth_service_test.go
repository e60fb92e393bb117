package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/auth"
)

const testAdminCode = "letmein"

func newAuthFixture() (*AuthService, *stores) {
	s := newStores()
	studentService := NewStudentService(s.users)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "placement-portal-test",
	})

	return NewAuthService(s.users, studentService, jwtService, testAdminCode, zerolog.Nop()), s
}

func TestRegisterStudent(t *testing.T) {
	service, _ := newAuthFixture()

	resp, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
		Role:     models.RoleStudent,
		Branch:   models.BranchCS,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if resp.Token.AccessToken == "" {
		t.Error("Register() returned empty access token")
	}
	if resp.User.Role != models.RoleStudent {
		t.Errorf("role = %q, want student", resp.User.Role)
	}
	if resp.User.StudentNo == "" {
		t.Error("Register() did not derive a student number")
	}
}

func TestRegisterAdminRequiresCode(t *testing.T) {
	service, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, &dto.RegisterRequest{
		Name:      "Boss",
		Email:     "boss@example.com",
		Password:  "password123",
		Role:      models.RoleAdmin,
		AdminCode: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidAdminCode) {
		t.Fatalf("Register() with wrong admin code error = %v, want ErrInvalidAdminCode", err)
	}

	resp, err := service.Register(ctx, &dto.RegisterRequest{
		Name:      "Boss",
		Email:     "boss@example.com",
		Password:  "password123",
		Role:      models.RoleAdmin,
		AdminCode: testAdminCode,
	})
	if err != nil {
		t.Fatalf("Register() with correct admin code error = %v", err)
	}
	if resp.User.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", resp.User.Role)
	}
	if resp.User.StudentNo != "" {
		t.Errorf("admin got student number %q", resp.User.StudentNo)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newAuthFixture()
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
		Role:     models.RoleStudent,
		Branch:   models.BranchCS,
	}
	if _, err := service.Register(ctx, req); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := service.Register(ctx, req); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("second Register() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	service, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := service.Register(ctx, &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
		Role:     models.RoleStudent,
		Branch:   models.BranchCS,
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	resp, err := service.Login(ctx, "asha@example.com", "password123", models.RoleStudent)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token.AccessToken == "" {
		t.Error("Login() returned empty access token")
	}

	if _, err := service.Login(ctx, "asha@example.com", "wrong", models.RoleStudent); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password error = %v, want ErrInvalidCredentials", err)
	}

	if _, err := service.Login(ctx, "nobody@example.com", "password123", models.RoleStudent); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() with unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginIsRoleScoped(t *testing.T) {
	service, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := service.Register(ctx, &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
		Role:     models.RoleStudent,
		Branch:   models.BranchCS,
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// A student account cannot log in through the admin door
	if _, err := service.Login(ctx, "asha@example.com", "password123", models.RoleAdmin); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() with wrong role error = %v, want ErrInvalidCredentials", err)
	}
}
