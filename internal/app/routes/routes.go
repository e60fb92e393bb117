package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/controllers"
	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	placementController *controllers.PlacementController,
	applicationController *controllers.ApplicationController,
	studentController *controllers.StudentController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes (any authenticated user)
		authenticated.GET("/profile", studentController.GetProfile)
		authenticated.PUT("/profile", studentController.UpdateProfile)

		// Placement routes
		placements := authenticated.Group("/placements")
		{
			placements.GET("", placementController.GetPlacements)
			placements.GET("/:id", placementController.GetPlacementByID)

			// Student-only view of the next open drives
			placementsStudent := placements.Group("")
			placementsStudent.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				placementsStudent.GET("/upcoming", placementController.GetUpcomingPlacements)
			}

			// Admin-only drive management
			placementsAdmin := placements.Group("")
			placementsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				placementsAdmin.POST("", placementController.CreatePlacement)
				placementsAdmin.PUT("/:id", placementController.UpdatePlacement)
				placementsAdmin.DELETE("/:id", placementController.DeletePlacement)
			}
		}

		// Application routes
		applications := authenticated.Group("/applications")
		{
			applications.GET("", applicationController.GetApplications)

			applicationsStudent := applications.Group("")
			applicationsStudent.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				applicationsStudent.POST("", applicationController.Apply)
				applicationsStudent.DELETE("/:id", applicationController.WithdrawApplication)
			}

			applicationsAdmin := applications.Group("")
			applicationsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				applicationsAdmin.PATCH("/:id", applicationController.DecideApplication)
			}
		}

		// Student directory (admin only)
		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			students.GET("", studentController.GetStudents)
			students.POST("", studentController.AddStudent)
			students.PUT("/:id", studentController.UpdateStudent)
		}

		// Dashboard counters (admin only)
		stats := authenticated.Group("/stats")
		stats.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			stats.GET("/overview", statsController.GetOverview)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
