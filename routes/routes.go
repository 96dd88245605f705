package routes

import (
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/controllers"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/middleware"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)
			public.POST("/register", controllers.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Proposal Approval API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth management
			protected.POST("/logout", controllers.Logout)

			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Proposal submissions
			submissions := protected.Group("/submissions")
			{
				// Role-scoped listing and detail
				submissions.GET("", controllers.GetSubmissions)
				submissions.GET("/export", controllers.ExportSubmissions)
				submissions.GET("/:id", controllers.GetSubmission)

				// Only students can submit proposals
				submissions.POST("", middleware.RequireRole(models.RoleStudent), controllers.CreateSubmission)

				// Only admins review
				submissions.PUT("/:id/status", middleware.RequireRole(models.RoleAdmin), controllers.UpdateSubmissionStatus)
				submissions.POST("/:id/comments", middleware.RequireRole(models.RoleAdmin), controllers.AddSubmissionComment)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
			}

			// User management (admin only)
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", controllers.GetUsers)
				admin.GET("/users/export", controllers.ExportUsers)
			}
		}
	}
}
