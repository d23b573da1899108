package routes

import (
	"deadline-management-api/controllers"
	"deadline-management-api/middleware"
	"deadline-management-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.GET("/me", middleware.AuthMiddleware(), controllers.GetProfile)
		}

		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Deadline Management API is running",
			})
		})

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Deadlines
			deadlines := protected.Group("/deadlines")
			{
				// All authenticated users can read
				deadlines.GET("", controllers.GetDeadlines)
				deadlines.GET("/active", controllers.GetActiveDeadlines)
				deadlines.GET("/:id", controllers.GetDeadline)

				// Only admin can create/update/delete/toggle
				deadlines.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateDeadline)
				deadlines.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateDeadline)
				deadlines.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteDeadline)
				deadlines.PATCH("/:id/toggle", middleware.RequireRole(models.RoleAdmin), controllers.ToggleDeadlineStatus)
			}

			// Submissions
			submissions := protected.Group("/submissions")
			{
				submissions.POST("", middleware.RequireRole(models.RoleUser, models.RoleAdmin), controllers.CreateSubmission)
				submissions.GET("/my", controllers.GetMySubmissions)
				submissions.GET("/:id", controllers.GetSubmission)
				submissions.PUT("/:id", middleware.RequireRole(models.RoleUser, models.RoleAdmin), controllers.UpdateSubmission)
				submissions.DELETE("/:id", middleware.RequireRole(models.RoleUser, models.RoleAdmin), controllers.DeleteSubmission)

				// Admin-only listings and statistics
				submissions.GET("", middleware.RequireRole(models.RoleAdmin), controllers.GetAllSubmissions)
				submissions.GET("/deadline/:deadlineId", middleware.RequireRole(models.RoleAdmin), controllers.GetSubmissionsByDeadline)
				submissions.GET("/stats/:deadlineId", middleware.RequireRole(models.RoleAdmin), controllers.GetSubmissionStats)
			}
		}
	}
}
