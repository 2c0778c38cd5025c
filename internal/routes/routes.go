package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-records-server/internal/config"
	"hospital-records-server/internal/handlers"
	"hospital-records-server/internal/middleware"
	"hospital-records-server/internal/models"
	"hospital-records-server/internal/records"
	"hospital-records-server/internal/session"
	"hospital-records-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	st := store.New(db)
	sessions := session.NewService(st)
	manager := records.NewManager(st)

	authHandler := handlers.NewAuthHandler(sessions, cfg)
	recordHandler := handlers.NewRecordHandler(manager)
	userHandler := handlers.NewUserHandler(manager)
	exportHandler := handlers.NewExportHandler(manager, cfg)

	// Public routes (the login prompt)
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
	}

	// Authenticated routes (the dashboard)
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		private.GET("/auth/profile", authHandler.GetProfile)

		recordRoutes := private.Group("/records")
		{
			recordRoutes.GET("", recordHandler.ListRecords)
			recordRoutes.GET("/departments", recordHandler.GetDepartments)
			recordRoutes.POST("", recordHandler.AddRecord)
			recordRoutes.POST("/:id/select", recordHandler.SelectRecord)
			recordRoutes.POST("/clear", recordHandler.ClearSelection)
			recordRoutes.PUT("/selected", recordHandler.UpdateRecord)
			recordRoutes.DELETE("/selected", recordHandler.DeleteRecord)
		}

		// Admin panel routes
		adminRoutes := private.Group("")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/users", userHandler.GetUsers)
			adminRoutes.POST("/users", userHandler.CreateUser)
			adminRoutes.DELETE("/users/:id", userHandler.DeleteUser)
			adminRoutes.POST("/export/text", exportHandler.ExportText)
			adminRoutes.POST("/export/xlsx", exportHandler.ExportXLSX)
		}
	}
}
