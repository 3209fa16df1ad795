package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-market/api-go/controllers"
	"github.com/campus-market/api-go/middleware"
	"github.com/campus-market/api-go/storage"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.Storage) {
	// Initialize controllers
	authController := controllers.NewAuthController(db, store)
	userController := controllers.NewUserController(db, store)
	itemController := controllers.NewItemController(db, store)
	messageController := controllers.NewMessageController(db)
	reportController := controllers.NewReportController(db)
	categoryController := controllers.NewCategoryController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.GET("/categories", categoryController.GetCategories)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(db))
	{
		protected.POST("/auth/register-admin", middleware.RequireRole("admin"), authController.RegisterAdmin)
		protected.GET("/auth/me", authController.GetMe)
		protected.GET("/auth/verify", authController.Verify)

		SetupUserRoutes(protected, userController, authController)
		SetupItemRoutes(protected, itemController)
		SetupMessageRoutes(protected, messageController)
		SetupReportRoutes(protected, reportController)
	}
}
