package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-market/api-go/controllers"
	"github.com/campus-market/api-go/middleware"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController, authController *controllers.AuthController) {
	users := protected.Group("/users")
	{
		users.GET("/me", authController.GetMe)
		users.GET("", middleware.RequireRole("admin"), userController.GetUsers)
		users.GET("/:id", userController.GetUserByID)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}
}
