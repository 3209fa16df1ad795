package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-market/api-go/controllers"
)

func SetupItemRoutes(protected *gin.RouterGroup, itemController *controllers.ItemController) {
	items := protected.Group("/items")
	{
		items.GET("/featured", itemController.GetFeaturedItems)
		items.GET("/recent", itemController.GetRecentItems)
		items.POST("", itemController.CreateItem)
		items.GET("", itemController.GetItems)
		items.GET("/user/:userId", itemController.GetUserItems)
		items.GET("/:id", itemController.GetItemByID)
		items.PUT("/:id", itemController.UpdateItem)
		items.DELETE("/:id", itemController.DeleteItem)
	}
}
