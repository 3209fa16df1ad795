package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-market/api-go/controllers"
)

func SetupMessageRoutes(protected *gin.RouterGroup, messageController *controllers.MessageController) {
	messages := protected.Group("/messages")
	{
		messages.POST("", messageController.SendMessage)
		messages.GET("/conversations", messageController.GetConversations)
		messages.GET("/conversation/:userId", messageController.GetConversation)
		messages.PUT("/:messageId/read", messageController.MarkAsRead)
		messages.DELETE("/:messageId", messageController.DeleteMessage)
	}
}
