package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-market/api-go/controllers"
	"github.com/campus-market/api-go/middleware"
)

func SetupReportRoutes(protected *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := protected.Group("/reports")
	{
		reports.POST("", reportController.CreateReport)

		admin := reports.Group("", middleware.RequireRole("admin"))
		{
			admin.GET("", reportController.GetReports)
			admin.GET("/:id", reportController.GetReportByID)
			admin.PUT("/:id", reportController.UpdateReport)
			admin.DELETE("/:id", reportController.DeleteReport)
		}
	}
}
