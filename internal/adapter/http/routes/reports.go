package routes

import (
	"checkmaster/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReports   = "/reports"
	PathDashboard = "/dashboard"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/orders", reportHandler.Orders)
		reports.GET("/orders/export", reportHandler.ExportOrders)
		reports.GET("/clients", reportHandler.ClientSummaries)
		reports.GET("/clients/export", reportHandler.ExportFinance)
		reports.GET("/daily", reportHandler.DailyTotals)
	}

	rg.GET(PathDashboard, reportHandler.Dashboard)
}
