package routes

import (
	"checkmaster/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTemplates = "/templates"
	PathRuns      = "/runs"
	PathScan      = "/scan"
	PathPhotos    = "/photos"
)

func addChecklistRoutes(rg *gin.RouterGroup, templateHandler *handlers.TemplateHandler, inspectionHandler *handlers.InspectionHandler, scanHandler *handlers.ScanHandler) {
	templates := rg.Group(PathTemplates)
	{
		templates.GET("", templateHandler.ListTemplates)
		templates.POST("", templateHandler.SaveTemplate)
		templates.GET("/favorites", templateHandler.ListFavorites)
		templates.POST("/draft", templateHandler.NewDraft)
		templates.POST("/builder", templateHandler.ApplyBuilder)
		templates.GET("/:id", templateHandler.GetTemplate)
		templates.PUT("/:id", templateHandler.SaveTemplate)
		templates.POST("/:id/runs", templateHandler.StartRun)
	}

	runs := rg.Group(PathRuns)
	{
		runs.POST("/evaluate", inspectionHandler.Evaluate)
		runs.POST("/vehicle", inspectionHandler.ApplyVehicle)
		runs.POST("/finish", inspectionHandler.FinishInspection)
	}

	rg.POST(PathScan, scanHandler.Scan)
	rg.POST(PathPhotos, scanHandler.UploadPhoto)
}
