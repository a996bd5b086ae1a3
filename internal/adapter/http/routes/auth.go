package routes

import (
	"checkmaster/internal/adapter/http/handlers"
	"checkmaster/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, sessions middleware.SessionVerifier) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/session", authHandler.Session)
		auth.POST("/logout", middleware.Auth(sessions), authHandler.Logout)
	}
}
