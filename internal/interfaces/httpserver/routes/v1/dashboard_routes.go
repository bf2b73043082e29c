package v1

import (
	"github.com/gin-gonic/gin"

	"feedback-server/services/feedback-api/internal/interfaces/httpserver/handlers"
)

func registerDashboardRoutes(router gin.IRoutes, handler *handlers.DashboardHandler) {
	router.GET("/dashboard", handler.Get)
	router.GET("/dashboard/live", handler.Live)
}
