package v1

import (
	"github.com/gin-gonic/gin"

	"feedback-server/services/feedback-api/internal/interfaces/httpserver/handlers"
)

func registerFeedbackRoutes(router gin.IRoutes, handler *handlers.FeedbackHandler) {
	router.POST("/feedback", handler.Submit)
	router.GET("/feedback", handler.List)
	router.GET("/feedback/export", handler.Export)
	router.DELETE("/feedback", handler.Clear)
}
