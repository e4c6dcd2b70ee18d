package ai

import (
	"github.com/gin-gonic/gin"

	"github.com/TCUnion/power/internal/aicoach"
)

// RegisterRoutes wires the AI-coach endpoints under /api/ai. The caller
// attaches rate limiting to the group before registration.
func RegisterRoutes(router *gin.RouterGroup, svc *aicoach.Service) {
	router.POST("/chat", ChatHandler(svc))
	router.POST("/summary", SummaryHandler(svc))
	router.GET("/usage/:user_id", UsageHandler(svc))
	router.GET("/history/:user_id", HistoryHandler(svc))
}
