package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/TCUnion/power/internal/auth"
	tcusettings "github.com/TCUnion/power/tcu/settings"
)

// RegisterRoutes wires the settings endpoints under /api. Reads are open,
// writes require an authenticated session.
func RegisterRoutes(router *gin.RouterGroup, store tcusettings.Store) {
	router.GET("/settings", ListHandler(store))
	router.POST("/settings", auth.AuthMiddleware(), UpdateHandler(store))
}
