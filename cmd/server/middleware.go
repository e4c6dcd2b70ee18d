package main

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// origins the frontend is deployed on
var allowedOrigins = []string{
	"http://localhost:5173",
	"https://stravapower.zeabur.app",
	"https://www.criterium.tw",
	"https://strava.criterium.tw",
	"https://power.criterium.tw",
}

// CORSMiddleware allows the fixed frontend origins plus any subdomain of
// criterium.tw over HTTPS, for preview deployments.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "apikey"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".criterium.tw")
		},
	}

	return cors.New(cfg)
}
