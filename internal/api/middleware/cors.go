package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows the comma-separated list of frontend origins.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	origins := strings.Split(allowedDomains, ",")
	for i := range origins {
		origins[i] = strings.TrimRight(strings.TrimSpace(origins[i]), "/")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
