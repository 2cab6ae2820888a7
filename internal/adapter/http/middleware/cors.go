package middleware

import (
	"gestion_oficina/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin outside production. In production only the
// CORS_ALLOWED_ORIGINS allowlist is accepted; an empty list denies all.
func CORS(cfg config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction() {
		if len(cfg.CORSAllowedOrigins) > 0 {
			corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
		} else {
			// cors.New rejects a config with no origin source at all.
			corsConfig.AllowOriginFunc = func(string) bool { return false }
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	corsConfig.AllowCredentials = true
	return cors.New(corsConfig)
}
