package middleware

import (
	"net/http"
	"time"

	"github.com/empregga/eva-portal/global"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsHandle libera as origens configuradas (UI do chat e portal de
// curadoria). Credentials ligado por causa do cookie de admin.
func CorsHandle() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     global.Config.Cors,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// OptionsMethod encerra o preflight sem passar pelos handlers.
func OptionsMethod(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
	}
}
