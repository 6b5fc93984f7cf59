package router

import (
	"github.com/empregga/eva-portal/controller"
	"github.com/empregga/eva-portal/middleware"
	"github.com/gin-gonic/gin"
)

func Start(ginServer *gin.Engine) {
	// Limita a memória do multipart (anexos vão para o bucket).
	ginServer.MaxMultipartMemory = 8 << 20

	ginServer.Use(middleware.CorsHandle(), middleware.OptionsMethod)

	v1 := ginServer.Group("api/v1")
	{
		// Rotas públicas: o chat dos agentes não exige login.
		v1.POST("/chat", controller.Api.UserApiGroup.ChatApi.HandleChat)
		v1.POST("/chat/feedback", controller.Api.UserApiGroup.ChatApi.Feedback)
		v1.POST("/chat/handoff", controller.Api.UserApiGroup.ChatApi.Handoff)

		auth := v1.Group("auth")
		{
			auth.POST("/login", controller.Api.AdminApiGroup.AuthApi.Login)
			auth.POST("/logout", controller.Api.AdminApiGroup.AuthApi.Logout)
			auth.POST("/setup", controller.Api.AdminApiGroup.AuthApi.Setup)
		}

		// Portal de curadoria: tudo atrás da sessão de admin.
		adminGroup := v1.Group("admin", middleware.AdminAuth())
		{
			adminGroup.GET("/knowledge", controller.Api.AdminApiGroup.KnowledgeApi.List)
			adminGroup.POST("/knowledge", controller.Api.AdminApiGroup.KnowledgeApi.Create)
			adminGroup.PUT("/knowledge/:id", controller.Api.AdminApiGroup.KnowledgeApi.Update)
			adminGroup.DELETE("/knowledge/:id", controller.Api.AdminApiGroup.KnowledgeApi.Delete)
			adminGroup.POST("/knowledge/bulk", controller.Api.AdminApiGroup.KnowledgeApi.Bulk)
			adminGroup.GET("/knowledge/search", controller.Api.AdminApiGroup.KnowledgeApi.Search)

			adminGroup.GET("/blindspots", controller.Api.AdminApiGroup.BlindSpotApi.List)
			adminGroup.PUT("/blindspots/:id/resolve", controller.Api.AdminApiGroup.BlindSpotApi.Resolve)

			adminGroup.GET("/analytics", controller.Api.AdminApiGroup.AnalyticsApi.Overview)

			adminGroup.POST("/upload", controller.Api.AdminApiGroup.UploadApi.Upload)
		}
	}
}
