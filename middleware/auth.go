package middleware

import (
	"errors"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/internal/redis"
	"github.com/empregga/eva-portal/model/common"
	"github.com/gin-gonic/gin"
)

// AdminTokenCookie é o cookie HttpOnly que carrega o token de sessão.
const AdminTokenCookie = "adminToken"

// ContextAdminId é a chave do id do admin autenticado no contexto do gin.
const ContextAdminId = "adminId"

// AdminAuth protege as rotas de curadoria: sem sessão válida no Redis, a
// requisição morre aqui.
func AdminAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(AdminTokenCookie)
		if err != nil || token == "" {
			common.FailAuth(ctx, "sessão ausente")
			return
		}

		adminId, err := global.RedisClient.GetSession(ctx.Request.Context(), token)
		if err != nil {
			if errors.Is(err, redis.ErrNil) {
				common.FailAuth(ctx, "sessão expirada")
				return
			}
			global.Log.Errorf("[AdminAuth]: %v", err)
			common.FailAuth(ctx, "falha ao validar a sessão")
			return
		}

		ctx.Set(ContextAdminId, adminId)
		ctx.Next()
	}
}
