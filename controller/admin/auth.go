package admin

import (
	"errors"
	"net/http"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/middleware"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/service"
	serviceAdmin "github.com/empregga/eva-portal/service/admin"
	"github.com/gin-gonic/gin"
)

type AuthApi struct{}

func (d *AuthApi) Login(ctx *gin.Context) {
	var req common.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "parâmetros inválidos")
		return
	}

	token, err := service.Service.AdminServiceGroup.AuthService.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, serviceAdmin.ErrBadCredentials) {
			common.FailAuth(ctx, err.Error())
			return
		}
		global.Log.Errorf("[Login]: %v", err)
		common.Fail(ctx, "falha ao entrar")
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AdminTokenCookie, token, int(global.Config.Redis.SessionTTL), "/", global.Config.Domain, !global.Config.Debug, true)
	common.SuccessOk(ctx, "sessão iniciada")
}

func (d *AuthApi) Logout(ctx *gin.Context) {
	token, _ := ctx.Cookie(middleware.AdminTokenCookie)
	if err := service.Service.AdminServiceGroup.AuthService.Logout(ctx.Request.Context(), token); err != nil {
		global.Log.Errorf("[Logout]: %v", err)
	}

	ctx.SetCookie(middleware.AdminTokenCookie, "", -1, "/", global.Config.Domain, !global.Config.Debug, true)
	common.SuccessOk(ctx, "sessão encerrada")
}

// Setup cria o primeiro curador (somente com a base vazia).
func (d *AuthApi) Setup(ctx *gin.Context) {
	var req common.SetupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "parâmetros inválidos")
		return
	}

	if err := service.Service.AdminServiceGroup.AuthService.Setup(ctx.Request.Context(), &req); err != nil {
		if errors.Is(err, serviceAdmin.ErrSetupDone) {
			common.Fail(ctx, err.Error())
			return
		}
		global.Log.Errorf("[Setup]: %v", err)
		common.Fail(ctx, "falha na instalação")
		return
	}
	common.SuccessOk(ctx, "curador criado")
}
