package admin

import (
	"errors"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/service"
	serviceAdmin "github.com/empregga/eva-portal/service/admin"
	"github.com/gin-gonic/gin"
)

type BlindSpotApi struct{}

func (d *BlindSpotApi) List(ctx *gin.Context) {
	spots, err := service.Service.AdminServiceGroup.BlindSpotService.List(ctx.Request.Context())
	if err != nil {
		global.Log.Errorf("[BlindSpotList]: %v", err)
		common.Fail(ctx, "falha ao listar os pontos cegos")
		return
	}
	common.Success(ctx, spots)
}

func (d *BlindSpotApi) Resolve(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := service.Service.AdminServiceGroup.BlindSpotService.Resolve(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, serviceAdmin.ErrBlindSpotNotFound) {
			common.FailNotFound(ctx)
			return
		}
		global.Log.Errorf("[BlindSpotResolve]: %v", err)
		common.Fail(ctx, "falha ao resolver o ponto cego")
		return
	}
	common.SuccessOk(ctx, "ponto cego resolvido")
}
