package admin

import (
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/service"
	"github.com/gin-gonic/gin"
)

type AnalyticsApi struct{}

func (d *AnalyticsApi) Overview(ctx *gin.Context) {
	overview, err := service.Service.AdminServiceGroup.AnalyticsService.Overview(ctx.Request.Context())
	if err != nil {
		global.Log.Errorf("[AnalyticsOverview]: %v", err)
		common.Fail(ctx, "falha ao montar o dashboard")
		return
	}
	common.Success(ctx, overview)
}
