package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/service"
	serviceAdmin "github.com/empregga/eva-portal/service/admin"
	"github.com/gin-gonic/gin"
)

type KnowledgeApi struct{}

func (d *KnowledgeApi) List(ctx *gin.Context) {
	items, err := service.Service.AdminServiceGroup.KnowledgeService.List(ctx.Request.Context())
	if err != nil {
		global.Log.Errorf("[KnowledgeList]: %v", err)
		common.Fail(ctx, "falha ao listar a base de conhecimento")
		return
	}
	common.Success(ctx, items)
}

func (d *KnowledgeApi) Create(ctx *gin.Context) {
	var req common.UpsertKnowledgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "parâmetros inválidos")
		return
	}

	unit, err := service.Service.AdminServiceGroup.KnowledgeService.Create(ctx.Request.Context(), &req)
	if err != nil {
		global.Log.Errorf("[KnowledgeCreate]: %v", err)
		common.Fail(ctx, err.Error())
		return
	}
	common.Success(ctx, unit)
}

func (d *KnowledgeApi) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	var req common.UpsertKnowledgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "parâmetros inválidos")
		return
	}

	unit, err := service.Service.AdminServiceGroup.KnowledgeService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, serviceAdmin.ErrUnitNotFound) {
			common.FailNotFound(ctx)
			return
		}
		global.Log.Errorf("[KnowledgeUpdate]: %v", err)
		common.Fail(ctx, err.Error())
		return
	}
	common.Success(ctx, unit)
}

func (d *KnowledgeApi) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := service.Service.AdminServiceGroup.KnowledgeService.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, serviceAdmin.ErrUnitNotFound) {
			common.FailNotFound(ctx)
			return
		}
		global.Log.Errorf("[KnowledgeDelete]: %v", err)
		common.Fail(ctx, "falha ao excluir a unidade")
		return
	}
	common.SuccessOk(ctx, "unidade excluída")
}

func (d *KnowledgeApi) Bulk(ctx *gin.Context) {
	var req common.BulkKnowledgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "parâmetros inválidos")
		return
	}

	affected, err := service.Service.AdminServiceGroup.KnowledgeService.Bulk(ctx.Request.Context(), &req)
	if err != nil {
		global.Log.Errorf("[KnowledgeBulk]: %v", err)
		common.Fail(ctx, "falha na operação em lote")
		return
	}
	common.Success(ctx, gin.H{"affected": affected})
}

func (d *KnowledgeApi) Search(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		common.Fail(ctx, "parâmetro q é obrigatório")
		return
	}
	if max := global.Config.Ai.MaxQueryLength; max > 0 && len([]rune(query)) > max {
		common.Fail(ctx, fmt.Sprintf("busca excede o limite de %d caracteres", max))
		return
	}

	results, err := service.Service.AdminServiceGroup.KnowledgeService.Search(ctx.Request.Context(), query)
	if err != nil {
		global.Log.Errorf("[KnowledgeSearch]: %v", err)
		common.Fail(ctx, err.Error())
		return
	}
	common.Success(ctx, results)
}
