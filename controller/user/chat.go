package user

import (
	"errors"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/service"
	serviceUser "github.com/empregga/eva-portal/service/user"
	"github.com/gin-gonic/gin"
)

type ChatApi struct{}

// HandleChat responde a pergunta de forma síncrona: a UI espera a resposta
// completa no corpo (sem streaming).
func (d *ChatApi) HandleChat(ctx *gin.Context) {
	var req common.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "parâmetros inválidos")
		return
	}

	resp, err := service.Service.UserServiceGroup.ChatService.HandleChat(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, serviceUser.ErrEmptyQuery) || errors.Is(err, serviceUser.ErrQueryTooLong) {
			common.Fail(ctx, err.Error())
			return
		}
		global.Log.Errorf("[HandleChat]: %v", err)
		common.Fail(ctx, err.Error())
		return
	}

	common.Success(ctx, resp)
}

func (d *ChatApi) Feedback(ctx *gin.Context) {
	var req common.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "parâmetros inválidos")
		return
	}

	if err := service.Service.UserServiceGroup.FeedbackService.Register(ctx.Request.Context(), &req); err != nil {
		global.Log.Errorf("[Feedback]: %v", err)
		common.Fail(ctx, "falha ao registrar o feedback")
		return
	}

	common.SuccessOk(ctx, "feedback registrado")
}

func (d *ChatApi) Handoff(ctx *gin.Context) {
	var req common.HandoffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "parâmetros inválidos")
		return
	}

	resp, err := service.Service.UserServiceGroup.HandoffService.Open(ctx.Request.Context(), &req)
	if err != nil {
		global.Log.Errorf("[Handoff]: %v", err)
		common.Fail(ctx, "falha ao transferir para atendimento humano")
		return
	}

	common.Success(ctx, resp)
}
