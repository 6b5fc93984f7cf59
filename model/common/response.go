package common

import (
	"net/http"

	"github.com/empregga/eva-portal/model/enum"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Code enum.ResCode `json:"code"`
	Data interface{}  `json:"data"`
	Msg  enum.Msg     `json:"msg"`
}

func result(ctx *gin.Context, code enum.ResCode, msg enum.Msg, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code: code,
		Data: data,
		Msg:  msg,
	})
}

// Success responde com payload no campo data.
func Success(ctx *gin.Context, data interface{}) {
	result(ctx, enum.SuccessCode, enum.DefaultSuccessMsg, data)
}

func SuccessOk(ctx *gin.Context, message string) {
	result(ctx, enum.SuccessCode, enum.Msg(message), map[string]interface{}{})
}

func Fail(ctx *gin.Context, message string) {
	result(ctx, enum.ErrorCode, enum.Msg(message), map[string]interface{}{})
}

func FailNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, Response{
		Code: enum.ErrorCode,
		Msg:  enum.DefaultFailMsg,
	})
}

// FailAuth encerra a requisição: cookie ausente, inválido ou expirado.
func FailAuth(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusOK, Response{
		Code: enum.AuthErrorCode,
		Msg:  enum.Msg(message),
		Data: map[string]interface{}{},
	})
}

// SourceRef é uma unidade citada como fonte na resposta do chat.
type SourceRef struct {
	Id         string  `json:"id"`
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"`
}

// ChatResponse é o contrato consumido pela UI do chat.
type ChatResponse struct {
	HasAnswer bool        `json:"hasAnswer"`
	Response  string      `json:"response"`
	Sources   []SourceRef `json:"sources"`
}

type HandoffResponse struct {
	TicketId string `json:"ticketId"`
}
