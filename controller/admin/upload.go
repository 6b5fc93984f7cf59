package admin

import (
	"errors"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/service"
	serviceAdmin "github.com/empregga/eva-portal/service/admin"
	"github.com/gin-gonic/gin"
)

type UploadApi struct{}

// Upload recebe um anexo multipart (campo "file") e devolve a URL pública.
func (d *UploadApi) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		common.Fail(ctx, "arquivo ausente ou inválido")
		return
	}

	url, err := service.Service.AdminServiceGroup.UploadService.Upload(ctx.Request.Context(), file)
	if err != nil {
		if errors.Is(err, serviceAdmin.ErrFileTooLarge) {
			common.Fail(ctx, err.Error())
			return
		}
		global.Log.Errorf("[Upload]: %v", err)
		common.Fail(ctx, err.Error())
		return
	}

	common.Success(ctx, gin.H{"url": url})
}
