package admin

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/internal/oss"
	"github.com/sirupsen/logrus"
)

// MaxUploadSize limita anexos de unidades de conhecimento (5 MB).
const MaxUploadSize = 5 << 20

var ErrFileTooLarge = errors.New("arquivo excede o limite de 5 MB")

type UploadService struct {
	log *logrus.Logger
	oss oss.Service
}

func NewUploadService() *UploadService {
	return &UploadService{
		log: global.Log,
		oss: global.OssService,
	}
}

// Upload envia o anexo ao bucket e devolve a URL pública.
func (s *UploadService) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if s.oss == nil {
		return "", errors.New("armazenamento de arquivos não está configurado")
	}
	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	objectName, err := s.oss.UploadFile(ctx, file)
	if err != nil {
		s.log.Errorf("upload de anexo falhou: %v", err)
		return "", errors.New("falha ao enviar o arquivo")
	}
	return s.oss.GetURL(objectName), nil
}
