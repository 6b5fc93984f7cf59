package oss

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/empregga/eva-portal/model/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Service define o armazenamento de objetos (MinIO/S3) usado pelos uploads.
type Service interface {
	// UploadFile sobe o arquivo do formulário multipart e devolve o nome do
	// objeto gerado.
	UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error)
	// GetURL monta a URL pública do objeto.
	GetURL(objectName string) string
	Close() error
}

type minioService struct {
	client *minio.Client
	cfg    config.Oss
}

func NewClient(cfg config.Oss) (Service, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("criação do cliente MinIO falhou: %w", err)
	}

	return &minioService{client: client, cfg: cfg}, nil
}

func (s *minioService) UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("abertura do arquivo enviado falhou: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Prefixo uuid evita colisão; espaços no nome quebram a URL pública.
	objectName := fmt.Sprintf("%s-%s", uuid.NewString(), strings.ReplaceAll(file.Filename, " ", "-"))

	_, err = s.client.PutObject(ctx, s.cfg.Bucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload para o bucket '%s' falhou: %w", s.cfg.Bucket, err)
	}

	return objectName, nil
}

func (s *minioService) GetURL(objectName string) string {
	if s.cfg.PublicDomain != "" {
		return fmt.Sprintf("https://%s/%s/%s", strings.TrimSuffix(s.cfg.PublicDomain, "/"), s.cfg.Bucket, objectName)
	}
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, objectName)
}

func (s *minioService) Close() error {
	// O cliente MinIO não mantém conexões que precisem de fechamento explícito.
	return nil
}
