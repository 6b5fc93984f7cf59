package initialize

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/internal/embedding"
	"github.com/empregga/eva-portal/internal/llm"
	"github.com/empregga/eva-portal/internal/oss"
	"github.com/empregga/eva-portal/internal/redis"
	"github.com/empregga/eva-portal/utils"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// setupLogFile abre um arquivo de log com rotação diária pelo nome,
// ex.: run.log -> run.log.2026-08-30
func (i *Initializer) setupLogFile(logPath string) (*os.File, error) {
	dateSuffix := time.Now().In(global.Tz).Format("2006-01-02")
	dailyLogPath := fmt.Sprintf("%s.%s", logPath, dateSuffix)

	if err := utils.CreateFile(dailyLogPath); err != nil {
		return nil, fmt.Errorf("falha ao criar o arquivo de log '%s': %w", dailyLogPath, err)
	}

	file, err := os.OpenFile(dailyLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o arquivo de log '%s': %w", dailyLogPath, err)
	}

	i.logFileClosers = append(i.logFileClosers, file)
	return file, nil
}

// CustomJSONFormatter fixa o fuso horário das entradas do logrus.
type CustomJSONFormatter struct {
	logrus.JSONFormatter
}

func (f *CustomJSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Time = entry.Time.In(global.Tz)
	return f.JSONFormatter.Format(entry)
}

func (i *Initializer) InitLog() error {
	runfile, err := i.setupLogFile(global.Config.RunLogPath)
	if err != nil {
		return fmt.Errorf("falha ao inicializar o log de execução: %w", err)
	}

	global.Log = logrus.New()
	global.Log.SetFormatter(&CustomJSONFormatter{
		JSONFormatter: logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "msg",
				logrus.FieldKeyTime:  "time",
			},
		},
	})
	if global.Config.Debug {
		global.Log.SetLevel(logrus.DebugLevel)
	} else {
		global.Log.SetLevel(logrus.InfoLevel)
	}

	global.Log.SetOutput(io.MultiWriter(os.Stdout, runfile))
	return nil
}

func (i *Initializer) InitTz() error {
	location, err := time.LoadLocation(global.Config.Tz)
	if err != nil {
		return fmt.Errorf("fuso horário inválido: %w", err)
	}
	global.Tz = location
	return nil
}

func (i *Initializer) initRedis() error {
	client, err := redis.NewClient(
		global.Config.Redis.Addr,
		global.Config.Redis.Password,
		int(global.Config.Redis.DB),
		global.Config.Redis.SessionPrefix,
	)
	if err != nil {
		return fmt.Errorf("falha ao inicializar o Redis: %w", err)
	}
	global.RedisClient = client
	global.Log.Info("serviço Redis inicializado")
	return nil
}

func (i *Initializer) redisClose() error {
	if global.RedisClient != nil {
		return global.RedisClient.Close()
	}
	return nil
}

func (i *Initializer) initLlm() error {
	if err := i.doInitLlm(); err != nil {
		global.Log.Warnf("falha ao inicializar o serviço de geração: %v", err)
		return err
	}
	global.Log.Info("serviço de geração inicializado")
	return nil
}

func (i *Initializer) doInitLlm() error {
	cfg := global.Config.Llm
	if cfg.Auth == "" {
		return fmt.Errorf("credencial do serviço de geração não configurada")
	}

	clientConfig := openai.DefaultConfig(cfg.Auth)
	if cfg.Url != "" {
		clientConfig.BaseURL = cfg.Url
	}
	clientConfig.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}
	openAIClient := openai.NewClientWithConfig(clientConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// ListModels serve de sonda de disponibilidade.
	if _, err := openAIClient.ListModels(ctx); err != nil {
		return fmt.Errorf("serviço de geração inacessível (url: %s): %w", clientConfig.BaseURL, err)
	}

	global.LlmService = llm.NewClient(global.Log, openAIClient, cfg)
	return nil
}

func (i *Initializer) initLlmEmbedding() error {
	if err := i.doInitLlmEmbedding(); err != nil {
		global.Log.Warnf("falha ao inicializar o serviço de vetorização: %v", err)
		return err
	}
	global.Log.Info("serviço de vetorização inicializado")
	return nil
}

func (i *Initializer) doInitLlmEmbedding() error {
	cfg := global.Config.LlmEmbedding
	clientConfig := openai.DefaultConfig(cfg.Auth)
	if cfg.Url != "" {
		clientConfig.BaseURL = cfg.Url
	}
	clientConfig.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}
	openAIClient := openai.NewClientWithConfig(clientConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := openAIClient.ListModels(ctx); err != nil {
		return fmt.Errorf("serviço de vetorização inacessível (url: %s): %w", clientConfig.BaseURL, err)
	}

	global.EmbeddingService = embedding.NewClient(openAIClient, cfg.Model, cfg.Dim)
	return nil
}

func (i *Initializer) initOss() error {
	cfg := global.Config.Oss
	if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		global.Log.Info("configuração de OSS incompleta, upload de anexos desativado")
		return nil
	}

	client, err := oss.NewClient(cfg)
	if err != nil {
		global.Log.Warnf("falha ao inicializar o OSS: %v", err)
		return err
	}
	global.OssService = client
	global.Log.Info("serviço de OSS inicializado")
	return nil
}

func (i *Initializer) ossClose() error {
	if global.OssService != nil {
		return global.OssService.Close()
	}
	return nil
}
