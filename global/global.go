package global

import (
	"time"

	"github.com/empregga/eva-portal/internal/embedding"
	"github.com/empregga/eva-portal/internal/llm"
	"github.com/empregga/eva-portal/internal/oss"
	"github.com/empregga/eva-portal/internal/redis"
	"github.com/empregga/eva-portal/model/config"
	"github.com/sirupsen/logrus"
)

// Version é sobrescrita no build via -ldflags.
var Version = "dev"

// Instâncias globais, construídas uma única vez na inicialização.
// A lógica de negócio não deve modificá-las.
var (
	Config           *config.Config = new(config.Config) //tipo ponteiro, com memória alocada
	Log              *logrus.Logger
	Tz               *time.Location
	LlmService       llm.Service
	EmbeddingService embedding.Service
	RedisClient      redis.Service
	OssService       oss.Service
)
