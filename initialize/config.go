package initialize

import (
	"flag"
	"fmt"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/config"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "arquivo de configuração.")
	flag.StringVar(&Act, "a", "", `ação, vazio inicia o servidor; "sync": sincroniza embeddings; "cleanup": remove logs antigos;`)
}

// New carrega a configuração e liga o watch de hot reload.
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	if configPath == "" {
		configPath = `config.yaml`
	}

	initializer := &Initializer{}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		panic("falha ao ler a configuração: " + configPath + err.Error())
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("configuração alterada: ", e.Name)
		oldConfig := global.Config.DeepCopy()
		if err := v.Unmarshal(global.Config); err != nil {
			fmt.Println(err)
			return
		}
		handleConfig(global.Config)
		initializer.HandleConfigChange(oldConfig, global.Config)
	})

	if err := v.Unmarshal(global.Config); err != nil {
		panic("configuração inválida: " + err.Error())
	}

	handleConfig(global.Config)

	return initializer
}

// handleConfig aplica os valores padrão.
func handleConfig(c *config.Config) {
	if c.ProjectName == "" {
		c.ProjectName = "EVA - Assistente Empregga"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":8080"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.LogRetentionDays == 0 {
		c.LogRetentionDays = 30
	}
	if c.Tz == "" {
		c.Tz = "America/Sao_Paulo"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"*"}
	}

	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.Dbname == "" {
		c.Database.Dbname = "eva"
	}
	if c.Database.Username == "" {
		c.Database.Username = "postgres"
	}
	if c.Database.Sslmode == "" {
		c.Database.Sslmode = "disable"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.SessionPrefix == "" {
		c.Redis.SessionPrefix = "eva:session:"
	}
	if c.Redis.SessionTTL == 0 {
		c.Redis.SessionTTL = 604800 // 7 dias
	}

	if c.Llm.Model == "" {
		c.Llm.Model = "gpt-4o-mini"
	}
	if c.Llm.Timeout == 0 {
		c.Llm.Timeout = 60
	}
	if c.Llm.Temperature == nil {
		t := float32(0.1)
		c.Llm.Temperature = &t
	}

	if c.LlmEmbedding.Model == "" {
		c.LlmEmbedding.Model = "text-embedding-3-small"
	}
	if c.LlmEmbedding.Timeout == 0 {
		c.LlmEmbedding.Timeout = 30
	}
	if c.LlmEmbedding.Dim == 0 {
		c.LlmEmbedding.Dim = 1536
	}

	if c.Ai.VectorSearchTopK == 0 {
		c.Ai.VectorSearchTopK = 4
	}
	if c.Ai.VectorSearchMinSimilarity == 0 {
		c.Ai.VectorSearchMinSimilarity = 0.6
	}
	if c.Ai.HistoryWindow == 0 {
		c.Ai.HistoryWindow = 3
	}
	if c.Ai.CurationSearchLimit == 0 {
		c.Ai.CurationSearchLimit = 5
	}
	if c.Ai.MaxQueryLength == 0 {
		c.Ai.MaxQueryLength = 2000
	}

	if c.Handoff.Timeout == 0 {
		c.Handoff.Timeout = 15
	}
	if c.Handoff.FallbackEmail == "" {
		c.Handoff.FallbackEmail = "suporte@empregga.com.br"
	}
	if c.Handoff.FallbackName == "" {
		c.Handoff.FallbackName = "Agente Empregga"
	}
}
