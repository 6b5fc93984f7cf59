package initialize

import (
	"context"
	"reflect"
	"strings"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/config"
	"github.com/empregga/eva-portal/service"
	"golang.org/x/sync/errgroup"
)

// HandleConfigChange recarrega em paralelo o que pode ser recarregado a
// quente; o resto vira aviso de reinício.
func (i *Initializer) HandleConfigChange(oldConfig, newConfig *config.Config) {
	i.reloadLock.Lock()
	defer i.reloadLock.Unlock()

	var restartNeeded []string

	// Configurações que exigem reinício do processo.
	if !reflect.DeepEqual(oldConfig.Database, newConfig.Database) {
		restartNeeded = append(restartNeeded, "database")
	}
	if oldConfig.GinAddr != newConfig.GinAddr {
		restartNeeded = append(restartNeeded, "gin_addr")
	}
	if oldConfig.GinLogPath != newConfig.GinLogPath || oldConfig.RunLogPath != newConfig.RunLogPath {
		restartNeeded = append(restartNeeded, "log_path")
	}

	eg, _ := errgroup.WithContext(context.Background())
	servicesDirty := false

	if oldConfig.Tz != newConfig.Tz {
		eg.Go(func() error {
			if err := i.InitTz(); err != nil {
				global.Log.Errorf("recarga do fuso horário falhou: %v", err)
				return err
			}
			return nil
		})
	}

	if !reflect.DeepEqual(oldConfig.Redis, newConfig.Redis) {
		servicesDirty = true
		eg.Go(func() error {
			if err := i.redisClose(); err != nil {
				global.Log.Warnf("falha ao fechar o cliente Redis antigo: %v", err)
			}
			if err := i.initRedis(); err != nil {
				global.Log.Errorf("recarga do Redis falhou: %v", err)
				return err
			}
			return nil
		})
	}

	if !reflect.DeepEqual(oldConfig.Llm, newConfig.Llm) {
		servicesDirty = true
		eg.Go(func() error {
			if err := i.initLlm(); err != nil {
				global.Log.Errorf("recarga do serviço de geração falhou: %v", err)
				return err
			}
			return nil
		})
	}

	if !reflect.DeepEqual(oldConfig.LlmEmbedding, newConfig.LlmEmbedding) {
		servicesDirty = true
		eg.Go(func() error {
			if err := i.initLlmEmbedding(); err != nil {
				global.Log.Errorf("recarga do serviço de vetorização falhou: %v", err)
				return err
			}
			return nil
		})
	}

	if !reflect.DeepEqual(oldConfig.Oss, newConfig.Oss) {
		servicesDirty = true
		eg.Go(func() error {
			if err := i.ossClose(); err != nil {
				global.Log.Warnf("falha ao fechar o cliente OSS antigo: %v", err)
			}
			if err := i.initOss(); err != nil {
				global.Log.Errorf("recarga do OSS falhou: %v", err)
				return err
			}
			return nil
		})
	}

	if !reflect.DeepEqual(oldConfig.Ai, newConfig.Ai) ||
		!reflect.DeepEqual(oldConfig.Handoff, newConfig.Handoff) {
		servicesDirty = true
	}

	if err := eg.Wait(); err != nil {
		global.Log.Errorf("erro durante a recarga de configuração: %v", err)
	}

	// Os serviços capturam a configuração no construtor, então qualquer
	// cliente ou parâmetro novo exige reconstruir os grupos.
	if servicesDirty {
		service.Setup()
	}

	if len(restartNeeded) > 0 {
		global.Log.Warnf("alterações que exigem reinício do serviço: [%s]", strings.Join(restartNeeded, ", "))
	}

	global.Log.Info("recarga de configuração concluída")
}
