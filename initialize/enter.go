package initialize

import (
	"context"
	"io"
	"sync"

	"github.com/empregga/eva-portal/task"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer concentra toda a inicialização do projeto.
type Initializer struct {
	cron           *cron.Cron
	logFileClosers []io.Closer
	reloadLock     sync.Mutex
}

// Run inicializa os serviços principais em paralelo.
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// Tarefas críticas: falha derruba o programa.
	eg.Go(i.dbStart)
	eg.Go(i.initRedis)

	// Não críticas: falha vira warning; o chat degrada mas o portal sobe.
	eg.Go(func() error {
		i.initLlm()
		return nil
	})
	eg.Go(func() error {
		i.initLlmEmbedding()
		return nil
	})
	eg.Go(func() error {
		i.initOss()
		return nil
	})

	return eg.Wait()
}

// Close libera os recursos na ordem inversa da inicialização.
func (i *Initializer) Close() {
	i.timerStop()
	i.dbClose()
	i.redisClose()
	i.ossClose()
	for _, closer := range i.logFileClosers {
		closer.Close()
	}
}

// StartSystem liga o agendador de tarefas de fundo.
func (i *Initializer) StartSystem(taskManager *task.Manager) {
	if err := i.timerStart(taskManager); err != nil {
		panic(err)
	}
}
