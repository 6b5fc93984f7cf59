package initialize

import (
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/task"
	"github.com/robfig/cron/v3"
)

func (i *Initializer) timerStart(taskManager *task.Manager) error {
	i.cron = cron.New([]cron.Option{
		cron.WithLocation(global.Tz),
	}...)

	// Rede de segurança da vetorização assíncrona: pega unidades que
	// ficaram sem embedding por falha do provedor.
	if err := i.startCronJob(taskManager.EmbeddingReloader, "*/10 * * * *"); err != nil {
		return err
	}

	if err := i.startCronJob(taskManager.CleanUpLogs, "0 3 * * *"); err != nil {
		return err
	}

	i.cron.Start() //já roda em goroutine própria
	global.Log.Infoln("agendador de tarefas iniciado")
	return nil
}

func (i *Initializer) timerStop() {
	if i.cron == nil {
		return
	}
	i.cron.Stop()
	global.Log.Infoln("agendador de tarefas parado")
}

func (i *Initializer) startCronJob(job func() error, schedule string) error {
	_, err := i.cron.AddFunc(schedule, func() {
		if err := job(); err != nil {
			global.Log.Errorf("tarefa agendada falhou: %v", err)
		}
	})
	return err
}
