package main

import (
	"fmt"
	"time"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/initialize"
	"github.com/empregga/eva-portal/task"
)

func main() {
	startTime := time.Now()
	initSvc := initialize.New()

	if err := initSvc.InitTz(); err != nil {
		panic(fmt.Sprintf("falha ao configurar o fuso horário: %v", err))
	}

	if err := initSvc.InitLog(); err != nil {
		panic(fmt.Sprintf("falha ao inicializar o log: %v", err))
	}

	defer func() {
		if p := recover(); p != nil {
			global.Log.Errorln(p)
		}
	}()

	if err := initSvc.Run(); err != nil {
		global.Log.Fatalf("falha na inicialização de serviço crítico: %v", err)
	}
	defer initSvc.Close()

	initSvc.InitLogger()

	taskManager := task.NewManager(global.EmbeddingService)

	if initialize.Act != "" {
		dispatchAction(initialize.Act, taskManager)
		return
	}

	initialize.Start(initSvc, taskManager, startTime)
}

func dispatchAction(action string, taskManager *task.Manager) {
	global.Log.Infof("executando tarefa: %s", action)
	var err error
	switch action {
	case "sync":
		err = taskManager.EmbeddingReloader()
	case "cleanup":
		err = taskManager.CleanUpLogs()
	default:
		fmt.Println("tarefa desconhecida, valores aceitos: sync, cleanup")
		return
	}

	if err == nil {
		global.Log.Infof("tarefa '%s' concluída", action)
	} else {
		global.Log.Errorf("tarefa '%s' falhou: %v", action, err)
	}
}
