package initialize

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/router"
	"github.com/empregga/eva-portal/service"
	"github.com/empregga/eva-portal/task"
	"github.com/empregga/eva-portal/utils"
	"github.com/gin-gonic/gin"
)

var server *http.Server

func (i *Initializer) InitLogger() {
	ginfile, err := i.setupLogFile(global.Config.GinLogPath)
	if err != nil {
		global.Log.Fatalf("falha ao inicializar o log do gin: %v", err)
	}

	gin.DefaultWriter = io.MultiWriter(os.Stdout, ginfile)
	gin.DefaultErrorWriter = gin.DefaultWriter
	gin.DisableConsoleColor()
}

func Start(initializer *Initializer, taskManager *task.Manager, startTime time.Time) {
	initializer.StartSystem(taskManager)

	service.Setup()

	initGinServer()
	go startServer()

	logStartupInfo(startTime)

	waitForShutdown()
}

func initGinServer() {
	mode := gin.ReleaseMode
	if global.Config.Debug {
		mode = gin.DebugMode
	}
	gin.SetMode(mode)

	ginServer := gin.New()
	ginServer.Use(gin.Logger(), gin.Recovery())
	router.Start(ginServer)

	ginServer.ForwardedByClientIP = true

	server = &http.Server{
		Addr:    global.Config.GinAddr,
		Handler: ginServer,
	}
}

func startServer() {
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		global.Log.Panic("servidor falhou: ", err.Error())
	}
}

func logStartupInfo(startTime time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	global.Log.Infof("serviço iniciado, tempo: %v, Go: %s, porta: %s, modo: %s, PID: %d, memória: %gMiB",
		time.Since(startTime), runtime.Version(), global.Config.GinAddr, gin.Mode(), syscall.Getpid(),
		utils.NumberFormat(float32(m.Alloc)/1024/1024))
}

// waitForShutdown bloqueia até SIGINT/SIGTERM e então drena as requisições.
func waitForShutdown() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	global.Log.Infof("encerrando..., porta: %s, pid: %d", global.Config.GinAddr, syscall.Getpid())

	shutdownServer()
}

func shutdownServer() {
	// Até 5 segundos para terminar as requisições em andamento.
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(timeoutCtx); err != nil {
		global.Log.Panicln("erro no desligamento do servidor: ", err)
	}
	global.Log.Infoln("serviço encerrado")
}
