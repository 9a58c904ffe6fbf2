package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/api/handler"
	"github.com/vfg2006/sales-comparison-api/internal/api/handler/router"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-comparison-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	snapshotSyncService handler.SyncJob,
	onShutdown ...func(),
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SnapshotSyncService: snapshotSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Sales(reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           Handler(config, authenticator, rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: onShutdown,
	}

	return srv, nil
}

// Handler aplica a cadeia global de middlewares ao router
func Handler(config *config.Config, authenticator authenticating.Authenticator, rt http.Handler) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	for _, fn := range s.onShutdown {
		fn()
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
