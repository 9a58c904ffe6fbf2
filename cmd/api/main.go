package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-comparison-api/infrastructure/repository"
	"github.com/vfg2006/sales-comparison-api/infrastructure/snapshot"
	"github.com/vfg2006/sales-comparison-api/infrastructure/snapshot/snapshotclient"
	"github.com/vfg2006/sales-comparison-api/internal/api"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/scheduler"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := snapshot.NewLoader(cfg.Snapshot, snapshotSource(cfg.Snapshot))
	reportService := reporting.NewService(loader)

	var onShutdown []func()
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		onShutdown = append(onShutdown, func() { pgConn.Close() })

		if cfg.Database.MigrateOnStart {
			if err := postgres.RunMigrations(cfg.Database); err != nil {
				logrus.WithError(err).Fatal("Erro ao executar migrações")
			}
			logrus.Info("Migrações aplicadas com sucesso")
		}

		reportService.WithStore(repository.NewDailySalesRepository(pgConn))
	} else {
		logrus.Info("Banco de dados desabilitado, histórico de vendas indisponível")
	}

	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		logrus.Fatal(err)
	}

	snapshotSyncService := scheduler.NewSnapshotSyncService(reportService, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do snapshot")
	} else {
		logrus.Info("Agendador de recarga do snapshot iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		authenticator,
		snapshotSyncService,
		onShutdown...,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// snapshotSource escolhe de onde os arquivos de vendas são lidos
func snapshotSource(cfg config.Snapshot) snapshot.Source {
	if cfg.Source == config.SnapshotSourceHTTP {
		logrus.WithField("base_url", cfg.BaseURL).Info("Snapshots lidos via HTTP")
		return snapshotclient.NewClient(cfg)
	}

	logrus.WithField("data_dir", cfg.DataDir).Info("Snapshots lidos do disco")
	return snapshot.NewFileSource(cfg.DataDir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
