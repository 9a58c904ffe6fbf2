package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/reporting"
)

// SnapshotSyncConfig representa a configuração do agendador de recarga do snapshot
type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotSyncService recarrega periodicamente o snapshot de vendas do dia anterior
type SnapshotSyncService struct {
	scheduler *gocron.Scheduler
	config    SnapshotSyncConfig
	reporter  reporting.Reporter
	now       func() time.Time
	ctx       context.Context

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastBaseDate        string
	lastTotalRecords    int
	lastError           string
}

// NewSnapshotSyncService cria uma nova instância do agendador de recarga do snapshot
func NewSnapshotSyncService(reporter reporting.Reporter, appConfig *config.Config) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot carregada")

	return &SnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		reporter:  reporter,
		now:       time.Now,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do snapshot desabilitada por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshot força a recarga do snapshot de ontem; execuções sobrepostas são ignoradas
func (s *SnapshotSyncService) syncSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do snapshot já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	baseDate := reporting.DefaultBaseDate(startTime)

	logrus.WithField("base_date", baseDate.Format(time.DateOnly)).Info("Iniciando recarga do snapshot de vendas")

	info, err := s.reporter.Load(s.ctx, baseDate, true)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastBaseDate = baseDate.Format(time.DateOnly)

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao recarregar o snapshot de vendas")
		return
	}

	s.lastError = ""
	s.lastTotalRecords = info.TotalRecords
	s.lastSyncCompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"duration":      s.lastSyncCompletedAt.Sub(startTime).String(),
		"total_records": info.TotalRecords,
	}).Info("Recarga do snapshot de vendas concluída")
}

// TriggerManualSync dispara a recarga fora do agendamento; retorna false se já houver uma em andamento
func (s *SnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do snapshot já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do snapshot")
	go s.syncSnapshot()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_base_date":         s.lastBaseDate,
		"last_total_records":     s.lastTotalRecords,
		"last_error":             s.lastError,
	}
}
