package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, ctrl *gomock.Controller, enabled bool) (*SnapshotSyncService, *mocks.MockReporter) {
	t.Helper()

	reporter := mocks.NewMockReporter(ctrl)
	cfg := &config.Config{
		SnapshotSync: config.SnapshotSync{CronSchedule: "0 6 * * *", Enabled: enabled},
	}

	service := NewSnapshotSyncService(reporter, cfg)
	service.now = func() time.Time { return time.Date(2025, time.March, 16, 6, 0, 0, 0, time.UTC) }

	return service, reporter
}

func TestSnapshotSyncService_syncSnapshot(t *testing.T) {
	yesterday := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		loadInfo    *domain.SnapshotInfo
		loadErr     error
		wantError   string
		wantRecords int
	}{
		{
			name:        "Recarga com sucesso",
			loadInfo:    &domain.SnapshotInfo{TotalRecords: 42},
			wantRecords: 42,
		},
		{
			name:      "Falha ao carregar snapshot",
			loadErr:   errors.New("snapshot de vendas indisponível"),
			wantError: "snapshot de vendas indisponível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, reporter := newTestSyncService(t, ctrl, true)

			reporter.EXPECT().
				Load(gomock.Any(), yesterday, true).
				Return(tt.loadInfo, tt.loadErr)

			service.syncSnapshot()

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, "2025-03-15", status["last_base_date"])
			assert.Equal(t, tt.wantError, status["last_error"])
			assert.Equal(t, tt.wantRecords, status["last_total_records"])
		})
	}
}

func TestSnapshotSyncService_SkipsOverlappingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestSyncService(t, ctrl, true)
	service.syncRunning = true

	// o mock falha se Load for chamado
	service.syncSnapshot()
	assert.False(t, service.TriggerManualSync())
}

func TestSnapshotSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, reporter := newTestSyncService(t, ctrl, false)

	done := make(chan struct{})
	reporter.EXPECT().
		Load(gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(context.Context, time.Time, bool) (*domain.SnapshotInfo, error) {
			close(done)
			return &domain.SnapshotInfo{TotalRecords: 7}, nil
		})

	require.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executada")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_total_records"] == 7
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSnapshotSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestSyncService(t, ctrl, false)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, len(service.scheduler.Jobs()))
}

func TestSnapshotSyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestSyncService(t, ctrl, true)
	service.config.CronSchedule = "não é cron"

	err := service.Start(context.Background())
	assert.Error(t, err)
}
