package reporting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/infrastructure/repository"
	"github.com/vfg2006/sales-comparison-api/infrastructure/snapshot"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/comparing"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

// sharedLoadTimeout limita o carregamento compartilhado, que não segue o cancelamento de quem o iniciou
const sharedLoadTimeout = 5 * time.Minute

// loadedSnapshot é o estado em memória após um carregamento bem-sucedido
type loadedSnapshot struct {
	yearly domain.YearlyData
	info   domain.SnapshotInfo
}

// Service mantém o snapshot carregado e calcula os relatórios sobre ele
type Service struct {
	loader   snapshot.Loader
	store    repository.DailySalesRepository
	useStore bool
	now      func() time.Time

	mu         sync.RWMutex
	current    *loadedSnapshot
	generation uint64 // incrementado a cada Reset
	group      singleflight.Group
}

func NewService(loader snapshot.Loader) *Service {
	return &Service{
		loader: loader,
		now:    time.Now,
	}
}

// WithStore habilita a persistência dos totais diários após cada carregamento
func (s *Service) WithStore(store repository.DailySalesRepository) *Service {
	s.store = store
	s.useStore = store != nil
	return s
}

// DefaultBaseDate é a data base usada quando nenhuma é informada: ontem
func DefaultBaseDate(now time.Time) time.Time {
	return utils.Yesterday(now)
}

func (s *Service) Load(ctx context.Context, baseDate time.Time, force bool) (*domain.SnapshotInfo, error) {
	if !force {
		if current := s.snapshot(); current != nil {
			info := current.info
			return &info, nil
		}
	}

	latestName := snapshot.LatestFileName(baseDate)

	resultCh := s.group.DoChan(latestName, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()

		return s.load(loadCtx, latestName, baseDate)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultCh:
		if result.Err != nil {
			return nil, result.Err
		}

		if result.Shared {
			logrus.WithField("file", latestName).Debug("Carregamento de snapshot compartilhado com requisição concorrente")
		}

		info := result.Val.(*loadedSnapshot).info
		return &info, nil
	}
}

func (s *Service) load(ctx context.Context, latestName string, baseDate time.Time) (*loadedSnapshot, error) {
	startTime := s.now()

	s.mu.RLock()
	generation := s.generation
	s.mu.RUnlock()

	data, err := s.loader.LoadCombined(ctx, latestName, startTime)
	if err != nil {
		if errors.Is(err, snapshot.ErrSnapshotNotFound) {
			return nil, NewReportError(ErrSnapshotUnavailable, apiErrors.ErrSnapshotUnavailable, latestName).
				WithMeta("reset_base_date", DefaultBaseDate(startTime).Format(time.DateOnly))
		}
		return nil, NewReportError(fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err), apiErrors.ErrInternalServer, latestName)
	}

	yearly := aggregating.ProcessSalesData(data.SalesData)

	years := make(map[string]int, len(yearly))
	for year, buckets := range yearly {
		years[year] = len(buckets)
	}

	loaded := &loadedSnapshot{
		yearly: yearly,
		info: domain.SnapshotInfo{
			GeneratedAt:  data.GeneratedAt,
			TotalRecords: data.TotalRecords,
			SourceFile:   latestName,
			Years:        years,
			LoadedAt:     s.now().Format(time.RFC3339),
		},
	}

	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		logrus.WithField("file", latestName).Info("Dados descartados durante o carregamento, snapshot não aplicado")
		return loaded, nil
	}
	s.current = loaded
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"file":          latestName,
		"base_date":     baseDate.Format(time.DateOnly),
		"total_records": data.TotalRecords,
		"years":         len(yearly),
		"duration":      time.Since(startTime).String(),
	}).Info("Snapshot de vendas carregado")

	if s.useStore {
		s.persist(ctx, yearly)
	}

	return loaded, nil
}

// persist grava os totais diários; falhas são registradas sem invalidar o carregamento
func (s *Service) persist(ctx context.Context, yearly domain.YearlyData) {
	entries := make([]*domain.DailySalesEntry, 0)
	skipped := 0

	for _, year := range aggregating.SortedYears(yearly) {
		for _, bucket := range yearly[year] {
			if _, err := time.Parse(time.DateOnly, bucket.Date); err != nil {
				skipped++
				continue
			}
			entries = append(entries, &domain.DailySalesEntry{
				Date:  bucket.Date,
				Year:  year,
				Sales: bucket.Sales,
				Count: bucket.Count,
			})
		}
	}

	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warn("Dias com data inválida não serão persistidos")
	}

	if err := s.store.SaveBatch(ctx, entries); err != nil {
		logrus.WithError(err).Error("Erro ao persistir vendas diárias")
		return
	}

	logrus.WithField("days", len(entries)).Info("Vendas diárias persistidas")
}

func (s *Service) snapshot() *loadedSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Service) GetComparisons(ctx context.Context, baseDate time.Time) (*domain.ComparisonReport, error) {
	if _, err := s.Load(ctx, baseDate, false); err != nil {
		return nil, err
	}

	current := s.snapshot()
	if current == nil {
		return nil, NewReportError(ErrNoDataLoaded, apiErrors.ErrNoDataLoaded, "")
	}

	return &domain.ComparisonReport{
		BaseDate:       baseDate.Format(time.DateOnly),
		GeneratedAt:    current.info.GeneratedAt,
		ComparisonData: comparing.Compare(current.yearly, baseDate),
	}, nil
}

func (s *Service) GetYearlySeries(ctx context.Context, startDate, endDate string) (*domain.YearlySeries, error) {
	if startDate != "" && endDate != "" && startDate > endDate {
		return nil, NewReportError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("%s é posterior a %s", startDate, endDate))
	}

	if _, err := s.Load(ctx, DefaultBaseDate(s.now()), false); err != nil {
		return nil, err
	}

	current := s.snapshot()
	if current == nil {
		return nil, NewReportError(ErrNoDataLoaded, apiErrors.ErrNoDataLoaded, "")
	}

	filtered := aggregating.FilterByDateRange(current.yearly, startDate, endDate)

	return &domain.YearlySeries{
		StartDate: startDate,
		EndDate:   endDate,
		Dates:     aggregating.UnionDates(filtered),
		Years:     filtered,
	}, nil
}

func (s *Service) GetMonthlyComparison(ctx context.Context, month int, baseDate time.Time) (*domain.MonthlyComparison, error) {
	if month == 0 {
		month = int(baseDate.Month())
	}
	if month < 1 || month > 12 {
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, fmt.Sprintf("%d", month))
	}

	if _, err := s.Load(ctx, baseDate, false); err != nil {
		return nil, err
	}

	current := s.snapshot()
	if current == nil {
		return nil, NewReportError(ErrNoDataLoaded, apiErrors.ErrNoDataLoaded, "")
	}

	years := comparing.ComparisonYears(baseDate, current.yearly)
	series := make([]domain.MonthSeries, 0, len(years))
	for _, year := range years {
		series = append(series, aggregating.MonthSeriesFor(current.yearly, year, month))
	}

	return &domain.MonthlyComparison{
		Month:  month,
		Years:  years,
		Series: series,
	}, nil
}

func (s *Service) GetSnapshotInfo() (*domain.SnapshotInfo, error) {
	current := s.snapshot()
	if current == nil {
		return nil, NewReportError(ErrNoDataLoaded, apiErrors.ErrNoDataLoaded, "")
	}

	info := current.info
	return &info, nil
}

func (s *Service) GetStoredDailySales(ctx context.Context, startDate, endDate string) ([]*domain.DailySalesEntry, error) {
	if !s.useStore {
		return nil, NewReportError(ErrStoreDisabled, apiErrors.ErrServiceDisabled, "")
	}

	if startDate != "" && endDate != "" && startDate > endDate {
		return nil, NewReportError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("%s é posterior a %s", startDate, endDate))
	}

	entries, err := s.store.GetByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, NewReportError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "")
	}

	return entries, nil
}

// Reset descarta o snapshot carregado
func (s *Service) Reset() {
	s.mu.Lock()
	s.current = nil
	s.generation++
	s.mu.Unlock()

	logrus.Info("Dados de vendas descartados")
}
