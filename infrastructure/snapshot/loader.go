package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxConcurrentArchives = 4

// ErrSnapshotNotFound indica que o snapshot mais recente não pôde ser carregado
var ErrSnapshotNotFound = errors.New("snapshot mais recente não encontrado")

// Loader carrega os arquivos anuais e o snapshot mais recente como um único conjunto de vendas
type Loader interface {
	LoadCombined(ctx context.Context, latestName string, now time.Time) (*domain.SalesData, error)
}

type SnapshotLoader struct {
	source           Source
	archiveStartYear int
}

func NewLoader(cfg config.Snapshot, source Source) Loader {
	return &SnapshotLoader{
		source:           source,
		archiveStartYear: cfg.ArchiveStartYear,
	}
}

// LatestFileName retorna o nome do snapshot gerado para a data
func LatestFileName(date time.Time) string {
	return date.Format(time.DateOnly) + ".json"
}

// ArchiveFileName retorna o nome do arquivo anual
func ArchiveFileName(year int) string {
	return fmt.Sprintf("archive/%d.json", year)
}

// ArchiveYears retorna os anos arquivados: do ano inicial até dois anos antes do ano atual
func ArchiveYears(startYear int, now time.Time) []int {
	years := make([]int, 0)
	for year := startYear; year < now.Year()-1; year++ {
		years = append(years, year)
	}
	return years
}

// LoadCombined lê os arquivos anuais em paralelo e o snapshot mais recente.
// Arquivos anuais ausentes são ignorados; a falta do snapshot mais recente é um erro.
func (l *SnapshotLoader) LoadCombined(ctx context.Context, latestName string, now time.Time) (*domain.SalesData, error) {
	years := ArchiveYears(l.archiveStartYear, now)

	logrus.WithFields(logrus.Fields{
		"archive_years": years,
		"latest_file":   latestName,
	}).Info("Carregando snapshots de vendas")

	archives := make([][]domain.SalesRecord, len(years))
	var latest domain.SalesData

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentArchives + 1)

	g.Go(func() error {
		if err := l.decode(gctx, latestName, &latest); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSnapshotNotFound, latestName, err)
		}
		return nil
	})

	for i, year := range years {
		i, year := i, year
		g.Go(func() error {
			var archive domain.ArchiveData
			if err := l.decode(gctx, ArchiveFileName(year), &archive); err != nil {
				logrus.WithFields(logrus.Fields{
					"year":  year,
					"error": err.Error(),
				}).Warn("Arquivo anual indisponível, ignorando")
				return nil
			}

			logrus.WithFields(logrus.Fields{
				"year":    year,
				"records": archive.TotalRecords,
			}).Info("Arquivo anual carregado com sucesso")

			archives[i] = archive.SalesData
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]domain.SalesRecord, 0)
	for _, records := range archives {
		all = append(all, records...)
	}
	archiveCount := len(all)
	all = append(all, latest.SalesData...)

	if malformed := countMalformedDates(all); malformed > 0 {
		logrus.WithField("records", malformed).Warn("Registros com data fora do formato YYYY-MM-DD")
	}

	logrus.WithFields(logrus.Fields{
		"archive_records": archiveCount,
		"latest_records":  len(latest.SalesData),
		"total_records":   len(all),
	}).Info("Snapshots de vendas combinados")

	return &domain.SalesData{
		GeneratedAt:  latest.GeneratedAt,
		TotalRecords: len(all),
		SalesData:    all,
	}, nil
}

func (l *SnapshotLoader) decode(ctx context.Context, name string, target any) error {
	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(target); err != nil {
		return fmt.Errorf("erro ao decodificar %s: %w", name, err)
	}

	return nil
}

func countMalformedDates(records []domain.SalesRecord) int {
	malformed := 0
	for _, record := range records {
		if _, err := time.Parse(time.DateOnly, record.Date); err != nil {
			malformed++
		}
	}
	return malformed
}
