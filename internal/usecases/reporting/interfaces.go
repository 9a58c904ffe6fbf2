package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

// Reporter expõe os relatórios de comparação de vendas sobre o snapshot carregado
type Reporter interface {
	// Load carrega o snapshot da data base; reaproveita os dados já carregados quando force é falso
	Load(ctx context.Context, baseDate time.Time, force bool) (*domain.SnapshotInfo, error)

	// GetComparisons compara dia, semana e mês da data base entre os anos de comparação
	GetComparisons(ctx context.Context, baseDate time.Time) (*domain.ComparisonReport, error)

	// GetYearlySeries retorna as séries diárias por ano dentro do intervalo (limites vazios são abertos)
	GetYearlySeries(ctx context.Context, startDate, endDate string) (*domain.YearlySeries, error)

	// GetMonthlyComparison retorna os pontos diários de um mês para cada ano de comparação
	GetMonthlyComparison(ctx context.Context, month int, baseDate time.Time) (*domain.MonthlyComparison, error)

	GetSnapshotInfo() (*domain.SnapshotInfo, error)

	// GetStoredDailySales lê os totais diários persistidos no banco
	GetStoredDailySales(ctx context.Context, startDate, endDate string) ([]*domain.DailySalesEntry, error)

	Reset()
}
