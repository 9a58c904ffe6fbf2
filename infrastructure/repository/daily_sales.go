package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-comparison-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

const (
	dailySalesTable = "daily_sales ds"

	// limite de parâmetros do postgres é 65535, cada linha usa 4
	upsertChunkSize = 1000
)

type DailySalesRepository interface {
	SaveBatch(ctx context.Context, entries []*domain.DailySalesEntry) error
	GetByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.DailySalesEntry, error)
}

type dailySalesRepository struct {
	conn postgres.Conn
}

func NewDailySalesRepository(conn postgres.Conn) DailySalesRepository {
	return &dailySalesRepository{
		conn: conn,
	}
}

func (r *dailySalesRepository) SaveBatch(ctx context.Context, entries []*domain.DailySalesEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(entries); start += upsertChunkSize {
			end := start + upsertChunkSize
			if end > len(entries) {
				end = len(entries)
			}

			sqlQuery, args, err := buildUpsertQuery(entries[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

func buildUpsertQuery(entries []*domain.DailySalesEntry) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert("daily_sales").
		Columns("date", "year", "sales", "count")

	for _, entry := range entries {
		query = query.Values(entry.Date, entry.Year, entry.Sales, entry.Count)
	}

	return query.
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				year = EXCLUDED.year,
				sales = EXCLUDED.sales,
				count = EXCLUDED.count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildRangeQuery(startDate, endDate string) (string, []interface{}, error) {
	query := squirrel.
		Select("ds.date, ds.year, ds.sales, ds.count, ds.updated_at").
		From(dailySalesTable)

	if startDate != "" {
		query = query.Where(squirrel.GtOrEq{"ds.date": startDate})
	}
	if endDate != "" {
		query = query.Where(squirrel.LtOrEq{"ds.date": endDate})
	}

	return query.
		OrderBy("ds.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *dailySalesRepository) GetByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.DailySalesEntry, error) {
	query, args, err := buildRangeQuery(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.DailySalesEntry, 0)
	for rows.Next() {
		entry, err := scanDailySales(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas diárias: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func scanDailySales(rows *sql.Rows) (*domain.DailySalesEntry, error) {
	var (
		entry domain.DailySalesEntry
		date  time.Time
	)

	if err := rows.Scan(&date, &entry.Year, &entry.Sales, &entry.Count, &entry.UpdatedAt); err != nil {
		return nil, err
	}

	entry.Date = date.Format(time.DateOnly)

	return &entry, nil
}
