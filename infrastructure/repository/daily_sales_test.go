package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

func TestBuildUpsertQuery(t *testing.T) {
	entries := []*domain.DailySalesEntry{
		{Date: "2025-03-14", Year: "2025", Sales: 150, Count: 2},
		{Date: "2025-03-15", Year: "2025", Sales: 80.5, Count: 1},
	}

	query, args, err := buildUpsertQuery(entries)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO daily_sales (date,year,sales,count) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")
	assert.Contains(t, query, "ON CONFLICT (date) DO UPDATE SET")
	assert.Equal(t, []interface{}{"2025-03-14", "2025", 150.0, 2, "2025-03-15", "2025", 80.5, 1}, args)
}

func TestBuildRangeQuery(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "both bounds",
			start:     "2024-01-01",
			end:       "2024-12-31",
			wantWhere: "WHERE ds.date >= $1 AND ds.date <= $2",
			wantArgs:  []interface{}{"2024-01-01", "2024-12-31"},
		},
		{
			name:      "only start",
			start:     "2024-01-01",
			wantWhere: "WHERE ds.date >= $1",
			wantArgs:  []interface{}{"2024-01-01"},
		},
		{
			name: "unbounded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildRangeQuery(tt.start, tt.end)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM daily_sales ds")
			assert.Contains(t, query, "ORDER BY ds.date ASC")
			if tt.wantWhere != "" {
				assert.Contains(t, query, tt.wantWhere)
			} else {
				assert.NotContains(t, query, "WHERE")
			}
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
