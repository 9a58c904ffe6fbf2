package comparing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/aggregating"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func yearlyFrom(records ...domain.SalesRecord) domain.YearlyData {
	return aggregating.ProcessSalesData(records)
}

func yearsOnly(keys ...string) domain.YearlyData {
	yearly := make(domain.YearlyData)
	for _, key := range keys {
		yearly[key] = []domain.DailyBucket{{Date: key + "-01-01", Sales: 1, Count: 1}}
	}
	return yearly
}

func TestComparisonYears(t *testing.T) {
	tests := []struct {
		name     string
		baseDate time.Time
		yearly   domain.YearlyData
		expected []string
	}{
		{
			name:     "sem dados usa os três anos até a data base",
			baseDate: date(2025, 6, 2),
			yearly:   nil,
			expected: []string{"2023", "2024", "2025"},
		},
		{
			name:     "dados cobrem os três anos padrão",
			baseDate: date(2025, 6, 2),
			yearly:   yearsOnly("2021", "2022", "2023", "2024", "2025"),
			expected: []string{"2023", "2024", "2025"},
		},
		{
			name:     "dados antigos usam os três mais recentes disponíveis",
			baseDate: date(2025, 6, 2),
			yearly:   yearsOnly("2019", "2020", "2021", "2022"),
			expected: []string{"2020", "2021", "2022"},
		},
		{
			name:     "menos de três anos disponíveis",
			baseDate: date(2025, 6, 2),
			yearly:   yearsOnly("2022", "2021"),
			expected: []string{"2021", "2022"},
		},
		{
			name:     "falta um ano do intervalo padrão",
			baseDate: date(2024, 3, 1),
			yearly:   yearsOnly("2022", "2024"),
			expected: []string{"2022", "2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComparisonYears(tt.baseDate, tt.yearly))
		})
	}
}

func TestCompare_SpecScenario(t *testing.T) {
	yearly := yearlyFrom(
		domain.SalesRecord{Date: "2024-06-01", Amount: 100},
		domain.SalesRecord{Date: "2024-06-01", Amount: 50},
		domain.SalesRecord{Date: "2024-06-02", Amount: 10},
		domain.SalesRecord{Date: "2023-01-10", Amount: 70},
		domain.SalesRecord{Date: "2022-12-01", Amount: 90},
	)

	result := Compare(yearly, date(2024, 6, 2))

	require.Equal(t, []string{"2022", "2023", "2024"}, result.Years)

	assert.Equal(t, domain.PeriodTotal{Sales: 10, Count: 1}, result.Daily["2024"])
	assert.Equal(t, domain.PeriodTotal{Sales: 160, Count: 3}, result.Weekly["2024"])
	assert.Equal(t, domain.PeriodTotal{Sales: 160, Count: 3}, result.Monthly["2024"])

	for _, year := range []string{"2022", "2023"} {
		assert.Equal(t, domain.PeriodTotal{}, result.Daily[year])
		assert.Equal(t, domain.PeriodTotal{}, result.Weekly[year])
		assert.Equal(t, domain.PeriodTotal{}, result.Monthly[year])
	}
}

func TestCompare_WeeklyUsesISOWeekToDate(t *testing.T) {
	yearly := yearlyFrom(
		domain.SalesRecord{Date: "2024-06-02", Amount: 1},  // domingo anterior
		domain.SalesRecord{Date: "2024-06-03", Amount: 10}, // segunda
		domain.SalesRecord{Date: "2024-06-04", Amount: 20}, // terça (alvo)
		domain.SalesRecord{Date: "2024-06-05", Amount: 40}, // depois do alvo
		domain.SalesRecord{Date: "2023-06-01", Amount: 5},
		domain.SalesRecord{Date: "2025-06-04", Amount: 7},
	)

	result := Compare(yearly, date(2025, 6, 4))

	assert.Equal(t, domain.PeriodTotal{Sales: 20, Count: 1}, result.Daily["2024"])
	assert.Equal(t, domain.PeriodTotal{Sales: 30, Count: 2}, result.Weekly["2024"])
	assert.Equal(t, domain.PeriodTotal{Sales: 31, Count: 3}, result.Monthly["2024"])
}

func TestCompare_WeekCrossesMonthBoundary(t *testing.T) {
	yearly := yearlyFrom(
		domain.SalesRecord{Date: "2025-09-28", Amount: 1},
		domain.SalesRecord{Date: "2025-09-29", Amount: 10},
		domain.SalesRecord{Date: "2025-10-01", Amount: 20},
		domain.SalesRecord{Date: "2025-10-02", Amount: 30},
		domain.SalesRecord{Date: "2024-10-02", Amount: 2},
		domain.SalesRecord{Date: "2023-10-02", Amount: 3},
	)

	result := Compare(yearly, date(2025, 10, 2))

	assert.Equal(t, domain.PeriodTotal{Sales: 60, Count: 3}, result.Weekly["2025"])
	assert.Equal(t, domain.PeriodTotal{Sales: 50, Count: 2}, result.Monthly["2025"])
	assert.Equal(t, domain.PeriodRange{Start: "2025-09-29", End: "2025-10-02"}, result.Periods.Weekly)
}

func TestCompare_WeekStaysInsideTargetYear(t *testing.T) {
	yearly := yearlyFrom(
		domain.SalesRecord{Date: "2021-12-27", Amount: 100},
		domain.SalesRecord{Date: "2022-01-01", Amount: 5},
		domain.SalesRecord{Date: "2022-01-02", Amount: 10},
		domain.SalesRecord{Date: "2023-01-02", Amount: 20},
		domain.SalesRecord{Date: "2024-01-01", Amount: 30},
		domain.SalesRecord{Date: "2024-01-02", Amount: 40},
	)

	result := Compare(yearly, date(2024, 1, 2))

	require.Equal(t, []string{"2022", "2023", "2024"}, result.Years)
	assert.Equal(t, domain.PeriodTotal{Sales: 15, Count: 2}, result.Weekly["2022"])
	assert.Equal(t, domain.PeriodTotal{Sales: 20, Count: 1}, result.Weekly["2023"])
	assert.Equal(t, domain.PeriodTotal{Sales: 70, Count: 2}, result.Weekly["2024"])
}

func TestCompare_LeapDayInNonLeapYear(t *testing.T) {
	yearly := yearlyFrom(
		domain.SalesRecord{Date: "2023-02-01", Amount: 1},
		domain.SalesRecord{Date: "2023-02-27", Amount: 10},
		domain.SalesRecord{Date: "2023-02-28", Amount: 20},
		domain.SalesRecord{Date: "2023-03-01", Amount: 40},
		domain.SalesRecord{Date: "2024-02-29", Amount: 5},
		domain.SalesRecord{Date: "2022-02-28", Amount: 3},
	)

	result := Compare(yearly, date(2024, 2, 29))

	assert.Equal(t, domain.PeriodTotal{}, result.Daily["2023"])
	assert.Equal(t, domain.PeriodTotal{Sales: 30, Count: 2}, result.Weekly["2023"])
	assert.Equal(t, domain.PeriodTotal{Sales: 31, Count: 3}, result.Monthly["2023"])
	assert.Equal(t, domain.PeriodTotal{Sales: 5, Count: 1}, result.Daily["2024"])
}

func TestCompare_FallbackDoesNotFail(t *testing.T) {
	yearly := yearlyFrom(
		domain.SalesRecord{Date: "2021-06-02", Amount: 10},
		domain.SalesRecord{Date: "2022-06-01", Amount: 20},
	)

	result := Compare(yearly, date(2025, 6, 2))

	assert.Equal(t, []string{"2021", "2022"}, result.Years)
	assert.Equal(t, domain.PeriodTotal{Sales: 10, Count: 1}, result.Daily["2021"])
	assert.Equal(t, domain.PeriodTotal{}, result.Daily["2022"])
	assert.Equal(t, domain.PeriodTotal{Sales: 20, Count: 1}, result.Monthly["2022"])
	assert.NotContains(t, result.Daily, "2025")
}

func TestCompare_EmptyData(t *testing.T) {
	result := Compare(domain.YearlyData{}, date(2025, 6, 2))

	assert.Equal(t, []string{"2023", "2024", "2025"}, result.Years)
	for _, year := range result.Years {
		assert.Equal(t, domain.PeriodTotal{}, result.Daily[year])
		assert.Equal(t, domain.PeriodTotal{}, result.Weekly[year])
		assert.Equal(t, domain.PeriodTotal{}, result.Monthly[year])
	}
}

func TestPeriodRanges(t *testing.T) {
	ranges := PeriodRanges(date(2024, 6, 2))

	assert.Equal(t, domain.PeriodRange{Start: "2024-06-02", End: "2024-06-02"}, ranges.Daily)
	assert.Equal(t, domain.PeriodRange{Start: "2024-05-27", End: "2024-06-02"}, ranges.Weekly)
	assert.Equal(t, domain.PeriodRange{Start: "2024-06-01", End: "2024-06-02"}, ranges.Monthly)
}

func TestTargetDate(t *testing.T) {
	assert.Equal(t, "2023-02-29", TargetDate("2023", date(2024, 2, 29)))
	assert.Equal(t, "2022-07-05", TargetDate("2022", date(2025, 7, 5)))
}
