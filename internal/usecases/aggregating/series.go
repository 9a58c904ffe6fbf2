package aggregating

import (
	"sort"
	"strconv"

	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

// FilterByDateRange mantém apenas os dias com start <= data <= end.
// Limites vazios não restringem o intervalo.
func FilterByDateRange(yearly domain.YearlyData, start, end string) domain.YearlyData {
	filtered := make(domain.YearlyData, len(yearly))

	for year, buckets := range yearly {
		from := 0
		if start != "" {
			from = sort.Search(len(buckets), func(i int) bool {
				return buckets[i].Date >= start
			})
		}

		to := len(buckets)
		if end != "" {
			to = sort.Search(len(buckets), func(i int) bool {
				return buckets[i].Date > end
			})
		}

		if from >= to {
			continue
		}

		selected := make([]domain.DailyBucket, to-from)
		copy(selected, buckets[from:to])
		filtered[year] = selected
	}

	return filtered
}

// UnionDates retorna todas as datas presentes em qualquer ano, ordenadas
func UnionDates(yearly domain.YearlyData) []string {
	seen := make(map[string]struct{})
	for _, buckets := range yearly {
		for _, bucket := range buckets {
			seen[bucket.Date] = struct{}{}
		}
	}

	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// MonthSeriesFor monta os pontos diários e o total de um mês para um ano
func MonthSeriesFor(yearly domain.YearlyData, year string, month int) domain.MonthSeries {
	series := domain.MonthSeries{
		Year:   year,
		Points: make([]domain.DailyPoint, 0),
	}

	prefix := year + "-" + twoDigits(month) + "-"
	for _, bucket := range yearly[year] {
		if len(bucket.Date) < len(prefix)+2 || bucket.Date[:len(prefix)] != prefix {
			continue
		}

		day, err := strconv.Atoi(bucket.Date[len(prefix) : len(prefix)+2])
		if err != nil {
			continue
		}

		series.Points = append(series.Points, domain.DailyPoint{
			Day:   day,
			Sales: bucket.Sales,
			Count: bucket.Count,
		})
		series.Total = series.Total.Add(bucket.Total())
	}

	return series
}

func twoDigits(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
