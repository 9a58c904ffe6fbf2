package comparing

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/aggregating"
)

const comparisonYearCount = 3

// ComparisonYears define os anos comparados para a data base.
// O padrão é {ano-2, ano-1, ano}; se os dados não cobrem esses três anos,
// usa os três anos disponíveis mais recentes.
func ComparisonYears(baseDate time.Time, yearly domain.YearlyData) []string {
	baseYear := baseDate.Year()
	fallback := make([]string, 0, comparisonYearCount)
	for i := comparisonYearCount - 1; i >= 0; i-- {
		fallback = append(fallback, strconv.Itoa(baseYear-i))
	}

	if len(yearly) == 0 {
		return fallback
	}

	coversFallback := true
	for _, year := range fallback {
		if _, ok := yearly[year]; !ok {
			coversFallback = false
			break
		}
	}
	if coversFallback {
		return fallback
	}

	available := aggregating.SortedYears(yearly)
	if len(available) > comparisonYearCount {
		available = available[len(available)-comparisonYearCount:]
	}
	return available
}

// Compare calcula as comparações diária, semanal (semana ISO até a data) e mensal
// (mês até a data) para cada ano de comparação. Anos sem dados resultam em {0,0}.
func Compare(yearly domain.YearlyData, baseDate time.Time) domain.ComparisonData {
	years := ComparisonYears(baseDate, yearly)

	result := domain.ComparisonData{
		Years:   years,
		Daily:   make(map[string]domain.PeriodTotal, len(years)),
		Weekly:  make(map[string]domain.PeriodTotal, len(years)),
		Monthly: make(map[string]domain.PeriodTotal, len(years)),
		Periods: PeriodRanges(baseDate),
	}

	for _, year := range years {
		buckets := yearly[year]
		target := TargetDate(year, baseDate)

		result.Daily[year] = dayTotal(buckets, target)
		result.Weekly[year] = rangeTotal(buckets, weekStartFor(year, baseDate, target), target)
		result.Monthly[year] = rangeTotal(buckets, monthStartFor(year, baseDate), target)

		logrus.WithFields(logrus.Fields{
			"year":    year,
			"target":  target,
			"days":    len(buckets),
			"daily":   result.Daily[year],
			"weekly":  result.Weekly[year],
			"monthly": result.Monthly[year],
		}).Debug("Comparação calculada para o ano")
	}

	return result
}

// TargetDate monta a data {ano}-{mês}-{dia} usando o mês e o dia da data base.
// Não há validação de calendário: 29/02 em ano não bissexto nunca é encontrado.
func TargetDate(year string, baseDate time.Time) string {
	return fmt.Sprintf("%s-%02d-%02d", year, int(baseDate.Month()), baseDate.Day())
}

// PeriodRanges retorna os intervalos de cada período para o ano da data base
func PeriodRanges(baseDate time.Time) domain.PeriodRanges {
	year := strconv.Itoa(baseDate.Year())
	end := baseDate.Format(time.DateOnly)

	return domain.PeriodRanges{
		Daily:   domain.PeriodRange{Start: end, End: end},
		Weekly:  domain.PeriodRange{Start: weekStartFor(year, baseDate, end), End: end},
		Monthly: domain.PeriodRange{Start: monthStartFor(year, baseDate), End: end},
	}
}

func monthStartFor(year string, baseDate time.Time) string {
	return fmt.Sprintf("%s-%02d-01", year, int(baseDate.Month()))
}

// weekStartFor retorna a segunda-feira da semana ISO da data alvo. Quando o dia não
// existe no ano alvo, usa o último dia do mês; quando o ano não é numérico, a janela
// semanal se reduz à própria data alvo.
func weekStartFor(year string, baseDate time.Time, target string) string {
	y, err := strconv.Atoi(year)
	if err != nil {
		return target
	}

	day := baseDate.Day()
	if last := daysIn(y, baseDate.Month()); day > last {
		day = last
	}

	anchor := time.Date(y, baseDate.Month(), day, 0, 0, 0, 0, time.UTC)
	offset := (int(anchor.Weekday()) + 6) % 7
	return anchor.AddDate(0, 0, -offset).Format(time.DateOnly)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dayTotal(buckets []domain.DailyBucket, date string) domain.PeriodTotal {
	i := sort.Search(len(buckets), func(i int) bool {
		return buckets[i].Date >= date
	})
	if i < len(buckets) && buckets[i].Date == date {
		return buckets[i].Total()
	}
	return domain.PeriodTotal{}
}

func rangeTotal(buckets []domain.DailyBucket, start, end string) domain.PeriodTotal {
	var total domain.PeriodTotal

	i := sort.Search(len(buckets), func(i int) bool {
		return buckets[i].Date >= start
	})
	for ; i < len(buckets) && buckets[i].Date <= end; i++ {
		total = total.Add(buckets[i].Total())
	}

	return total
}
