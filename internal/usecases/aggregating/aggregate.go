package aggregating

import (
	"sort"

	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

const yearKeyLength = 4

// AggregateByDay soma o valor e conta os registros de cada data.
// A data é usada como chave sem nenhuma validação de formato.
func AggregateByDay(records []domain.SalesRecord) domain.DailyAggregation {
	daily := make(domain.DailyAggregation)

	for _, record := range records {
		total := daily[record.Date]
		total.Sales += record.Amount
		total.Count++
		daily[record.Date] = total
	}

	return daily
}

// PartitionByYear agrupa os dias pelo prefixo de 4 caracteres da data
// e ordena cada ano pela data em ordem crescente
func PartitionByYear(daily domain.DailyAggregation) domain.YearlyData {
	yearly := make(domain.YearlyData)

	for date, total := range daily {
		year := YearKey(date)
		yearly[year] = append(yearly[year], domain.DailyBucket{
			Date:  date,
			Sales: total.Sales,
			Count: total.Count,
		})
	}

	// As datas são chaves únicas, então a ordem final não depende da iteração do mapa
	for year := range yearly {
		buckets := yearly[year]
		sort.Slice(buckets, func(i, j int) bool {
			return buckets[i].Date < buckets[j].Date
		})
	}

	return yearly
}

// ProcessSalesData executa a agregação diária seguida da separação por ano
func ProcessSalesData(records []domain.SalesRecord) domain.YearlyData {
	return PartitionByYear(AggregateByDay(records))
}

// YearKey retorna os 4 primeiros caracteres da data.
// Datas menores que 4 caracteres são usadas inteiras.
func YearKey(date string) string {
	if len(date) < yearKeyLength {
		return date
	}
	return date[:yearKeyLength]
}

// SortedYears retorna os anos disponíveis em ordem lexicográfica
func SortedYears(yearly domain.YearlyData) []string {
	years := make([]string, 0, len(yearly))
	for year := range yearly {
		years = append(years, year)
	}
	sort.Strings(years)
	return years
}
