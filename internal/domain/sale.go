package domain

import "time"

// SalesRecord representa uma venda individual exportada pelo sistema de reservas
type SalesRecord struct {
	Date      string  `json:"date"`
	BookingNo string  `json:"booking_no"`
	Amount    float64 `json:"amount"`
}

// SalesData é o snapshot mais recente de vendas
type SalesData struct {
	GeneratedAt  string        `json:"generated_at"`
	TotalRecords int           `json:"total_records"`
	SalesData    []SalesRecord `json:"sales_data"`
}

// ArchiveData é o arquivo anual de vendas já consolidadas
type ArchiveData struct {
	Year         int           `json:"year"`
	ArchivedAt   string        `json:"archived_at"`
	TotalRecords int           `json:"total_records"`
	SalesData    []SalesRecord `json:"sales_data"`
}

// PeriodTotal é o par {vendas, quantidade} de um período. O valor zero representa ausência de dados.
type PeriodTotal struct {
	Sales float64 `json:"sales"`
	Count int     `json:"count"`
}

// Add soma outro total ao período
func (p PeriodTotal) Add(other PeriodTotal) PeriodTotal {
	return PeriodTotal{
		Sales: p.Sales + other.Sales,
		Count: p.Count + other.Count,
	}
}

// DailyBucket agrega as vendas de um único dia
type DailyBucket struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
	Count int     `json:"count"`
}

// Total retorna o par {vendas, quantidade} do dia
func (b DailyBucket) Total() PeriodTotal {
	return PeriodTotal{Sales: b.Sales, Count: b.Count}
}

// DailyAggregation mapeia a data (YYYY-MM-DD) para o total do dia
type DailyAggregation map[string]PeriodTotal

// YearlyData mapeia o ano (4 caracteres) para os dias em ordem crescente de data
type YearlyData map[string][]DailyBucket

// DailySalesEntry representa um dia agregado persistido no banco
type DailySalesEntry struct {
	Date      string    `json:"date"`
	Year      string    `json:"year"`
	Sales     float64   `json:"sales"`
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}
