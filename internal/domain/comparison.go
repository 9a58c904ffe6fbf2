package domain

// Tipos de período usados nas comparações
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// PeriodRange representa o intervalo (inclusivo) de datas de um período
type PeriodRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PeriodRanges contém os intervalos de cada tipo de período para a data base
type PeriodRanges struct {
	Daily   PeriodRange `json:"daily"`
	Weekly  PeriodRange `json:"weekly"`
	Monthly PeriodRange `json:"monthly"`
}

// ComparisonData contém os totais por ano de comparação para cada tipo de período
type ComparisonData struct {
	Years   []string               `json:"years"`
	Daily   map[string]PeriodTotal `json:"daily"`
	Weekly  map[string]PeriodTotal `json:"weekly"`
	Monthly map[string]PeriodTotal `json:"monthly"`
	Periods PeriodRanges           `json:"periods"`
}

// ComparisonReport é a resposta de comparação para uma data base
type ComparisonReport struct {
	BaseDate    string `json:"base_date"`
	GeneratedAt string `json:"generated_at"`
	ComparisonData
}

// YearlySeries é a série diária por ano dentro de um intervalo de datas
type YearlySeries struct {
	StartDate string     `json:"start_date,omitempty"`
	EndDate   string     `json:"end_date,omitempty"`
	Dates     []string   `json:"dates"`
	Years     YearlyData `json:"years"`
}

// DailyPoint é um ponto da série mensal (dia do mês)
type DailyPoint struct {
	Day   int     `json:"day"`
	Sales float64 `json:"sales"`
	Count int     `json:"count"`
}

// MonthSeries é a série de um mês para um ano de comparação
type MonthSeries struct {
	Year   string       `json:"year"`
	Points []DailyPoint `json:"points"`
	Total  PeriodTotal  `json:"total"`
}

// MonthlyComparison compara o mesmo mês entre os anos de comparação
type MonthlyComparison struct {
	Month  int           `json:"month"`
	Years  []string      `json:"years"`
	Series []MonthSeries `json:"series"`
}

// SnapshotInfo descreve o snapshot carregado em memória
type SnapshotInfo struct {
	GeneratedAt  string         `json:"generated_at"`
	TotalRecords int            `json:"total_records"`
	SourceFile   string         `json:"source_file"`
	Years        map[string]int `json:"years"`
	LoadedAt     string         `json:"loaded_at"`
}
