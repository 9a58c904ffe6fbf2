package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrNoDataLoaded        = errors.New("nenhum dado de vendas carregado")
	ErrSnapshotUnavailable = errors.New("snapshot de vendas indisponível")
	ErrInvalidMonth        = errors.New("mês inválido")
	ErrInvalidDateRange    = errors.New("intervalo de datas inválido")
	ErrStoreDisabled       = errors.New("persistência de vendas desabilitada")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// ReportError é um erro com contexto adicional para relatórios de vendas
type ReportError struct {
	Err     error          // Erro base
	Code    string         // Código de erro para API
	Details string         // Detalhes adicionais
	Meta    map[string]any // Dados extras para o cliente, como a ação de recuperação
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// WithMeta anexa dados extras ao erro
func (e *ReportError) WithMeta(key string, value any) *ReportError {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}
