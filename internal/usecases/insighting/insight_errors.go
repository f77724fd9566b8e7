package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrNoAccounts        = errors.New("nenhuma conta de anúncios informada")
	ErrMissingToken      = errors.New("token de acesso não informado")
	ErrAllAccountsFailed = errors.New("falha ao consultar todas as contas")
	ErrInvalidBreakdown  = errors.New("breakdown inválido")
)

// InsightError é um erro com contexto adicional para consultas de insights
type InsightError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(err error, code string, details string) *InsightError {
	return &InsightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
