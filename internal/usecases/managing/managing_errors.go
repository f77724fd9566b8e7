package managing

import (
	"errors"
	"fmt"
)

var (
	ErrObjectIDRequired = errors.New("id do objeto é obrigatório")
	ErrMissingToken     = errors.New("token de acesso não informado")
	ErrInvalidStatus    = errors.New("status inválido")
	ErrInvalidBudget    = errors.New("orçamento inválido")
	ErrInvalidName      = errors.New("nome inválido")
	ErrMutationFailed   = errors.New("falha ao alterar objeto na plataforma")
)

// MutationError é um erro com contexto adicional para alterações
type MutationError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	ObjectID string // Objeto envolvido
	Details  string // Detalhes adicionais
}

func (e *MutationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

func NewMutationError(err error, code string, objectID string, details string) *MutationError {
	return &MutationError{
		Err:      err,
		Code:     code,
		ObjectID: objectID,
		Details:  details,
	}
}
