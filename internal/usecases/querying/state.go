package querying

import (
	"errors"
	"time"

	"github.com/bsocial/adhub-api/pkg/cache"
)

var ErrQueryDisabled = errors.New("consulta desabilitada: contas ou token ausentes")

type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State é o estado observável de uma consulta.
// Data continua preenchido com o último resultado válido mesmo quando Status é error.
type State struct {
	Data       any       `json:"data,omitempty"`
	Error      error     `json:"-"`
	Status     Status    `json:"status"`
	IsFetching bool      `json:"isFetching"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Generation uint64    `json:"generation"`
}

func (s State) HasData() bool {
	return s.Status == StatusSuccess || (s.Status == StatusError && !s.UpdatedAt.IsZero())
}

// Options controla uma chamada a Query.
type Options struct {
	Enabled   bool
	StaleTime time.Duration
}

// EnabledFor habilita a consulta apenas com contas e token.
func EnabledFor(accountIDs []string, token string) bool {
	return len(accountIDs) > 0 && token != ""
}

// Key identifica uma consulta pelo valor dos seus parâmetros.
type Key string

func NewKey(name string, parts ...any) Key {
	return Key(cache.Key(name, parts...))
}
