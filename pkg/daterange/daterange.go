// Package daterange converte seleções lógicas de período (presets ou intervalo
// customizado) em datas concretas e calcula o período anterior equivalente
// usado nas comparações de tendência.
package daterange

import (
	"errors"
	"fmt"
	"math"
	"time"
)

type Preset string

const (
	Today       Preset = "today"
	Yesterday   Preset = "yesterday"
	Last3d      Preset = "last_3d"
	Last7d      Preset = "last_7d"
	Last14d     Preset = "last_14d"
	Last30d     Preset = "last_30d"
	Last90d     Preset = "last_90d"
	Last3Months Preset = "last_3months"
	ThisMonth   Preset = "this_month"
	LastMonth   Preset = "last_month"
	ThisYear    Preset = "this_year"
	LastYear    Preset = "last_year"
	Custom      Preset = "custom"
)

// RetentionMonths é o limite de retenção de dados da plataforma de anúncios.
const RetentionMonths = 37

// MaxCustomRangeDays é a janela máxima aceita para datas customizadas a partir de hoje.
const MaxCustomRangeDays = 365

var (
	ErrUnknownPreset      = errors.New("preset de data desconhecido")
	ErrMissingCustomRange = errors.New("intervalo customizado ausente")
	ErrInvalidCustomRange = errors.New("intervalo customizado inválido")
)

type CustomRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Selection struct {
	Preset Preset       `json:"preset"`
	Custom *CustomRange `json:"custom,omitempty"`
}

type Range struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

var lastNDays = map[Preset]int{
	Last3d:      3,
	Last7d:      7,
	Last14d:     14,
	Last30d:     30,
	Last90d:     90,
	Last3Months: 90,
}

// Resolve mapeia a seleção para um intervalo concreto relativo a now.
// Os presets last_N terminam ontem; this_month e this_year terminam hoje.
func Resolve(sel Selection, now time.Time) (Range, error) {
	today := dayOf(now)

	switch sel.Preset {
	case Today:
		return single(today), nil
	case Yesterday:
		return single(today.AddDate(0, 0, -1)), nil
	case ThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return between(start, today), nil
	case LastMonth:
		firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		start := firstOfThisMonth.AddDate(0, -1, 0)
		return between(start, firstOfThisMonth.AddDate(0, 0, -1)), nil
	case ThisYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return between(start, today), nil
	case LastYear:
		start := time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, today.Location())
		end := time.Date(today.Year()-1, time.December, 31, 0, 0, 0, 0, today.Location())
		return between(start, end), nil
	case Custom:
		if sel.Custom == nil {
			return Range{}, ErrMissingCustomRange
		}
		return Range{Since: sel.Custom.StartDate, Until: sel.Custom.EndDate}, nil
	}

	if days, ok := lastNDays[sel.Preset]; ok {
		end := today.AddDate(0, 0, -1)
		return between(end.AddDate(0, 0, -(days-1)), end), nil
	}

	return Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, sel.Preset)
}

// PreviousPeriod retorna a janela imediatamente anterior com o mesmo número de dias.
// Retorna nil quando o início cairia antes do limite de retenção da plataforma.
func PreviousPeriod(sel Selection, now time.Time) (*Range, error) {
	current, err := Resolve(sel, now)
	if err != nil {
		return nil, err
	}

	since, err := parse(current.Since)
	if err != nil {
		return nil, err
	}
	until, err := parse(current.Until)
	if err != nil {
		return nil, err
	}

	days := DiffDays(since, until)
	prevEnd := since.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))

	floor := utcDay(now).AddDate(0, -RetentionMonths, 0)
	if prevStart.Before(floor) {
		return nil, nil
	}

	r := between(prevStart, prevEnd)
	return &r, nil
}

// DiffDays conta os dias do intervalo incluindo as duas pontas.
func DiffDays(start, end time.Time) int {
	diff := math.Abs(float64(end.Sub(start).Milliseconds()))
	return int(math.Ceil(diff/86400000)) + 1
}

// Validate aplica as regras de interface para intervalos customizados:
// início <= fim e ambas as datas dentro de 365 dias a partir de hoje.
func (s Selection) Validate(now time.Time) error {
	if s.Preset != Custom {
		_, err := Resolve(s, now)
		return err
	}

	if s.Custom == nil {
		return ErrMissingCustomRange
	}

	start, err := parse(s.Custom.StartDate)
	if err != nil {
		return fmt.Errorf("%w: startDate %q", ErrInvalidCustomRange, s.Custom.StartDate)
	}
	end, err := parse(s.Custom.EndDate)
	if err != nil {
		return fmt.Errorf("%w: endDate %q", ErrInvalidCustomRange, s.Custom.EndDate)
	}

	if start.After(end) {
		return fmt.Errorf("%w: startDate posterior a endDate", ErrInvalidCustomRange)
	}

	floor := utcDay(now).AddDate(0, 0, -MaxCustomRangeDays)
	if start.Before(floor) || end.Before(floor) {
		return fmt.Errorf("%w: datas além de %d dias", ErrInvalidCustomRange, MaxCustomRangeDays)
	}

	return nil
}

// Days retorna o número de dias do intervalo.
func (r Range) Days() int {
	since, err1 := parse(r.Since)
	until, err2 := parse(r.Until)
	if err1 != nil || err2 != nil {
		return 0
	}
	return DiffDays(since, until)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// utcDay leva o dia local de t para meia-noite UTC, mesma base de parse.
func utcDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func single(d time.Time) Range {
	return between(d, d)
}

func between(start, end time.Time) Range {
	return Range{Since: start.Format(time.DateOnly), Until: end.Format(time.DateOnly)}
}

// parse interpreta a data em UTC; apenas a diferença entre datas importa aqui.
func parse(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
