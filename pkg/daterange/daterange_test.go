package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Data de referência dos testes: 15 de março de 2024 (ano bissexto)
var refNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		preset   Preset
		expected Range
	}{
		{name: "Hoje", preset: Today, expected: Range{Since: "2024-03-15", Until: "2024-03-15"}},
		{name: "Ontem", preset: Yesterday, expected: Range{Since: "2024-03-14", Until: "2024-03-14"}},
		{name: "Últimos 3 dias terminam ontem", preset: Last3d, expected: Range{Since: "2024-03-12", Until: "2024-03-14"}},
		{name: "Últimos 7 dias terminam ontem", preset: Last7d, expected: Range{Since: "2024-03-08", Until: "2024-03-14"}},
		{name: "Últimos 14 dias", preset: Last14d, expected: Range{Since: "2024-03-01", Until: "2024-03-14"}},
		{name: "Últimos 30 dias atravessam fevereiro bissexto", preset: Last30d, expected: Range{Since: "2024-02-14", Until: "2024-03-14"}},
		{name: "Últimos 90 dias", preset: Last90d, expected: Range{Since: "2023-12-16", Until: "2024-03-14"}},
		{name: "Últimos 3 meses equivalem a 90 dias", preset: Last3Months, expected: Range{Since: "2023-12-16", Until: "2024-03-14"}},
		{name: "Este mês começa no dia 1 e termina hoje", preset: ThisMonth, expected: Range{Since: "2024-03-01", Until: "2024-03-15"}},
		{name: "Mês passado inteiro", preset: LastMonth, expected: Range{Since: "2024-02-01", Until: "2024-02-29"}},
		{name: "Este ano começa em 1 de janeiro", preset: ThisYear, expected: Range{Since: "2024-01-01", Until: "2024-03-15"}},
		{name: "Ano passado inteiro", preset: LastYear, expected: Range{Since: "2023-01-01", Until: "2023-12-31"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(Selection{Preset: tt.preset}, refNow)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, got.Since, got.Until)
		})
	}
}

func TestResolve_LastNDaysSpanExactlyNDays(t *testing.T) {
	yesterday := refNow.AddDate(0, 0, -1).Format(time.DateOnly)

	for preset, days := range lastNDays {
		got, err := Resolve(Selection{Preset: preset}, refNow)
		require.NoError(t, err)
		assert.Equal(t, yesterday, got.Until, "preset %s deve terminar ontem", preset)
		assert.Equal(t, days, got.Days(), "preset %s deve cobrir %d dias", preset, days)
	}
}

func TestResolve_Custom(t *testing.T) {
	sel := Selection{Preset: Custom, Custom: &CustomRange{StartDate: "2024-01-10", EndDate: "2024-01-20"}}

	got, err := Resolve(sel, refNow)
	require.NoError(t, err)
	assert.Equal(t, Range{Since: "2024-01-10", Until: "2024-01-20"}, got)

	_, err = Resolve(Selection{Preset: Custom}, refNow)
	assert.ErrorIs(t, err, ErrMissingCustomRange)
}

func TestResolve_UnknownPreset(t *testing.T) {
	_, err := Resolve(Selection{Preset: "last_decade"}, refNow)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		expected *Range
	}{
		{
			name:     "Últimos 7 dias - semana anterior",
			sel:      Selection{Preset: Last7d},
			expected: &Range{Since: "2024-03-01", Until: "2024-03-07"},
		},
		{
			name:     "Hoje - dia anterior",
			sel:      Selection{Preset: Today},
			expected: &Range{Since: "2024-03-14", Until: "2024-03-14"},
		},
		{
			name:     "Ano passado - ano retrasado",
			sel:      Selection{Preset: LastYear},
			expected: &Range{Since: "2022-01-01", Until: "2022-12-31"},
		},
		{
			name:     "Customizado dentro da retenção",
			sel:      Selection{Preset: Custom, Custom: &CustomRange{StartDate: "2021-03-01", EndDate: "2021-03-10"}},
			expected: &Range{Since: "2021-02-19", Until: "2021-02-28"},
		},
		{
			name:     "Customizado além de 37 meses - sem comparação",
			sel:      Selection{Preset: Custom, Custom: &CustomRange{StartDate: "2021-02-20", EndDate: "2021-03-01"}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PreviousPeriod(tt.sel, refNow)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPreviousPeriod_Symmetry(t *testing.T) {
	presets := []Preset{Today, Yesterday, Last3d, Last7d, Last14d, Last30d, Last90d, Last3Months, ThisMonth, LastMonth, ThisYear, LastYear}

	for _, p := range presets {
		current, err := Resolve(Selection{Preset: p}, refNow)
		require.NoError(t, err)

		prev, err := PreviousPeriod(Selection{Preset: p}, refNow)
		require.NoError(t, err)
		require.NotNil(t, prev, "preset %s deveria ter período anterior", p)

		assert.Equal(t, current.Days(), prev.Days(), "preset %s deve manter o número de dias", p)

		since, _ := time.Parse(time.DateOnly, current.Since)
		assert.Equal(t, since.AddDate(0, 0, -1).Format(time.DateOnly), prev.Until, "preset %s deve terminar um dia antes", p)
	}
}

func TestDiffDays(t *testing.T) {
	start := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DiffDays(start, start))
	assert.Equal(t, 7, DiffDays(start, start.AddDate(0, 0, 6)))
	assert.Equal(t, 7, DiffDays(start.AddDate(0, 0, 6), start), "ordem das datas não importa")
}

func TestSelection_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selection
		wantErr error
	}{
		{name: "Preset válido", sel: Selection{Preset: Last30d}},
		{name: "Customizado válido", sel: Selection{Preset: Custom, Custom: &CustomRange{StartDate: "2024-01-01", EndDate: "2024-02-01"}}},
		{name: "Customizado invertido", sel: Selection{Preset: Custom, Custom: &CustomRange{StartDate: "2024-02-01", EndDate: "2024-01-01"}}, wantErr: ErrInvalidCustomRange},
		{name: "Customizado além de 365 dias", sel: Selection{Preset: Custom, Custom: &CustomRange{StartDate: "2022-01-01", EndDate: "2022-02-01"}}, wantErr: ErrInvalidCustomRange},
		{name: "Customizado com data malformada", sel: Selection{Preset: Custom, Custom: &CustomRange{StartDate: "01/01/2024", EndDate: "2024-02-01"}}, wantErr: ErrInvalidCustomRange},
		{name: "Customizado sem intervalo", sel: Selection{Preset: Custom}, wantErr: ErrMissingCustomRange},
		{name: "Preset desconhecido", sel: Selection{Preset: "forever"}, wantErr: ErrUnknownPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate(refNow)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
