package insighting

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

// FetchTrend compara os totais do período com o período anterior de mesmo tamanho.
// Sem período anterior disponível (ou se a consulta dele falhar) Previous fica nil.
func (s *Service) FetchTrend(ctx context.Context, req domain.InsightRequest) (domain.Trend, error) {
	now := s.reference(req)
	req.Now = now

	rng, err := daterange.Resolve(req.Selection, now)
	if err != nil {
		return domain.Trend{}, NewInsightError(err, apiErrors.ErrInvalidRequest, string(req.Selection.Preset))
	}

	current, err := s.FetchAccountInsights(ctx, req)
	if err != nil {
		return domain.Trend{}, err
	}

	trend := domain.Trend{Since: rng.Since, Until: rng.Until, Current: current}

	prev, err := daterange.PreviousPeriod(req.Selection, now)
	if err != nil || prev == nil {
		return trend, nil
	}

	prevReq := req
	prevReq.Cursor = ""
	prevReq.Selection = daterange.Selection{
		Preset: daterange.Custom,
		Custom: &daterange.CustomRange{StartDate: prev.Since, EndDate: prev.Until},
	}

	previous, err := s.FetchAccountInsights(ctx, prevReq)
	if err != nil {
		logrus.WithError(err).Warn("insights: previous period unavailable for trend")
		return trend, nil
	}

	trend.Previous = &previous
	trend.Deltas = Deltas(current, previous)
	return trend, nil
}

// Deltas calcula a variação percentual de cada métrica.
func Deltas(current, previous domain.Metrics) map[string]float64 {
	pairs := map[string][2]float64{
		"spend":           {current.Spend, previous.Spend},
		"impressions":     {float64(current.Impressions), float64(previous.Impressions)},
		"clicks":          {float64(current.Clicks), float64(previous.Clicks)},
		"reach":           {float64(current.Reach), float64(previous.Reach)},
		"results":         {current.Results, previous.Results},
		"cost_per_result": {current.CostPerResult, previous.CostPerResult},
		"roas":            {current.ROAS, previous.ROAS},
		"ctr":             {current.CTR, previous.CTR},
		"cpc":             {current.CPC, previous.CPC},
		"cpm":             {current.CPM, previous.CPM},
	}

	deltas := make(map[string]float64, len(pairs))
	for name, p := range pairs {
		deltas[name] = percentChange(p[0], p[1])
	}
	return deltas
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
