package insighting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/infrastructure/integrator/meta"
	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
	"github.com/bsocial/adhub-api/pkg/cache"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

// Service consulta várias contas em paralelo, mescla os resultados e guarda
// cada operação no cache de resultados.
type Service struct {
	cfg     *config.Config
	fetcher AccountFetcher
	cache   cache.Store
	now     func() time.Time

	// epoch avança a cada ClearCache; buscas iniciadas em uma época anterior
	// não gravam no cache.
	mu    sync.RWMutex
	epoch uint64
}

func NewService(cfg *config.Config, fetcher AccountFetcher, store cache.Store) *Service {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
		cache:   store,
		now:     time.Now,
	}
}

// WithClock substitui o relógio usado para resolver os períodos.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// FetchAdAccounts não tolera falha: sem contas o painel não tem o que exibir.
func (s *Service) FetchAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error) {
	if token == "" {
		return nil, NewInsightError(ErrMissingToken, apiErrors.ErrMissingRequiredData, "")
	}

	accounts, err := s.fetcher.GetAdAccounts(ctx, token)
	if err != nil {
		return nil, NewInsightError(err, apiErrors.ErrExternalService, "erro ao listar contas de anúncio")
	}

	return accounts, nil
}

func (s *Service) FetchAccountInsights(ctx context.Context, req domain.InsightRequest) (domain.Metrics, error) {
	return cached(ctx, s, "fetchAccountInsights", req, nil, func(queries []meta.Query) (domain.Metrics, error) {
		records, err := fanout(ctx, "fetchAccountInsights", queries, s.fetcher.GetAccountInsights)
		if err != nil {
			return domain.Metrics{}, err
		}

		return MergeTotals(records, req.Objective), nil
	})
}

func (s *Service) FetchDailyAccountInsights(ctx context.Context, req domain.InsightRequest) ([]domain.DailyInsight, error) {
	return cached(ctx, s, "fetchDailyAccountInsights", req, nil, func(queries []meta.Query) ([]domain.DailyInsight, error) {
		groups, err := fanout(ctx, "fetchDailyAccountInsights", queries, s.fetcher.GetDailyInsights)
		if err != nil {
			return nil, err
		}

		return MergeDaily(flatten(groups), req.Objective), nil
	})
}

func (s *Service) FetchHourlyInsights(ctx context.Context, req domain.InsightRequest) ([]domain.HourlyInsight, error) {
	return cached(ctx, s, "fetchHourlyInsights", req, nil, func(queries []meta.Query) ([]domain.HourlyInsight, error) {
		groups, err := fanout(ctx, "fetchHourlyInsights", queries, s.fetcher.GetHourlyInsights)
		if err != nil {
			return nil, err
		}

		return MergeHourly(flatten(groups), req.Objective), nil
	})
}

func (s *Service) FetchCampaignsWithInsights(ctx context.Context, req domain.InsightRequest) (domain.Page[domain.Campaign], error) {
	return cached(ctx, s, "fetchCampaignsWithInsights", req, nil, func(queries []meta.Query) (domain.Page[domain.Campaign], error) {
		pages, err := fanout(ctx, "fetchCampaignsWithInsights", queries, s.fetcher.GetCampaignsWithInsights)
		if err != nil {
			return domain.Page[domain.Campaign]{}, err
		}

		return mergePages(pages, len(queries) == 1, campaignSpend), nil
	})
}

func (s *Service) FetchAdSetsWithInsights(ctx context.Context, req domain.InsightRequest) (domain.Page[domain.AdSet], error) {
	return cached(ctx, s, "fetchAdSetsWithInsights", req, nil, func(queries []meta.Query) (domain.Page[domain.AdSet], error) {
		pages, err := fanout(ctx, "fetchAdSetsWithInsights", queries, s.fetcher.GetAdSetsWithInsights)
		if err != nil {
			return domain.Page[domain.AdSet]{}, err
		}

		return mergePages(pages, len(queries) == 1, adSetSpend), nil
	})
}

func (s *Service) FetchAdsWithInsights(ctx context.Context, req domain.InsightRequest) (domain.Page[domain.Ad], error) {
	return cached(ctx, s, "fetchAdsWithInsights", req, nil, func(queries []meta.Query) (domain.Page[domain.Ad], error) {
		pages, err := fanout(ctx, "fetchAdsWithInsights", queries, s.fetcher.GetAdsWithInsights)
		if err != nil {
			return domain.Page[domain.Ad]{}, err
		}

		return mergePages(pages, len(queries) == 1, adSpend), nil
	})
}

func (s *Service) FetchBreakdown(ctx context.Context, req domain.InsightRequest, kind domain.BreakdownKind) ([]domain.BreakdownRow, error) {
	keyFn, ok := keyFuncFor(kind)
	if !ok {
		return nil, NewInsightError(ErrInvalidBreakdown, apiErrors.ErrInvalidRequest, string(kind))
	}

	return cached(ctx, s, "fetchBreakdown", req, []any{kind}, func(queries []meta.Query) ([]domain.BreakdownRow, error) {
		groups, err := fanout(ctx, "fetchBreakdown", queries, func(ctx context.Context, q meta.Query) ([]domain.InsightRecord, error) {
			return s.fetcher.GetBreakdown(ctx, q, kind)
		})
		if err != nil {
			return nil, err
		}

		return MergeBreakdown(flatten(groups), keyFn, req.Objective), nil
	})
}

func (s *Service) FetchPlacementBreakdown(ctx context.Context, req domain.InsightRequest) ([]domain.BreakdownRow, error) {
	return s.FetchBreakdown(ctx, req, domain.BreakdownPlacement)
}

func (s *Service) FetchCreativePerformance(ctx context.Context, req domain.InsightRequest) ([]domain.AdPerformance, error) {
	return cached(ctx, s, "fetchCreativePerformance", req, nil, func(queries []meta.Query) ([]domain.AdPerformance, error) {
		groups, err := fanout(ctx, "fetchCreativePerformance", queries, s.fetcher.GetCreativePerformance)
		if err != nil {
			return nil, err
		}

		rows := flatten(groups)
		SortBySpendDesc(rows, performanceSpend)
		return rows, nil
	})
}

// FetchAccountHierarchy não depende de período nem filtro.
func (s *Service) FetchAccountHierarchy(ctx context.Context, req domain.InsightRequest) (domain.AccountHierarchy, error) {
	req.Selection = daterange.Selection{Preset: daterange.Today}
	req.Filter = domain.GlobalFilter{}
	req.Restriction = nil
	req.Cursor = ""
	req.SpendMultiplier = 0
	req.Objective = ""

	return cached(ctx, s, "fetchAccountHierarchy", req, nil, func(queries []meta.Query) (domain.AccountHierarchy, error) {
		parts, err := fanout(ctx, "fetchAccountHierarchy", queries, s.fetcher.GetHierarchy)
		if err != nil {
			return domain.AccountHierarchy{}, err
		}

		h := domain.AccountHierarchy{
			Campaigns: make([]domain.HierarchyItem, 0),
			AdSets:    make([]domain.HierarchyItem, 0),
		}
		for _, p := range parts {
			h.Campaigns = append(h.Campaigns, p.Campaigns...)
			h.AdSets = append(h.AdSets, p.AdSets...)
		}
		return h, nil
	})
}

func (s *Service) ClearCache(ctx context.Context) {
	s.mu.Lock()
	s.epoch++
	s.cache.Clear(ctx)
	s.mu.Unlock()
	logrus.Info("insights: result cache cleared")
}

// cached resolve o período, monta as consultas por conta e passa pelo cache.
// Falhas não são gravadas.
func cached[T any](ctx context.Context, s *Service, op string, req domain.InsightRequest, extra []any, fetch func([]meta.Query) (T, error)) (T, error) {
	var zero T

	queries, err := s.queries(req)
	if err != nil {
		return zero, err
	}

	key := s.key(op, req, extra...)

	if !IsBypassingCache(ctx) {
		if v, ok := cache.GetJSON[T](ctx, s.cache, key); ok {
			logrus.WithField("operation", op).Debug("insights: cache hit")
			return v, nil
		}
	}

	started := s.currentEpoch()

	v, err := fetch(queries)
	if err != nil {
		return zero, err
	}

	s.store(ctx, op, key, started, v)
	return v, nil
}

func (s *Service) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// store grava o resultado apenas se o cache não foi limpo durante a busca.
func (s *Service) store(ctx context.Context, op, key string, started uint64, v any) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.epoch != started {
		logrus.WithField("operation", op).Debug("insights: cache limpo durante a busca, resultado não gravado")
		return
	}
	cache.SetJSON(ctx, s.cache, key, v)
}

func (s *Service) key(op string, req domain.InsightRequest, extra ...any) string {
	args := []any{
		normalizeAccountIDs(req.AccountIDs),
		req.Selection,
		req.Filter.Normalize(),
		req.Restriction,
		req.Objective,
		req.Cursor,
		req.SpendMultiplier,
	}
	return cache.Key(op, append(args, extra...)...)
}

func (s *Service) queries(req domain.InsightRequest) ([]meta.Query, error) {
	accountIDs := normalizeAccountIDs(req.AccountIDs)
	if len(accountIDs) == 0 {
		return nil, NewInsightError(ErrNoAccounts, apiErrors.ErrMissingRequiredData, "")
	}
	if req.Token == "" {
		return nil, NewInsightError(ErrMissingToken, apiErrors.ErrMissingRequiredData, "")
	}

	rng, err := daterange.Resolve(req.Selection, s.reference(req))
	if err != nil {
		return nil, NewInsightError(err, apiErrors.ErrInvalidRequest, string(req.Selection.Preset))
	}

	filters := req.Filters()
	queries := make([]meta.Query, 0, len(accountIDs))
	for _, id := range accountIDs {
		queries = append(queries, meta.Query{
			AccountID:       id,
			Token:           req.Token,
			Range:           rng,
			Filters:         filters,
			Cursor:          req.Cursor,
			SpendMultiplier: req.SpendMultiplier,
		})
	}

	return queries, nil
}

func (s *Service) reference(req domain.InsightRequest) time.Time {
	if !req.Now.IsZero() {
		return req.Now
	}
	return s.now()
}

func normalizeAccountIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		id = meta.NormalizeAccountID(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
