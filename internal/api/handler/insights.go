package handler

import (
	"context"
	"maps"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/access"
	"github.com/bsocial/adhub-api/internal/usecases/insighting"
	"github.com/bsocial/adhub-api/internal/usecases/querying"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
	"github.com/bsocial/adhub-api/pkg/cache"
	"github.com/bsocial/adhub-api/pkg/middleware"
)

// QueryResponse expõe o estado da consulta junto com os dados.
type QueryResponse struct {
	Data       any             `json:"data"`
	Status     querying.Status `json:"status"`
	IsFetching bool            `json:"isFetching"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	Error      string          `json:"error,omitempty"`
}

type InsightHandlers struct {
	service   insighting.Insighter
	queries   *querying.Manager
	refresher *querying.AutoRefresher
	now       func() time.Time
}

func NewInsightHandlers(service insighting.Insighter, queries *querying.Manager, refresher *querying.AutoRefresher) *InsightHandlers {
	return &InsightHandlers{
		service:   service,
		queries:   queries,
		refresher: refresher,
		now:       time.Now,
	}
}

// querySpec descreve uma consulta do painel. param é o parâmetro de rota
// repassado à busca e incluído na chave.
type querySpec[T any] struct {
	name    string
	feature domain.Feature
	param   string
	fetch   func(ctx context.Context, req domain.InsightRequest, param string) (T, error)
	mask    func(T) T
}

func serveQuery[T any](h *InsightHandlers, spec querySpec[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, _ := middleware.UserFromContext(ctx)
		if err := access.CheckFeature(user, spec.feature); err != nil {
			handleError(w, err)
			return
		}

		req, refresh, err := parseInsightRequest(r, h.now())
		if err != nil {
			handleError(w, err)
			return
		}

		scoped, err := access.Scope(user, req)
		if err != nil {
			handleError(w, err)
			return
		}
		if scoped.Token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingMetaToken, "Header X-Meta-Token é obrigatório", nil)
			return
		}
		if len(scoped.AccountIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_ids é obrigatório", nil)
			return
		}

		param := ""
		if spec.param != "" {
			param = httprouter.ParamsFromContext(ctx).ByName(spec.param)
		}

		// O token não é serializado no escopo; sem o hash, tokens diferentes dividiriam o estado.
		key := querying.NewKey(spec.name, scoped, param, cache.TokenHash(scoped.Token))
		if refresh {
			h.queries.Refresh(key)
		}

		fetch := func(ctx context.Context) (T, error) {
			return spec.fetch(ctx, scoped, param)
		}

		data, state, err := querying.Get(ctx, h.queries, key, querying.Options{
			Enabled: querying.EnabledFor(scoped.AccountIDs, scoped.Token),
		}, fetch)
		if err != nil {
			handleError(w, err)
			return
		}

		h.scheduleRefresh(user, key, func(ctx context.Context) (any, error) {
			return fetch(ctx)
		})

		if spec.mask != nil && access.HidesSpend(user) {
			data = spec.mask(data)
		}

		resp := QueryResponse{
			Data:       data,
			Status:     state.Status,
			IsFetching: state.IsFetching,
			UpdatedAt:  state.UpdatedAt,
		}
		if state.Error != nil {
			resp.Error = state.Error.Error()
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// scheduleRefresh registra a revalidação periódica conforme o refresh_interval do usuário.
func (h *InsightHandlers) scheduleRefresh(user *domain.User, key querying.Key, fetch querying.FetchFunc) {
	if h.refresher == nil || user == nil || user.Config.RefreshInterval <= 0 {
		return
	}
	if err := h.refresher.Register(key, user.Config.RefreshInterval, fetch); err != nil {
		logrus.WithFields(logrus.Fields{
			"query_key": string(key),
			"error":     err.Error(),
		}).Warn("Erro ao agendar atualização automática")
	}
}

func maskMetrics(m domain.Metrics) domain.Metrics {
	access.MaskSpend(&m)
	return m
}

func maskTrend(t domain.Trend) domain.Trend {
	if t.Previous != nil {
		previous := *t.Previous
		t.Previous = &previous
	}
	t.Deltas = maps.Clone(t.Deltas)
	access.MaskTrend(&t)
	return t
}

func (h *InsightHandlers) Totals() http.HandlerFunc {
	return serveQuery(h, querySpec[domain.Metrics]{
		name:    "totals",
		feature: domain.FeatureDashboard,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) (domain.Metrics, error) {
			return h.service.FetchAccountInsights(ctx, req)
		},
		mask: maskMetrics,
	})
}

func (h *InsightHandlers) Daily() http.HandlerFunc {
	return serveQuery(h, querySpec[[]domain.DailyInsight]{
		name:    "daily",
		feature: domain.FeatureDashboard,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) ([]domain.DailyInsight, error) {
			return h.service.FetchDailyAccountInsights(ctx, req)
		},
	})
}

func (h *InsightHandlers) Hourly() http.HandlerFunc {
	return serveQuery(h, querySpec[[]domain.HourlyInsight]{
		name:    "hourly",
		feature: domain.FeatureDashboard,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) ([]domain.HourlyInsight, error) {
			return h.service.FetchHourlyInsights(ctx, req)
		},
	})
}

func (h *InsightHandlers) Breakdown() http.HandlerFunc {
	return serveQuery(h, querySpec[[]domain.BreakdownRow]{
		name:    "breakdown",
		feature: domain.FeatureDashboard,
		param:   "kind",
		fetch: func(ctx context.Context, req domain.InsightRequest, kind string) ([]domain.BreakdownRow, error) {
			return h.service.FetchBreakdown(ctx, req, domain.BreakdownKind(kind))
		},
	})
}

func (h *InsightHandlers) Placements() http.HandlerFunc {
	return serveQuery(h, querySpec[[]domain.BreakdownRow]{
		name:    "placements",
		feature: domain.FeatureDashboard,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) ([]domain.BreakdownRow, error) {
			return h.service.FetchPlacementBreakdown(ctx, req)
		},
	})
}

func (h *InsightHandlers) Trend() http.HandlerFunc {
	return serveQuery(h, querySpec[domain.Trend]{
		name:    "trend",
		feature: domain.FeatureDashboard,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) (domain.Trend, error) {
			return h.service.FetchTrend(ctx, req)
		},
		mask: maskTrend,
	})
}

func (h *InsightHandlers) Campaigns() http.HandlerFunc {
	return serveQuery(h, querySpec[domain.Page[domain.Campaign]]{
		name:    "campaigns",
		feature: domain.FeatureCampaigns,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) (domain.Page[domain.Campaign], error) {
			return h.service.FetchCampaignsWithInsights(ctx, req)
		},
	})
}

func (h *InsightHandlers) AdSets() http.HandlerFunc {
	return serveQuery(h, querySpec[domain.Page[domain.AdSet]]{
		name:    "adsets",
		feature: domain.FeatureCampaigns,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) (domain.Page[domain.AdSet], error) {
			return h.service.FetchAdSetsWithInsights(ctx, req)
		},
	})
}

func (h *InsightHandlers) Ads() http.HandlerFunc {
	return serveQuery(h, querySpec[domain.Page[domain.Ad]]{
		name:    "ads",
		feature: domain.FeatureCampaigns,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) (domain.Page[domain.Ad], error) {
			return h.service.FetchAdsWithInsights(ctx, req)
		},
	})
}

func (h *InsightHandlers) Creatives() http.HandlerFunc {
	return serveQuery(h, querySpec[[]domain.AdPerformance]{
		name:    "creatives",
		feature: domain.FeatureCreatives,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) ([]domain.AdPerformance, error) {
			return h.service.FetchCreativePerformance(ctx, req)
		},
	})
}

func (h *InsightHandlers) Hierarchy() http.HandlerFunc {
	return serveQuery(h, querySpec[domain.AccountHierarchy]{
		name:    "hierarchy",
		feature: domain.FeatureDashboard,
		fetch: func(ctx context.Context, req domain.InsightRequest, _ string) (domain.AccountHierarchy, error) {
			return h.service.FetchAccountHierarchy(ctx, req)
		},
	})
}

// AdAccounts lista as contas visíveis pelo token. Usuários comuns só veem as liberadas.
func (h *InsightHandlers) AdAccounts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(MetaTokenHeader)
		if token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingMetaToken, "Header X-Meta-Token é obrigatório", nil)
			return
		}

		accounts, err := h.service.FetchAdAccounts(r.Context(), token)
		if err != nil {
			handleError(w, err)
			return
		}

		user, _ := middleware.UserFromContext(r.Context())
		if user != nil && !user.IsAdmin() {
			accounts = allowedAccounts(accounts, user.Config.AdAccountIDs)
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

func allowedAccounts(accounts []domain.AdAccount, allowed []string) []domain.AdAccount {
	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}

	visible := make(map[string]bool)
	for _, id := range access.Intersect(ids, allowed) {
		visible[id] = true
	}

	out := make([]domain.AdAccount, 0, len(visible))
	for _, a := range accounts {
		if visible[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// ClearCache descarta o cache de resultados e o estado das consultas.
func (h *InsightHandlers) ClearCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.service.ClearCache(r.Context())
		h.queries.Reset()
		w.WriteHeader(http.StatusNoContent)
	}
}
