package handler

import (
	"net/http"

	"github.com/bsocial/adhub-api/internal/api/handler/router"
	"github.com/bsocial/adhub-api/internal/usecases/auditing"
	"github.com/bsocial/adhub-api/internal/usecases/authenticating"
	"github.com/bsocial/adhub-api/internal/usecases/managing"
	"github.com/bsocial/adhub-api/pkg/middleware"
)

type chain = []func(http.Handler) http.Handler

// withProfile exige login e carrega a configuração de acesso do usuário.
func withProfile(auth authenticating.Authenticator) chain {
	return chain{middleware.AllRoles(), middleware.LoadProfile(auth)}
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: withProfile(service),
		},
	}
}

func Insights(h *InsightHandlers, auth authenticating.Authenticator) []router.Route {
	routes := []struct {
		path    string
		handler http.Handler
	}{
		{"/v1/insights/totals", h.Totals()},
		{"/v1/insights/daily", h.Daily()},
		{"/v1/insights/hourly", h.Hourly()},
		{"/v1/insights/breakdown/:kind", h.Breakdown()},
		{"/v1/insights/placements", h.Placements()},
		{"/v1/insights/trend", h.Trend()},
		{"/v1/campaigns", h.Campaigns()},
		{"/v1/adsets", h.AdSets()},
		{"/v1/ads", h.Ads()},
		{"/v1/creatives/performance", h.Creatives()},
		{"/v1/hierarchy", h.Hierarchy()},
		{"/v1/accounts", h.AdAccounts()},
	}

	out := make([]router.Route, 0, len(routes)+1)
	for _, r := range routes {
		out = append(out, router.Route{
			Path:        r.path,
			Method:      http.MethodGet,
			Handler:     r.handler,
			Middlewares: withProfile(auth),
		})
	}

	return append(out, router.Route{
		Path:        "/v1/cache",
		Method:      http.MethodDelete,
		Handler:     h.ClearCache(),
		Middlewares: chain{middleware.AdminOnly()},
	})
}

func Mutations(service managing.Manager, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/mutations/:id/status",
			Method:      http.MethodPost,
			Handler:     UpdateStatus(service),
			Middlewares: withProfile(auth),
		},
		{
			Path:        "/v1/mutations/:id/budget",
			Method:      http.MethodPost,
			Handler:     UpdateBudget(service),
			Middlewares: withProfile(auth),
		},
		{
			Path:        "/v1/mutations/:id/name",
			Method:      http.MethodPost,
			Handler:     Rename(service),
			Middlewares: withProfile(auth),
		},
		{
			Path:        "/v1/mutations/:id/copies",
			Method:      http.MethodPost,
			Handler:     Duplicate(service),
			Middlewares: withProfile(auth),
		},
		{
			Path:        "/v1/mutations/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteObject(service),
			Middlewares: withProfile(auth),
		},
	}
}

func AI(service auditing.Auditor, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ai/audit",
			Method:      http.MethodPost,
			Handler:     Audit(service),
			Middlewares: withProfile(auth),
		},
		{
			Path:        "/v1/ai/audit/context",
			Method:      http.MethodPost,
			Handler:     AuditFromContext(service),
			Middlewares: withProfile(auth),
		},
	}
}

func Admin(service authenticating.Authenticator) []router.Route {
	adminOnly := chain{middleware.AdminOnly()}

	return []router.Route{
		{Path: "/v1/admin/users", Method: http.MethodGet, Handler: ListUsers(service), Middlewares: adminOnly},
		{Path: "/v1/admin/users", Method: http.MethodPost, Handler: CreateUser(service), Middlewares: adminOnly},
		{Path: "/v1/admin/users/:id", Method: http.MethodGet, Handler: GetUser(service), Middlewares: adminOnly},
		{Path: "/v1/admin/users/:id", Method: http.MethodDelete, Handler: DeleteUser(service), Middlewares: adminOnly},
		{Path: "/v1/admin/users/:id/config", Method: http.MethodPut, Handler: UpdateUserConfig(service), Middlewares: adminOnly},
		{Path: "/v1/admin/users/:id/active", Method: http.MethodPut, Handler: SetUserActive(service), Middlewares: adminOnly},
	}
}

func Jobs(prefetcher Prefetcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/prefetch/run",
			Method:      http.MethodPost,
			Handler:     RunPrefetch(prefetcher),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/prefetch/status",
			Method:      http.MethodGet,
			Handler:     PrefetchStatus(prefetcher),
			Middlewares: chain{middleware.AdminOnly()},
		},
	}
}
