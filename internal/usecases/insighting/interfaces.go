package insighting

import (
	"context"

	"github.com/bsocial/adhub-api/infrastructure/integrator/meta"
	"github.com/bsocial/adhub-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/insighter_mock.go -package=mocks

// AccountFetcher busca dados de uma única conta na plataforma de anúncios.
type AccountFetcher interface {
	GetAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error)
	GetAccountInsights(ctx context.Context, q meta.Query) (domain.InsightRecord, error)
	GetDailyInsights(ctx context.Context, q meta.Query) ([]domain.InsightRecord, error)
	GetHourlyInsights(ctx context.Context, q meta.Query) ([]domain.InsightRecord, error)
	GetBreakdown(ctx context.Context, q meta.Query, kind domain.BreakdownKind) ([]domain.InsightRecord, error)
	GetCampaignsWithInsights(ctx context.Context, q meta.Query) (domain.Page[domain.Campaign], error)
	GetAdSetsWithInsights(ctx context.Context, q meta.Query) (domain.Page[domain.AdSet], error)
	GetAdsWithInsights(ctx context.Context, q meta.Query) (domain.Page[domain.Ad], error)
	GetCreativePerformance(ctx context.Context, q meta.Query) ([]domain.AdPerformance, error)
	GetHierarchy(ctx context.Context, q meta.Query) (domain.AccountHierarchy, error)
}

// Insighter agrega as contas selecionadas como um único portfólio.
type Insighter interface {
	FetchAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error)
	FetchAccountInsights(ctx context.Context, req domain.InsightRequest) (domain.Metrics, error)
	FetchDailyAccountInsights(ctx context.Context, req domain.InsightRequest) ([]domain.DailyInsight, error)
	FetchHourlyInsights(ctx context.Context, req domain.InsightRequest) ([]domain.HourlyInsight, error)
	FetchCampaignsWithInsights(ctx context.Context, req domain.InsightRequest) (domain.Page[domain.Campaign], error)
	FetchAdSetsWithInsights(ctx context.Context, req domain.InsightRequest) (domain.Page[domain.AdSet], error)
	FetchAdsWithInsights(ctx context.Context, req domain.InsightRequest) (domain.Page[domain.Ad], error)
	FetchBreakdown(ctx context.Context, req domain.InsightRequest, kind domain.BreakdownKind) ([]domain.BreakdownRow, error)
	FetchPlacementBreakdown(ctx context.Context, req domain.InsightRequest) ([]domain.BreakdownRow, error)
	FetchCreativePerformance(ctx context.Context, req domain.InsightRequest) ([]domain.AdPerformance, error)
	FetchAccountHierarchy(ctx context.Context, req domain.InsightRequest) (domain.AccountHierarchy, error)
	FetchTrend(ctx context.Context, req domain.InsightRequest) (domain.Trend, error)
	ClearCache(ctx context.Context)
}
