package meta

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/bsocial/adhub-api/infrastructure/integrator/meta/domain"
	"github.com/bsocial/adhub-api/infrastructure/integrator/meta/metaclient"
	"github.com/bsocial/adhub-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

func testConfig() *config.Config {
	return &config.Config{
		Fetch: config.Fetch{
			MaxRawRecords:     50000,
			MaxDisplayRecords: 2000,
			PageSize:          500,
			CreativeBatchSize: 50,
		},
	}
}

func testQuery() Query {
	return Query{
		AccountID: "act_1",
		Token:     "tok",
		Range:     daterange.Range{Since: "2024-03-08", Until: "2024-03-14"},
	}
}

func TestGetCampaignsWithInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := New(testConfig(), client)

	q := testQuery()
	q.Filters = []domain.GlobalFilter{{SearchQuery: "promo"}}
	q.Cursor = "abc"

	client.EXPECT().
		ListCampaigns(gomock.Any(), "tok", "act_1", gomock.Any(), metaclient.ListOptions{After: "abc", Max: 2000}).
		DoAndReturn(func(_ context.Context, _, _ string, params url.Values, _ metaclient.ListOptions) ([]metadomain.Campaign, string, error) {
			assert.Contains(t, params.Get("fields"), `insights.time_range({"since":"2024-03-08","until":"2024-03-14"})`)
			assert.JSONEq(t, `[{"field":"name","operator":"CONTAIN","value":"promo"}]`, params.Get("filtering"))
			assert.Equal(t, "500", params.Get("limit"))

			return []metadomain.Campaign{
				{
					ID:        "c1",
					Name:      "Vendas",
					Objective: "OUTCOME_SALES",
					Insights: &metadomain.InsightEdge{Data: []metadomain.Insight{{
						Spend:        "200",
						Actions:      []metadomain.Action{{ActionType: "purchase", Value: "10"}},
						ActionValues: []metadomain.Action{{ActionType: "purchase", Value: "600"}},
					}}},
				},
				{ID: "c2", Name: "Sem entrega", Objective: "OUTCOME_TRAFFIC"},
			}, "next", nil
		})

	page, err := s.GetCampaignsWithInsights(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "next", page.NextCursor)

	c1 := page.Data[0]
	require.NotNil(t, c1.Insights)
	assert.Equal(t, "act_1", c1.AccountID)
	assert.InDelta(t, 10, c1.Insights.Results, 1e-9)
	assert.InDelta(t, 20, c1.Insights.CostPerResult, 1e-9)
	assert.InDelta(t, 3, c1.Insights.ROAS, 1e-9)

	assert.Nil(t, page.Data[1].Insights, "entidade sem insights não quebra a conversão")
}

func TestGetAccountInsights_AplicaMultiplicador(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := New(testConfig(), client)

	q := testQuery()
	q.SpendMultiplier = 1.5

	client.EXPECT().
		GetInsights(gomock.Any(), "tok", "act_1", gomock.Any(), 1).
		DoAndReturn(func(_ context.Context, _, _ string, params url.Values, _ int) ([]metadomain.Insight, error) {
			assert.Equal(t, "account", params.Get("level"))
			return []metadomain.Insight{{Spend: "100", Impressions: "1000"}}, nil
		})

	rec, err := s.GetAccountInsights(context.Background(), q)
	require.NoError(t, err)
	assert.InDelta(t, 150, rec.Spend, 1e-9)
	assert.Equal(t, "act_1", rec.AccountID)
}

func TestGetAccountInsights_SemDados(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := New(testConfig(), client)

	client.EXPECT().GetInsights(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	rec, err := s.GetAccountInsights(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Zero(t, rec.Spend)
	assert.Equal(t, "2024-03-08", rec.DateStart)
}

func TestGetBreakdown(t *testing.T) {
	tests := []struct {
		kind       domain.BreakdownKind
		breakdowns string
	}{
		{domain.BreakdownAgeGender, "age,gender"},
		{domain.BreakdownRegion, "region"},
		{domain.BreakdownPlacement, "publisher_platform,platform_position"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			s := New(testConfig(), client)

			client.EXPECT().
				GetInsights(gomock.Any(), "tok", "act_1", gomock.Any(), 50000).
				DoAndReturn(func(_ context.Context, _, _ string, params url.Values, _ int) ([]metadomain.Insight, error) {
					assert.Equal(t, tt.breakdowns, params.Get("breakdowns"))
					return []metadomain.Insight{{Age: "25-34", Gender: "female", Spend: "10"}}, nil
				})

			rows, err := s.GetBreakdown(context.Background(), testQuery(), tt.kind)
			require.NoError(t, err)
			assert.Len(t, rows, 1)
		})
	}

	s := New(testConfig(), nil)
	_, err := s.GetBreakdown(context.Background(), testQuery(), "device")
	assert.Error(t, err)
}

func TestGetHourlyInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := New(testConfig(), client)

	client.EXPECT().
		GetInsights(gomock.Any(), "tok", "act_1", gomock.Any(), gomock.Any()).
		Return([]metadomain.Insight{{HourlyStats: "09:00:00 - 09:59:59", Spend: "3"}}, nil)

	rows, err := s.GetHourlyInsights(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "09", rows[0].HourBucket)
}

func TestGetCreativePerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := New(testConfig(), client)

	client.EXPECT().
		ListAds(gomock.Any(), "tok", "act_1", gomock.Any(), metaclient.ListOptions{Max: 50000}).
		Return([]metadomain.Ad{
			{
				ID:       "ad1",
				Name:     "Anúncio 1",
				Creative: &metadomain.NameRef{ID: "cr1"},
				Campaign: &metadomain.NameRef{ID: "c1", Name: "Vendas", Objective: "OUTCOME_SALES"},
				AdSet:    &metadomain.NameRef{ID: "as1", Name: "Público"},
				Insights: &metadomain.InsightEdge{Data: []metadomain.Insight{{Spend: "50", Actions: []metadomain.Action{{ActionType: "purchase", Value: "5"}}}}},
			},
			{ID: "ad2", Creative: &metadomain.NameRef{ID: "cr-missing"}},
			{ID: "ad3", Creative: &metadomain.NameRef{ID: "cr1"}},
		}, "", nil)

	client.EXPECT().
		GetCreatives(gomock.Any(), "tok", []string{"cr1", "cr-missing"}).
		Return(map[string]metadomain.AdCreative{"cr1": {ID: "cr1", Title: "Oferta"}}, nil)

	rows, err := s.GetCreativePerformance(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Oferta", rows[0].Creative.Title)
	assert.Equal(t, "Vendas", rows[0].CampaignName)
	assert.Equal(t, "as1", rows[0].AdSetID)
	assert.InDelta(t, 10, rows[0].Metrics.CostPerResult, 1e-9)

	assert.Equal(t, domain.AdCreative{ID: "cr-missing"}, rows[1].Creative, "criativo ausente vira placeholder")
	assert.Zero(t, rows[1].Metrics.Spend)
}

func TestGetHierarchy(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := New(testConfig(), client)

	client.EXPECT().ListCampaigns(gomock.Any(), "tok", "act_1", gomock.Any(), gomock.Any()).
		Return([]metadomain.Campaign{{ID: "c1", Name: "A"}}, "", nil)
	client.EXPECT().ListAdSets(gomock.Any(), "tok", "act_1", gomock.Any(), gomock.Any()).
		Return([]metadomain.AdSet{{ID: "as1", Name: "B", CampaignID: "c1"}}, "", nil)

	h, err := s.GetHierarchy(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Equal(t, []domain.HierarchyItem{{ID: "c1", Name: "A", AccountID: "act_1"}}, h.Campaigns)
	assert.Equal(t, "c1", h.AdSets[0].CampaignID)
}

func TestGetAdAccounts_PropagaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := New(testConfig(), client)

	client.EXPECT().GetAdAccounts(gomock.Any(), "tok").Return(nil, errors.New("boom"))

	_, err := s.GetAdAccounts(context.Background(), "tok")
	assert.Error(t, err)
}

func TestBuildFiltering(t *testing.T) {
	f := domain.GlobalFilter{
		SearchQuery:         " black ",
		SelectedCampaignIDs: []string{"1", "1", "2"},
		SelectedAdSetIDs:    []string{"9"},
	}

	tests := []struct {
		name     string
		scope    scope
		expected []FilterRule
	}{
		{
			name:  "Insights",
			scope: scopeInsights,
			expected: []FilterRule{
				{Field: "campaign.id", Operator: "IN", Value: []string{"1", "2"}},
				{Field: "adset.id", Operator: "IN", Value: []string{"9"}},
				{Field: "campaign.name", Operator: "CONTAIN", Value: "black"},
			},
		},
		{
			name:  "Campanhas",
			scope: scopeCampaigns,
			expected: []FilterRule{
				{Field: "id", Operator: "IN", Value: []string{"1", "2"}},
				{Field: "name", Operator: "CONTAIN", Value: "black"},
			},
		},
		{
			name:  "Conjuntos",
			scope: scopeAdSets,
			expected: []FilterRule{
				{Field: "campaign.id", Operator: "IN", Value: []string{"1", "2"}},
				{Field: "id", Operator: "IN", Value: []string{"9"}},
				{Field: "campaign.name", Operator: "CONTAIN", Value: "black"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildFiltering(tt.scope, f))
		})
	}

	assert.Empty(t, BuildFiltering(scopeInsights, domain.GlobalFilter{}))

	combined := BuildFiltering(scopeAds, domain.GlobalFilter{SearchQuery: "a"}, domain.GlobalFilter{SelectedCampaignIDs: []string{"7"}})
	assert.Len(t, combined, 2, "filtros do usuário e da requisição são combinados")
}

func TestNormalizeAccountID(t *testing.T) {
	assert.Equal(t, "act_123", NormalizeAccountID("123"))
	assert.Equal(t, "act_123", NormalizeAccountID("act_123"))
	assert.Equal(t, "act_123", NormalizeAccountID(" 123 "))
	assert.Equal(t, "", NormalizeAccountID(""))
}

func TestMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := New(testConfig(), client)
	ctx := context.Background()

	client.EXPECT().UpdateObject(ctx, "tok", "c1", url.Values{"status": {"PAUSED"}}).Return(nil)
	require.NoError(t, s.UpdateStatus(ctx, "tok", "c1", "PAUSED"))

	assert.Error(t, s.UpdateStatus(ctx, "tok", "c1", "RUNNING"))

	daily := 150.25
	client.EXPECT().UpdateObject(ctx, "tok", "as1", url.Values{"daily_budget": {"15025"}}).Return(nil)
	require.NoError(t, s.UpdateBudget(ctx, "tok", "as1", &daily, nil))

	assert.Error(t, s.UpdateBudget(ctx, "tok", "as1", nil, nil))
	assert.Error(t, s.UpdateName(ctx, "tok", "as1", ""))

	client.EXPECT().CopyObject(ctx, "tok", "c1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, values url.Values) (string, error) {
			assert.Equal(t, "true", values.Get("deep_copy"))
			assert.True(t, strings.EqualFold(values.Get("status_option"), "PAUSED"))
			return "c2", nil
		})
	id, err := s.Duplicate(ctx, "tok", "c1", true)
	require.NoError(t, err)
	assert.Equal(t, "c2", id)

	client.EXPECT().DeleteObject(ctx, "tok", "ad1").Return(errors.New("permissão negada"))
	assert.Error(t, s.Delete(ctx, "tok", "ad1"))
}
