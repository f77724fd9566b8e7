package insighting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bsocial/adhub-api/infrastructure/integrator/meta"
	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/insighting/mocks"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
	"github.com/bsocial/adhub-api/pkg/cache"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

var refNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockAccountFetcher, *cache.Memory) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockAccountFetcher(ctrl)
	store := cache.NewMemory(cache.DefaultTTL)

	s := NewService(&config.Config{}, fetcher, store).WithClock(func() time.Time { return refNow })
	return s, fetcher, store
}

func baseRequest(accounts ...string) domain.InsightRequest {
	return domain.InsightRequest{
		AccountIDs: accounts,
		Token:      "tok",
		Selection:  daterange.Selection{Preset: daterange.Last7d},
		Objective:  "OUTCOME_SALES",
	}
}

func salesRecord(accountID string, spend, purchases, value float64) domain.InsightRecord {
	return domain.InsightRecord{
		AccountID:    accountID,
		Spend:        spend,
		Impressions:  8000,
		Clicks:       200,
		Reach:        4000,
		Actions:      []domain.Action{{ActionType: "purchase", Value: purchases}},
		ActionValues: []domain.Action{{ActionType: "purchase", Value: value}},
	}
}

func TestFetchAccountInsights_CaminhoCompleto(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) (domain.InsightRecord, error) {
			assert.Equal(t, "act_1", q.AccountID)
			assert.Equal(t, "tok", q.Token)
			assert.Equal(t, daterange.Range{Since: "2024-03-08", Until: "2024-03-14"}, q.Range)
			return salesRecord("act_1", 200, 10, 600), nil
		})

	m, err := s.FetchAccountInsights(context.Background(), baseRequest("1"))
	require.NoError(t, err)

	assert.InDelta(t, 200, m.Spend, 1e-9)
	assert.InDelta(t, 10, m.Results, 1e-9)
	assert.InDelta(t, 20, m.CostPerResult, 1e-9)
	assert.InDelta(t, 3.0, m.ROAS, 1e-9)
	assert.InDelta(t, 600, m.PurchaseValue, 1e-9)
}

func TestFetchAccountInsights_RoasMescladoPelaReceita(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) (domain.InsightRecord, error) {
			if q.AccountID == "act_a" {
				return salesRecord("act_a", 100, 4, 400), nil
			}
			return salesRecord("act_b", 100, 2, 200), nil
		}).
		Times(2)

	m, err := s.FetchAccountInsights(context.Background(), baseRequest("a", "b"))
	require.NoError(t, err)

	assert.InDelta(t, 200, m.Spend, 1e-9)
	assert.InDelta(t, 6, m.Results, 1e-9)
	assert.InDelta(t, 3.0, m.ROAS, 1e-9, "ROAS é receita/investimento e não a média dos ROAS")
	assert.Empty(t, m.AccountID)
}

func TestFetchAccountInsights_FalhaParcial(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) (domain.InsightRecord, error) {
			if q.AccountID == "act_2" {
				return domain.InsightRecord{}, errors.New("permissão negada")
			}
			return salesRecord(q.AccountID, 50, 1, 100), nil
		}).
		Times(3)

	m, err := s.FetchAccountInsights(context.Background(), baseRequest("1", "2", "3"))
	require.NoError(t, err)
	assert.InDelta(t, 100, m.Spend, 1e-9, "apenas as contas 1 e 3 contribuem")
	assert.InDelta(t, 2, m.Results, 1e-9)
}

func TestFetchAccountInsights_TodasAsContasFalham(t *testing.T) {
	s, fetcher, store := newTestService(t)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		Return(domain.InsightRecord{}, errors.New("timeout")).
		Times(2)

	_, err := s.FetchAccountInsights(context.Background(), baseRequest("1", "2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllAccountsFailed)

	var insightErr *InsightError
	require.ErrorAs(t, err, &insightErr)
	assert.Equal(t, apiErrors.ErrExternalService, insightErr.Code)
	assert.Equal(t, 0, store.Len(), "falhas não são gravadas no cache")
}

func TestFetchAccountInsights_Validacao(t *testing.T) {
	s, _, _ := newTestService(t)

	tests := []struct {
		name    string
		req     domain.InsightRequest
		wantErr error
	}{
		{name: "Sem contas", req: domain.InsightRequest{Token: "tok", Selection: daterange.Selection{Preset: daterange.Today}}, wantErr: ErrNoAccounts},
		{name: "Apenas ids vazios", req: domain.InsightRequest{AccountIDs: []string{"", " "}, Token: "tok", Selection: daterange.Selection{Preset: daterange.Today}}, wantErr: ErrNoAccounts},
		{name: "Sem token", req: domain.InsightRequest{AccountIDs: []string{"1"}, Selection: daterange.Selection{Preset: daterange.Today}}, wantErr: ErrMissingToken},
		{name: "Preset desconhecido", req: domain.InsightRequest{AccountIDs: []string{"1"}, Token: "tok", Selection: daterange.Selection{Preset: "forever"}}, wantErr: daterange.ErrUnknownPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.FetchAccountInsights(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchAccountInsights_Cache(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		Return(salesRecord("act_1", 200, 10, 600), nil).
		Times(1)

	first, err := s.FetchAccountInsights(context.Background(), baseRequest("1"))
	require.NoError(t, err)

	second, err := s.FetchAccountInsights(context.Background(), baseRequest("act_1"))
	require.NoError(t, err)
	assert.Equal(t, first, second, "act_1 e 1 são a mesma conta")

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		Return(salesRecord("act_1", 300, 10, 600), nil).
		Times(1)

	bypassed, err := s.FetchAccountInsights(WithBypassCache(context.Background()), baseRequest("1"))
	require.NoError(t, err)
	assert.InDelta(t, 300, bypassed.Spend, 1e-9)

	again, err := s.FetchAccountInsights(context.Background(), baseRequest("1"))
	require.NoError(t, err)
	assert.InDelta(t, 300, again.Spend, 1e-9, "o resultado ignorando o cache é gravado")
}

func TestFetchAccountInsights_MultiplicadorFazParteDaChave(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) (domain.InsightRecord, error) {
			rec := salesRecord(q.AccountID, 100, 1, 100)
			rec.ScaleSpend(q.SpendMultiplier)
			return rec, nil
		}).
		Times(2)

	plain, err := s.FetchAccountInsights(context.Background(), baseRequest("1"))
	require.NoError(t, err)

	req := baseRequest("1")
	req.SpendMultiplier = 1.2
	scaled, err := s.FetchAccountInsights(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 100, plain.Spend, 1e-9)
	assert.InDelta(t, 120, scaled.Spend, 1e-9)
	assert.InDelta(t, 120, scaled.CostPerResult, 1e-9)
}

func TestFetchAccountInsights_CombinaFiltroERestricao(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	req := baseRequest("1")
	req.Filter = domain.GlobalFilter{SearchQuery: "promo"}
	req.Restriction = &domain.GlobalFilter{SelectedCampaignIDs: []string{"c1"}}

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) (domain.InsightRecord, error) {
			if assert.Len(t, q.Filters, 2) {
				assert.Equal(t, "promo", q.Filters[0].SearchQuery)
				assert.Equal(t, []string{"c1"}, q.Filters[1].SelectedCampaignIDs)
			}
			return domain.InsightRecord{}, nil
		})

	_, err := s.FetchAccountInsights(context.Background(), req)
	require.NoError(t, err)
}

func TestFetchHourlyInsights_SempreVinteEQuatroBuckets(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetHourlyInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) ([]domain.InsightRecord, error) {
			return []domain.InsightRecord{
				{AccountID: q.AccountID, HourBucket: "09", Spend: 10, Impressions: 1000, Clicks: 10},
			}, nil
		}).
		Times(2)

	hours, err := s.FetchHourlyInsights(context.Background(), baseRequest("1", "2"))
	require.NoError(t, err)
	require.Len(t, hours, HoursPerDay)

	assert.Equal(t, "00", hours[0].Hour)
	assert.Equal(t, "23", hours[23].Hour)
	assert.InDelta(t, 20, hours[9].Spend, 1e-9)
	assert.Equal(t, int64(2000), hours[9].Impressions)
	assert.InDelta(t, 1, hours[9].CTR, 1e-9)
	assert.Zero(t, hours[10].Spend)
}

func TestFetchDailyAccountInsights_OrdenaPorData(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetDailyInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) ([]domain.InsightRecord, error) {
			return []domain.InsightRecord{
				{AccountID: q.AccountID, DateStart: "2024-03-10", Spend: 5},
				{AccountID: q.AccountID, DateStart: "2024-03-09", Spend: 5},
			}, nil
		}).
		Times(2)

	days, err := s.FetchDailyAccountInsights(context.Background(), baseRequest("1", "2"))
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-09", days[0].Date)
	assert.Equal(t, "2024-03-10", days[1].Date)
	assert.InDelta(t, 10, days[0].Spend, 1e-9)
}

func TestFetchCampaignsWithInsights_Cursor(t *testing.T) {
	page := func(id string, spend float64) domain.Page[domain.Campaign] {
		return domain.Page[domain.Campaign]{
			Data:       []domain.Campaign{{ID: id, Insights: &domain.Metrics{InsightRecord: domain.InsightRecord{Spend: spend}}}},
			NextCursor: "cur-" + id,
		}
	}

	t.Run("Uma conta mantém o cursor", func(t *testing.T) {
		s, fetcher, _ := newTestService(t)
		fetcher.EXPECT().GetCampaignsWithInsights(gomock.Any(), gomock.Any()).Return(page("c1", 10), nil)

		got, err := s.FetchCampaignsWithInsights(context.Background(), baseRequest("1"))
		require.NoError(t, err)
		assert.Equal(t, "cur-c1", got.NextCursor)
	})

	t.Run("Várias contas descartam o cursor e ordenam por investimento", func(t *testing.T) {
		s, fetcher, _ := newTestService(t)
		fetcher.EXPECT().
			GetCampaignsWithInsights(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q meta.Query) (domain.Page[domain.Campaign], error) {
				if q.AccountID == "act_1" {
					return page("c1", 10), nil
				}
				return page("c2", 50), nil
			}).
			Times(2)

		got, err := s.FetchCampaignsWithInsights(context.Background(), baseRequest("1", "2"))
		require.NoError(t, err)
		assert.Empty(t, got.NextCursor)
		require.Len(t, got.Data, 2)
		assert.Equal(t, "c2", got.Data[0].ID)
	})
}

func TestFetchCampaignsWithInsights_FalhaParcial(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetCampaignsWithInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) (domain.Page[domain.Campaign], error) {
			if q.AccountID == "act_b" {
				return domain.Page[domain.Campaign]{}, errors.New("conta sem permissão")
			}
			return domain.Page[domain.Campaign]{
				Data: []domain.Campaign{{ID: "camp-" + q.AccountID, AccountID: q.AccountID}},
			}, nil
		}).
		Times(3)

	got, err := s.FetchCampaignsWithInsights(context.Background(), baseRequest("a", "b", "c"))
	require.NoError(t, err)

	ids := make([]string, 0, len(got.Data))
	for _, c := range got.Data {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"camp-act_a", "camp-act_c"}, ids)
}

func TestFetchBreakdown(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetBreakdown(gomock.Any(), gomock.Any(), domain.BreakdownAgeGender).
		DoAndReturn(func(_ context.Context, q meta.Query, _ domain.BreakdownKind) ([]domain.InsightRecord, error) {
			return []domain.InsightRecord{
				{AccountID: q.AccountID, Age: "25-34", Gender: "female", Spend: 30},
				{AccountID: q.AccountID, Age: "18-24", Gender: "male", Spend: 10},
			}, nil
		}).
		Times(2)

	rows, err := s.FetchBreakdown(context.Background(), baseRequest("1", "2"), domain.BreakdownAgeGender)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "25-34-female", rows[0].Key)
	assert.InDelta(t, 60, rows[0].Spend, 1e-9)

	_, err = s.FetchBreakdown(context.Background(), baseRequest("1"), "country")
	assert.ErrorIs(t, err, ErrInvalidBreakdown)
}

func TestFetchAccountHierarchy_IgnoraPeriodo(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetHierarchy(gomock.Any(), gomock.Any()).
		Return(domain.AccountHierarchy{
			Campaigns: []domain.HierarchyItem{{ID: "c1", Name: "Vendas"}},
		}, nil).
		Times(1)

	first := baseRequest("1")
	_, err := s.FetchAccountHierarchy(context.Background(), first)
	require.NoError(t, err)

	other := baseRequest("1")
	other.Selection = daterange.Selection{Preset: daterange.Last30d}
	other.Filter = domain.GlobalFilter{SearchQuery: "x"}
	h, err := s.FetchAccountHierarchy(context.Background(), other)
	require.NoError(t, err)
	require.Len(t, h.Campaigns, 1)
	assert.NotNil(t, h.AdSets)
}

func TestFetchAdAccounts(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	_, err := s.FetchAdAccounts(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingToken)

	fetcher.EXPECT().GetAdAccounts(gomock.Any(), "tok").Return(nil, errors.New("token expirado"))
	_, err = s.FetchAdAccounts(context.Background(), "tok")
	var insightErr *InsightError
	require.ErrorAs(t, err, &insightErr)
	assert.Equal(t, apiErrors.ErrExternalService, insightErr.Code)
}

func TestFetchTrend(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	var (
		mu     sync.Mutex
		ranges []daterange.Range
	)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) (domain.InsightRecord, error) {
			mu.Lock()
			ranges = append(ranges, q.Range)
			mu.Unlock()

			if q.Range.Since == "2024-03-08" {
				return salesRecord("act_1", 150, 10, 600), nil
			}
			return salesRecord("act_1", 100, 5, 300), nil
		}).
		Times(2)

	trend, err := s.FetchTrend(context.Background(), baseRequest("1"))
	require.NoError(t, err)

	assert.Equal(t, []daterange.Range{
		{Since: "2024-03-08", Until: "2024-03-14"},
		{Since: "2024-03-01", Until: "2024-03-07"},
	}, ranges)

	require.NotNil(t, trend.Previous)
	assert.InDelta(t, 50, trend.Deltas["spend"], 1e-9)
	assert.InDelta(t, 100, trend.Deltas["results"], 1e-9)
}

func TestFetchTrend_PeriodoAnteriorIndisponivel(t *testing.T) {
	s, fetcher, _ := newTestService(t)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q meta.Query) (domain.InsightRecord, error) {
			if q.Range.Since == "2024-03-08" {
				return salesRecord("act_1", 150, 10, 600), nil
			}
			return domain.InsightRecord{}, errors.New("limite de requisições")
		}).
		Times(2)

	trend, err := s.FetchTrend(context.Background(), baseRequest("1"))
	require.NoError(t, err)
	assert.Nil(t, trend.Previous)
	assert.Nil(t, trend.Deltas)
	assert.InDelta(t, 150, trend.Current.Spend, 1e-9)
}

func TestDeltas_PeriodoAnteriorZerado(t *testing.T) {
	current := domain.Metrics{InsightRecord: domain.InsightRecord{Spend: 10}}
	deltas := Deltas(current, domain.Metrics{})

	assert.InDelta(t, 100, deltas["spend"], 1e-9)
	assert.InDelta(t, 0, deltas["clicks"], 1e-9)
}

func TestClearCache(t *testing.T) {
	s, fetcher, store := newTestService(t)

	fetcher.EXPECT().
		GetAccountInsights(gomock.Any(), gomock.Any()).
		Return(domain.InsightRecord{Spend: 1}, nil).
		Times(2)

	_, err := s.FetchAccountInsights(context.Background(), baseRequest("1"))
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	s.ClearCache(context.Background())
	assert.Equal(t, 0, store.Len())

	_, err = s.FetchAccountInsights(context.Background(), baseRequest("1"))
	require.NoError(t, err)
}

func TestClearCache_BuscaEmAndamentoNaoGravaResultadoAntigo(t *testing.T) {
	s, fetcher, store := newTestService(t)

	started := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		fetcher.EXPECT().
			GetAccountInsights(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, meta.Query) (domain.InsightRecord, error) {
				close(started)
				<-release
				return domain.InsightRecord{Spend: 100}, nil
			}),
		fetcher.EXPECT().
			GetAccountInsights(gomock.Any(), gomock.Any()).
			Return(domain.InsightRecord{Spend: 999}, nil),
	)

	done := make(chan domain.Metrics)
	go func() {
		m, err := s.FetchAccountInsights(context.Background(), baseRequest("1"))
		assert.NoError(t, err)
		done <- m
	}()

	<-started
	s.ClearCache(context.Background())
	close(release)

	old := <-done
	assert.InDelta(t, 100, old.Spend, 1e-9, "a busca em andamento ainda responde ao chamador")
	assert.Equal(t, 0, store.Len(), "resultado anterior à limpeza não entra no cache")

	m, err := s.FetchAccountInsights(context.Background(), baseRequest("1"))
	require.NoError(t, err)
	assert.InDelta(t, 999, m.Spend, 1e-9)
	assert.Equal(t, 1, store.Len())
}
