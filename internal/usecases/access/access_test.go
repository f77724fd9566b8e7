package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

func strPtr(s string) *string { return &s }

func client(cfg domain.UserConfig) *domain.User {
	return &domain.User{ID: "u1", Role: domain.RoleClient, Active: true, Config: cfg}
}

func TestScope(t *testing.T) {
	req := domain.InsightRequest{
		AccountIDs: []string{"1", "act_2", "3"},
		Selection:  daterange.Selection{Preset: daterange.Last7d},
	}

	user := client(domain.UserConfig{
		AdAccountIDs:         []string{"act_1", "2"},
		SpendMultiplier:      1.2,
		GlobalCampaignFilter: domain.GlobalFilter{SelectedCampaignIDs: []string{"c1", "c1"}},
		FixedDateStart:       strPtr("2024-01-01"),
		FixedDateEnd:         strPtr("2024-01-31"),
	})

	got, err := Scope(user, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"act_1", "act_2"}, got.AccountIDs)
	assert.Equal(t, 1.2, got.SpendMultiplier)
	require.NotNil(t, got.Restriction)
	assert.Equal(t, []string{"c1"}, got.Restriction.SelectedCampaignIDs)
	assert.Equal(t, daterange.Custom, got.Selection.Preset)
	assert.Equal(t, "2024-01-01", got.Selection.Custom.StartDate)
}

func TestScope_Casos(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		req     domain.InsightRequest
		wantErr error
		want    []string
	}{
		{
			name:    "Sem usuário",
			wantErr: ErrNoUser,
		},
		{
			name: "Admin não é restringido",
			user: &domain.User{Role: domain.RoleAdmin},
			req:  domain.InsightRequest{AccountIDs: []string{"act_9"}},
			want: []string{"act_9"},
		},
		{
			name:    "Usuário desativado",
			user:    &domain.User{Role: domain.RoleClient},
			wantErr: ErrInactiveUser,
		},
		{
			name:    "Nenhuma conta liberada",
			user:    client(domain.UserConfig{AdAccountIDs: []string{"act_1"}}),
			req:     domain.InsightRequest{AccountIDs: []string{"act_2"}},
			wantErr: ErrNoAllowedAccounts,
		},
		{
			name: "Sem contas solicitadas usa as liberadas",
			user: client(domain.UserConfig{AdAccountIDs: []string{"1", "2"}}),
			want: []string{"act_1", "act_2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scope(tt.user, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.AccountIDs)
		})
	}
}

func TestScope_SemFiltroFixoRemoveRestricao(t *testing.T) {
	user := client(domain.UserConfig{AdAccountIDs: []string{"1"}})
	req := domain.InsightRequest{Restriction: &domain.GlobalFilter{SearchQuery: "tentativa"}}

	got, err := Scope(user, req)
	require.NoError(t, err)
	assert.Nil(t, got.Restriction)
}

func TestFixedSelection_Incompleta(t *testing.T) {
	_, ok := FixedSelection(domain.UserConfig{FixedDateStart: strPtr("2024-01-01")})
	assert.False(t, ok)
}

func TestCheckFeature(t *testing.T) {
	user := client(domain.UserConfig{AllowedFeatures: []domain.Feature{domain.FeatureDashboard, domain.FeatureAdmin}})

	assert.NoError(t, CheckFeature(user, domain.FeatureDashboard))
	assert.ErrorIs(t, CheckFeature(user, domain.FeatureAILab), ErrFeatureNotAllowed)
	assert.ErrorIs(t, CheckFeature(user, domain.FeatureAdmin), ErrFeatureNotAllowed, "admin exige papel de administrador")
	assert.NoError(t, CheckFeature(&domain.User{Role: domain.RoleAdmin}, domain.FeatureAdmin))
	assert.ErrorIs(t, CheckFeature(nil, domain.FeatureDashboard), ErrNoUser)
}

func TestMaskSpend(t *testing.T) {
	m := domain.Metrics{InsightRecord: domain.InsightRecord{Spend: 100, Clicks: 10}}
	m.CPC = 10
	m.CPM = 5
	m.CostPerResult = 20
	m.ROAS = 3

	MaskSpend(&m)

	assert.Zero(t, m.Spend)
	assert.Zero(t, m.CPC)
	assert.Zero(t, m.CPM)
	assert.Zero(t, m.CostPerResult)
	assert.Equal(t, 3.0, m.ROAS)
	assert.Equal(t, int64(10), m.Clicks)

	assert.True(t, HidesSpend(client(domain.UserConfig{HideTotalSpend: true})))
	assert.False(t, HidesSpend(&domain.User{Role: domain.RoleAdmin, Config: domain.UserConfig{HideTotalSpend: true}}))
}

func TestMaskTrend(t *testing.T) {
	prev := domain.Metrics{InsightRecord: domain.InsightRecord{Spend: 50}}
	trend := domain.Trend{
		Current:  domain.Metrics{InsightRecord: domain.InsightRecord{Spend: 100}},
		Previous: &prev,
		Deltas:   map[string]float64{"spend": 100, "clicks": 5},
	}

	MaskTrend(&trend)

	assert.Zero(t, trend.Current.Spend)
	assert.Zero(t, trend.Previous.Spend)
	assert.Equal(t, map[string]float64{"clicks": 5}, trend.Deltas)
}
