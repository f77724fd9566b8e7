package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsocial/adhub-api/internal/domain"
)

func TestMergeActions(t *testing.T) {
	merged := MergeActions(
		[]domain.Action{{ActionType: "purchase", Value: 2}, {ActionType: "lead", Value: 1}},
		[]domain.Action{{ActionType: "purchase", Value: 3}},
		nil,
	)

	assert.Equal(t, []domain.Action{
		{ActionType: "purchase", Value: 5},
		{ActionType: "lead", Value: 1},
	}, merged)

	assert.Nil(t, MergeActions(nil, nil))
}

func TestMergeTotals_SemRegistros(t *testing.T) {
	m := MergeTotals(nil, "OUTCOME_SALES")

	assert.Zero(t, m.Spend)
	assert.Zero(t, m.ROAS)
	assert.Zero(t, m.CostPerResult)
}

func TestMergeTotals_MantemContaUnica(t *testing.T) {
	m := MergeTotals([]domain.InsightRecord{
		{AccountID: "act_1", AccountName: "Loja", Spend: 10},
		{AccountID: "act_1", AccountName: "Loja", Spend: 5},
	}, "")

	assert.Equal(t, "act_1", m.AccountID)
	assert.InDelta(t, 15, m.Spend, 1e-9)
}

func TestMergeHourly_IgnoraBucketsInvalidos(t *testing.T) {
	hours := MergeHourly([]domain.InsightRecord{
		{HourBucket: "24", Spend: 10},
		{HourBucket: "", Spend: 10},
		{HourBucket: "7", Spend: 10},
		{
			HourBucket:   "07",
			Spend:        10,
			Actions:      []domain.Action{{ActionType: "purchase", Value: 2}},
			PurchaseROAS: []domain.Action{{ActionType: "purchase", Value: 4}},
		},
	}, "OUTCOME_SALES")

	require.Len(t, hours, HoursPerDay)

	total := 0.0
	for _, h := range hours {
		total += h.Spend
	}
	assert.InDelta(t, 10, total, 1e-9)

	assert.InDelta(t, 2, hours[7].Conversions, 1e-9)
	assert.InDelta(t, 40, hours[7].PurchaseValue, 1e-9)
	assert.InDelta(t, 4, hours[7].ROAS, 1e-9)
	assert.InDelta(t, 5, hours[7].CPA, 1e-9)

	assert.Zero(t, hours[3].ROAS, "hora sem investimento não divide por zero")
	assert.Zero(t, hours[3].CPA)
	assert.Zero(t, hours[3].CTR)
}

func TestMergeBreakdown_Chaves(t *testing.T) {
	records := []domain.InsightRecord{
		{PublisherPlatform: "instagram", PlatformPosition: "feed", Spend: 5},
		{PublisherPlatform: "facebook", PlatformPosition: "feed", Spend: 5},
		{PublisherPlatform: "instagram", PlatformPosition: "story", Spend: 20},
		{PublisherPlatform: "instagram", PlatformPosition: "feed", Spend: 1},
	}

	rows := MergeBreakdown(records, PlacementKey, "")
	require.Len(t, rows, 3)

	assert.Equal(t, "instagram-story", rows[0].Key)
	assert.Equal(t, "instagram-feed", rows[1].Key)
	assert.InDelta(t, 6, rows[1].Spend, 1e-9)
	assert.Equal(t, "facebook-feed", rows[2].Key)
}

func TestMergeBreakdown_EmpateOrdenadoPelaChave(t *testing.T) {
	rows := MergeBreakdown([]domain.InsightRecord{
		{Region: "São Paulo", Spend: 10},
		{Region: "Bahia", Spend: 10},
	}, RegionKey, "")

	require.Len(t, rows, 2)
	assert.Equal(t, "Bahia", rows[0].Key)
}

func TestMergeDaily_TaxaDeEngajamento(t *testing.T) {
	days := MergeDaily([]domain.InsightRecord{
		{DateStart: "2024-03-01", Impressions: 1000, Actions: []domain.Action{{ActionType: "post_engagement", Value: 30}}},
		{DateStart: "2024-03-01", Impressions: 1000, Actions: []domain.Action{{ActionType: "post_engagement", Value: 10}}},
	}, "")

	require.Len(t, days, 1)
	assert.InDelta(t, 2, days[0].EngagementRate, 1e-9)
}
