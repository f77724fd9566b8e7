package metadomain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsocial/adhub-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestInsight_ToInsight(t *testing.T) {
	payload := `{
		"account_id": "123",
		"campaign_id": "c1",
		"objective": "OUTCOME_SALES",
		"spend": "200.50",
		"impressions": "10000",
		"clicks": 250,
		"reach": "abc",
		"date_start": "2024-03-08",
		"date_stop": "2024-03-14",
		"actions": [
			{"action_type": "purchase", "value": "10"},
			{"action_type": "link_click", "value": 40}
		],
		"action_values": [{"action_type": "purchase", "value": "600.25"}],
		"purchase_roas": [{"action_type": "omni_purchase", "value": "2.99"}]
	}`

	var wire Insight
	require.NoError(t, json.Unmarshal([]byte(payload), &wire))

	got := wire.ToInsight()

	assert.Equal(t, "123", got.AccountID)
	assert.Equal(t, "OUTCOME_SALES", got.Objective)
	assert.InDelta(t, 200.5, got.Spend, 1e-9)
	assert.Equal(t, int64(10000), got.Impressions)
	assert.Equal(t, int64(250), got.Clicks)
	assert.Equal(t, int64(0), got.Reach, "valor inválido vira zero")
	assert.Equal(t, []domain.Action{
		{ActionType: "purchase", Value: 10},
		{ActionType: "link_click", Value: 40},
	}, got.Actions)
	assert.InDelta(t, 600.25, got.ActionValues[0].Value, 1e-9)
	assert.InDelta(t, 2.99, got.PurchaseROAS[0].Value, 1e-9)
}

func TestInsight_ToInsightSemCampos(t *testing.T) {
	var wire Insight
	require.NoError(t, json.Unmarshal([]byte(`{"spend": null}`), &wire))

	got := wire.ToInsight()

	assert.Zero(t, got.Spend)
	assert.Nil(t, got.Actions)
}

func TestHourOf(t *testing.T) {
	tests := []struct {
		stats    string
		expected string
	}{
		{"09:00:00 - 09:59:59", "09"},
		{"23:00:00 - 23:59:59", "23"},
		{"", ""},
		{"x", ""},
		{"ab:00", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HourOf(tt.stats), tt.stats)
	}
}

func TestInsightEdge_First(t *testing.T) {
	var edge *InsightEdge
	assert.Nil(t, edge.First())

	edge = &InsightEdge{Data: []Insight{{CampaignID: "c1"}}}
	require.NotNil(t, edge.First())
	assert.Equal(t, "c1", edge.First().CampaignID)
}

func TestCampaign_ToDomainConverteOrcamento(t *testing.T) {
	var wire Campaign
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","name":"Campanha","daily_budget":"15000","objective":"OUTCOME_LEADS"}`), &wire))

	got := wire.ToDomain()

	assert.Equal(t, "c1", got.ID)
	assert.InDelta(t, 150.0, got.DailyBudget, 1e-9)
	assert.Zero(t, got.LifetimeBudget)
}

func TestAPIError(t *testing.T) {
	expired := &APIError{StatusCode: 400, Details: ErrorDetails{Code: 190, Message: "Error validating access token"}}
	assert.True(t, expired.IsTokenExpired())
	assert.True(t, expired.IsClientError())
	assert.Contains(t, expired.Error(), "Error validating access token")

	limited := &APIError{StatusCode: 400, Details: ErrorDetails{Code: 17, Message: "User request limit reached"}}
	assert.True(t, limited.IsRateLimited())
	assert.False(t, limited.IsClientError())

	server := &APIError{StatusCode: 500, Details: ErrorDetails{Code: 1, Message: "unknown", UserMessage: "Tente novamente"}}
	assert.False(t, server.IsClientError())
	assert.Equal(t, "Tente novamente", server.Message())
}
