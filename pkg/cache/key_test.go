package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_ObjectKeyOrderIsNormalized(t *testing.T) {
	a := Key("fetchAccountInsights", map[string]any{"a": 1, "b": 2}, []string{"x"})
	b := Key("fetchAccountInsights", map[string]any{"b": 2, "a": 1}, []string{"x"})

	assert.Equal(t, a, b)
	assert.Equal(t, `fetchAccountInsights_{"a":1,"b":2}_["x"]`, a)
}

func TestKey_StructAndEquivalentMapCollide(t *testing.T) {
	type filter struct {
		SearchQuery string   `json:"searchQuery"`
		CampaignIDs []string `json:"selectedCampaignIds"`
	}

	fromStruct := Key("op", filter{SearchQuery: "black", CampaignIDs: []string{"1"}})
	fromMap := Key("op", map[string]any{"selectedCampaignIds": []string{"1"}, "searchQuery": "black"})

	assert.Equal(t, fromStruct, fromMap)
}

func TestKey_Primitives(t *testing.T) {
	assert.Equal(t, "op_act_1_10_true_1.5_null", Key("op", "act_1", 10, true, 1.5, nil))
}

func TestKey_DistinctArgumentsDiffer(t *testing.T) {
	assert.NotEqual(t, Key("op", []string{"a", "b"}), Key("op", []string{"b", "a"}), "a ordem de listas é significativa")
	assert.NotEqual(t, Key("op1", "x"), Key("op2", "x"))
}

func TestTokenHash(t *testing.T) {
	a := TokenHash("token-a")

	assert.Len(t, a, 16)
	assert.Equal(t, a, TokenHash("token-a"))
	assert.NotEqual(t, a, TokenHash("token-b"))
	assert.NotContains(t, a, "token")
}
