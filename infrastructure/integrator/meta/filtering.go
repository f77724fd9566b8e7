package meta

import (
	"strings"

	"github.com/bsocial/adhub-api/internal/domain"
)

// Escopo do filtro: o mesmo GlobalFilter usa nomes de campo diferentes
// dependendo da aresta consultada.
type scope int

const (
	scopeInsights scope = iota
	scopeCampaigns
	scopeAdSets
	scopeAds
)

type FilterRule struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// BuildFiltering converte os filtros no parâmetro "filtering" da Graph API.
// As regras de todos os filtros são combinadas com AND pela plataforma.
func BuildFiltering(s scope, filters ...domain.GlobalFilter) []FilterRule {
	rules := make([]FilterRule, 0)

	for _, f := range filters {
		f = f.Normalize()

		if len(f.SelectedCampaignIDs) > 0 {
			field := "campaign.id"
			if s == scopeCampaigns {
				field = "id"
			}
			rules = append(rules, FilterRule{Field: field, Operator: "IN", Value: f.SelectedCampaignIDs})
		}

		if len(f.SelectedAdSetIDs) > 0 && s != scopeCampaigns {
			field := "adset.id"
			if s == scopeAdSets {
				field = "id"
			}
			rules = append(rules, FilterRule{Field: field, Operator: "IN", Value: f.SelectedAdSetIDs})
		}

		if q := strings.TrimSpace(f.SearchQuery); q != "" {
			field := "campaign.name"
			if s == scopeCampaigns {
				field = "name"
			}
			rules = append(rules, FilterRule{Field: field, Operator: "CONTAIN", Value: q})
		}
	}

	return rules
}

// NormalizeAccountID garante o prefixo act_ exigido pela plataforma.
func NormalizeAccountID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, "act_") {
		return id
	}
	return "act_" + id
}
