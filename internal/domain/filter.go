package domain

import (
	"time"

	"github.com/bsocial/adhub-api/pkg/daterange"
)

type GlobalFilter struct {
	SearchQuery         string   `json:"searchQuery,omitempty"`
	SelectedCampaignIDs []string `json:"selectedCampaignIds,omitempty"`
	SelectedAdSetIDs    []string `json:"selectedAdSetIds,omitempty"`
}

func (f GlobalFilter) IsEmpty() bool {
	return f.SearchQuery == "" && len(f.SelectedCampaignIDs) == 0 && len(f.SelectedAdSetIDs) == 0
}

// Normalize remove ids duplicados e vazios, preservando a ordem.
func (f GlobalFilter) Normalize() GlobalFilter {
	return GlobalFilter{
		SearchQuery:         f.SearchQuery,
		SelectedCampaignIDs: uniqueIDs(f.SelectedCampaignIDs),
		SelectedAdSetIDs:    uniqueIDs(f.SelectedAdSetIDs),
	}
}

// InsightRequest é a entrada comum a todas as consultas de insights.
// Restriction é o filtro fixo do usuário, aplicado junto com Filter.
// Objective define a categoria usada nos totais de conta, que não têm objetivo próprio.
type InsightRequest struct {
	AccountIDs      []string            `json:"accountIds"`
	Token           string              `json:"-"`
	Selection       daterange.Selection `json:"dateSelection"`
	Filter          GlobalFilter        `json:"filter"`
	Restriction     *GlobalFilter       `json:"restriction,omitempty"`
	Objective       string              `json:"objective,omitempty"`
	Cursor          string              `json:"cursor,omitempty"`
	SpendMultiplier float64             `json:"spendMultiplier,omitempty"`
	Now             time.Time           `json:"-"`
}

// Filters retorna os filtros que devem ser combinados na consulta.
func (r InsightRequest) Filters() []GlobalFilter {
	filters := []GlobalFilter{r.Filter}
	if r.Restriction != nil && !r.Restriction.IsEmpty() {
		filters = append(filters, *r.Restriction)
	}
	return filters
}

func uniqueIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
