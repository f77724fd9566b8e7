package domain

import "strings"

type ObjectiveCategory string

const (
	CategorySales      ObjectiveCategory = "SALES"
	CategoryLeads      ObjectiveCategory = "LEADS"
	CategoryTraffic    ObjectiveCategory = "TRAFFIC"
	CategoryEngagement ObjectiveCategory = "ENGAGEMENT"
	CategoryAwareness  ObjectiveCategory = "AWARENESS"
	CategoryApp        ObjectiveCategory = "APP"
	CategoryMessages   ObjectiveCategory = "MESSAGES"
	CategoryUnknown    ObjectiveCategory = "UNKNOWN"
)

// Avaliados em ordem; o primeiro trecho encontrado define a categoria.
var objectiveMatchers = []struct {
	category ObjectiveCategory
	needles  []string
}{
	{CategorySales, []string{"SALES", "CONVERSIONS", "PURCHASE"}},
	{CategoryLeads, []string{"LEAD"}},
	{CategoryTraffic, []string{"TRAFFIC", "LINK_CLICKS"}},
	{CategoryEngagement, []string{"ENGAGEMENT", "POST_ENGAGEMENT"}},
	{CategoryAwareness, []string{"AWARENESS", "REACH"}},
	{CategoryApp, []string{"APP"}},
	{CategoryMessages, []string{"MESSAGES"}},
}

// Cadeias de fallback de action_type por categoria de objetivo.
var resultActionTypes = map[ObjectiveCategory][]string{
	CategorySales:      {"purchase", "omni_purchase", "offsite_conversion.fb_pixel_purchase"},
	CategoryLeads:      {"lead", "onsite_conversion.lead_grouped", "offsite_conversion.fb_pixel_lead"},
	CategoryTraffic:    {"link_click", "landing_page_view"},
	CategoryEngagement: {"post_engagement", "page_engagement"},
	CategoryApp:        {"app_install", "mobile_app_install", "omni_app_install"},
	CategoryMessages:   {"onsite_conversion.messaging_conversation_started_7d", "onsite_conversion.messaging_first_reply"},
	CategoryUnknown:    {"link_click"},
}

var purchaseValueTypes = []string{"purchase", "omni_purchase", "offsite_conversion.fb_pixel_purchase"}

var purchaseROASTypes = []string{"purchase", "omni_purchase"}

// DerivedResults é o par resultado / custo por resultado.
type DerivedResults struct {
	Results       float64 `json:"results"`
	CostPerResult float64 `json:"cost_per_result"`
}

type DerivedMetrics struct {
	DerivedResults
	ROAS          float64 `json:"roas"`
	PurchaseValue float64 `json:"purchase_value"`
	CTR           float64 `json:"ctr"`
	CPC           float64 `json:"cpc"`
	CPM           float64 `json:"cpm"`
	Frequency     float64 `json:"frequency"`
}

// CategoryOf classifica o objetivo da campanha sem diferenciar maiúsculas.
func CategoryOf(objective string) ObjectiveCategory {
	upper := strings.ToUpper(objective)
	if upper == "" {
		return CategoryUnknown
	}

	for _, m := range objectiveMatchers {
		for _, needle := range m.needles {
			if strings.Contains(upper, needle) {
				return m.category
			}
		}
	}

	return CategoryUnknown
}

// ComputeResults retorna a contagem de resultados relevante ao objetivo.
func ComputeResults(rec InsightRecord, objective string) DerivedResults {
	category := CategoryOf(objective)

	var results float64
	if category == CategoryAwareness {
		results = float64(rec.Reach)
	} else {
		results = firstPresent(rec.Actions, resultActionTypes[category])
	}

	return DerivedResults{
		Results:       results,
		CostPerResult: SafeDiv(rec.Spend, results),
	}
}

// PurchaseValue localiza a receita de compras em action_values.
func PurchaseValue(rec InsightRecord) float64 {
	return firstPresent(rec.ActionValues, purchaseValueTypes)
}

// ComputeROAS prefere o purchase_roas reportado pela plataforma e, na ausência
// dele, divide a receita de compras pelo investimento.
func ComputeROAS(rec InsightRecord) float64 {
	if rec.Spend <= 0 {
		return 0
	}

	for _, t := range purchaseROASTypes {
		if v, ok := sumOf(rec.PurchaseROAS, t); ok {
			return v
		}
	}

	return SafeDiv(PurchaseValue(rec), rec.Spend)
}

// RevenueOf reconstrói a receita do registro. Quando action_values não traz
// compras usa purchase_roas * spend.
func RevenueOf(rec InsightRecord) float64 {
	if v := PurchaseValue(rec); v > 0 {
		return v
	}
	return ComputeROAS(rec) * rec.Spend
}

// Derive calcula todas as métricas derivadas de um registro.
func Derive(rec InsightRecord, objective string) DerivedMetrics {
	return DerivedMetrics{
		DerivedResults: ComputeResults(rec, objective),
		ROAS:           ComputeROAS(rec),
		PurchaseValue:  RevenueOf(rec),
		CTR:            SafeDiv(float64(rec.Clicks), float64(rec.Impressions)) * 100,
		CPC:            SafeDiv(rec.Spend, float64(rec.Clicks)),
		CPM:            SafeDiv(rec.Spend, float64(rec.Impressions)) * 1000,
		Frequency:      SafeDiv(float64(rec.Impressions), float64(rec.Reach)),
	}
}

// ActionValue soma todas as entradas do tipo informado.
func ActionValue(actions []Action, actionType string) float64 {
	v, _ := sumOf(actions, actionType)
	return v
}

func firstPresent(actions []Action, candidates []string) float64 {
	for _, t := range candidates {
		if v, ok := sumOf(actions, t); ok {
			return v
		}
	}
	return 0
}

// sumOf soma entradas duplicadas do mesmo tipo (janelas de atribuição diferentes).
func sumOf(actions []Action, actionType string) (float64, bool) {
	var (
		total float64
		found bool
	)

	for _, a := range actions {
		if a.ActionType == actionType {
			total += a.Value
			found = true
		}
	}

	return total, found
}

// SafeDiv retorna 0 quando o divisor é zero, nunca NaN ou Inf.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
