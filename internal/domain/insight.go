package domain

// Action é um par (action_type, valor) retornado nas listas actions,
// action_values e purchase_roas da plataforma.
type Action struct {
	ActionType string  `json:"action_type"`
	Value      float64 `json:"value"`
}

// InsightRecord contém as métricas brutas de uma entidade em uma janela de tempo.
// Todos os campos numéricos são aditivos; CTR, CPC, CPM e frequência são
// sempre derivados a partir deles (ver Derive).
type InsightRecord struct {
	AccountID    string `json:"account_id,omitempty"`
	AccountName  string `json:"account_name,omitempty"`
	CampaignID   string `json:"campaign_id,omitempty"`
	CampaignName string `json:"campaign_name,omitempty"`
	AdSetID      string `json:"adset_id,omitempty"`
	AdSetName    string `json:"adset_name,omitempty"`
	AdID         string `json:"ad_id,omitempty"`
	AdName       string `json:"ad_name,omitempty"`
	Objective    string `json:"objective,omitempty"`

	DateStart  string `json:"date_start,omitempty"`
	DateStop   string `json:"date_stop,omitempty"`
	HourBucket string `json:"hour,omitempty"`

	Age               string `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Region            string `json:"region,omitempty"`
	PublisherPlatform string `json:"publisher_platform,omitempty"`
	PlatformPosition  string `json:"platform_position,omitempty"`

	Spend        float64 `json:"spend"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Reach        int64   `json:"reach"`
	UniqueClicks int64   `json:"unique_clicks"`

	Actions      []Action `json:"actions,omitempty"`
	ActionValues []Action `json:"action_values,omitempty"`
	PurchaseROAS []Action `json:"purchase_roas,omitempty"`
}

// ScaleSpend aplica o multiplicador de investimento configurado para o usuário.
// O ROAS reportado pela plataforma é dividido pelo mesmo fator para continuar
// consistente com o investimento escalado.
func (r *InsightRecord) ScaleSpend(multiplier float64) {
	if multiplier <= 0 || multiplier == 1 {
		return
	}

	r.Spend *= multiplier

	scaled := make([]Action, len(r.PurchaseROAS))
	for i, a := range r.PurchaseROAS {
		scaled[i] = Action{ActionType: a.ActionType, Value: a.Value / multiplier}
	}
	r.PurchaseROAS = scaled
}

// Metrics é um registro de insight acompanhado das métricas derivadas.
type Metrics struct {
	InsightRecord
	DerivedMetrics
}

// NewMetrics normaliza o registro para o objetivo informado.
func NewMetrics(rec InsightRecord, objective string) Metrics {
	if objective == "" {
		objective = rec.Objective
	}

	return Metrics{
		InsightRecord:  rec,
		DerivedMetrics: Derive(rec, objective),
	}
}

type DailyInsight struct {
	Date string `json:"date"`
	Metrics
	EngagementRate float64 `json:"engagement_rate"`
}

// HourlyInsight é um dos 24 buckets do dia, no fuso do anunciante.
type HourlyInsight struct {
	Hour          string  `json:"hour"`
	Spend         float64 `json:"spend"`
	Impressions   int64   `json:"impressions"`
	Reach         int64   `json:"reach"`
	Clicks        int64   `json:"clicks"`
	Conversions   float64 `json:"conversions"`
	PurchaseValue float64 `json:"purchase_value"`
	ROAS          float64 `json:"roas"`
	CPA           float64 `json:"cpa"`
	CTR           float64 `json:"ctr"`
}

type BreakdownKind string

const (
	BreakdownAgeGender BreakdownKind = "age_gender"
	BreakdownRegion    BreakdownKind = "region"
	BreakdownPlacement BreakdownKind = "placement"
)

func (k BreakdownKind) Valid() bool {
	switch k {
	case BreakdownAgeGender, BreakdownRegion, BreakdownPlacement:
		return true
	}
	return false
}

// BreakdownRow é uma fatia categórica (idade/gênero, região ou posicionamento).
type BreakdownRow struct {
	Key string `json:"key"`
	Metrics
}

// Trend compara o período atual com o período anterior equivalente.
// Previous é nil quando a comparação não está disponível.
type Trend struct {
	Since    string             `json:"since"`
	Until    string             `json:"until"`
	Current  Metrics            `json:"current"`
	Previous *Metrics           `json:"previous,omitempty"`
	Deltas   map[string]float64 `json:"deltas,omitempty"`
}
