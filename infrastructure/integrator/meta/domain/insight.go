package metadomain

import (
	"strings"

	"github.com/bsocial/adhub-api/internal/domain"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      Number `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// ListResponse é o envelope padrão das listagens da Graph API.
type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// Insight é o payload bruto de /insights, com números como string.
type Insight struct {
	AccountID    string `json:"account_id"`
	AccountName  string `json:"account_name"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdSetID      string `json:"adset_id"`
	AdSetName    string `json:"adset_name"`
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`
	Objective    string `json:"objective"`
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`

	HourlyStats       string `json:"hourly_stats_aggregated_by_advertiser_time_zone"`
	Age               string `json:"age"`
	Gender            string `json:"gender"`
	Region            string `json:"region"`
	PublisherPlatform string `json:"publisher_platform"`
	PlatformPosition  string `json:"platform_position"`

	Spend        Number `json:"spend"`
	Impressions  Number `json:"impressions"`
	Clicks       Number `json:"clicks"`
	Reach        Number `json:"reach"`
	UniqueClicks Number `json:"unique_clicks"`

	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	PurchaseROAS []Action `json:"purchase_roas"`
}

// InsightEdge é o campo "insights" aninhado em campanhas, conjuntos e anúncios.
type InsightEdge struct {
	Data []Insight `json:"data"`
}

// First retorna o primeiro registro ou nil quando a entidade não teve entrega.
func (e *InsightEdge) First() *Insight {
	if e == nil || len(e.Data) == 0 {
		return nil
	}
	return &e.Data[0]
}

// ToInsight converte o payload no registro tipado usado pelo domínio.
func (i Insight) ToInsight() domain.InsightRecord {
	return domain.InsightRecord{
		AccountID:         i.AccountID,
		AccountName:       i.AccountName,
		CampaignID:        i.CampaignID,
		CampaignName:      i.CampaignName,
		AdSetID:           i.AdSetID,
		AdSetName:         i.AdSetName,
		AdID:              i.AdID,
		AdName:            i.AdName,
		Objective:         i.Objective,
		DateStart:         i.DateStart,
		DateStop:          i.DateStop,
		HourBucket:        HourOf(i.HourlyStats),
		Age:               i.Age,
		Gender:            i.Gender,
		Region:            i.Region,
		PublisherPlatform: i.PublisherPlatform,
		PlatformPosition:  i.PlatformPosition,
		Spend:             i.Spend.Float("spend"),
		Impressions:       i.Impressions.Int("impressions"),
		Clicks:            i.Clicks.Int("clicks"),
		Reach:             i.Reach.Int("reach"),
		UniqueClicks:      i.UniqueClicks.Int("unique_clicks"),
		Actions:           toActions(i.Actions, "actions"),
		ActionValues:      toActions(i.ActionValues, "action_values"),
		PurchaseROAS:      toActions(i.PurchaseROAS, "purchase_roas"),
	}
}

// HourOf extrai "09" de "09:00:00 - 09:59:59".
func HourOf(stats string) string {
	stats = strings.TrimSpace(stats)
	if len(stats) < 2 {
		return ""
	}

	hour := stats[:2]
	if hour[0] < '0' || hour[0] > '2' || hour[1] < '0' || hour[1] > '9' {
		return ""
	}

	return hour
}

func toActions(in []Action, field string) []domain.Action {
	if len(in) == 0 {
		return nil
	}

	out := make([]domain.Action, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Action{
			ActionType: a.ActionType,
			Value:      a.Value.Float(field + "." + a.ActionType),
		})
	}

	return out
}
