package domain

type Campaign struct {
	ID              string   `json:"id"`
	AccountID       string   `json:"account_id"`
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	EffectiveStatus string   `json:"effective_status"`
	Objective       string   `json:"objective"`
	DailyBudget     float64  `json:"daily_budget,omitempty"`
	LifetimeBudget  float64  `json:"lifetime_budget,omitempty"`
	CreatedTime     string   `json:"created_time,omitempty"`
	Insights        *Metrics `json:"insights,omitempty"`
}

type AdSet struct {
	ID               string   `json:"id"`
	AccountID        string   `json:"account_id"`
	CampaignID       string   `json:"campaign_id"`
	Name             string   `json:"name"`
	Status           string   `json:"status"`
	EffectiveStatus  string   `json:"effective_status"`
	OptimizationGoal string   `json:"optimization_goal,omitempty"`
	DailyBudget      float64  `json:"daily_budget,omitempty"`
	LifetimeBudget   float64  `json:"lifetime_budget,omitempty"`
	Insights         *Metrics `json:"insights,omitempty"`
}

type Ad struct {
	ID              string   `json:"id"`
	AccountID       string   `json:"account_id"`
	CampaignID      string   `json:"campaign_id"`
	AdSetID         string   `json:"adset_id"`
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	EffectiveStatus string   `json:"effective_status"`
	CreativeID      string   `json:"creative_id,omitempty"`
	Insights        *Metrics `json:"insights,omitempty"`
}

type AdCreative struct {
	ID               string `json:"id"`
	Name             string `json:"name,omitempty"`
	Title            string `json:"title,omitempty"`
	Body             string `json:"body,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	ThumbnailURL     string `json:"thumbnail_url,omitempty"`
	VideoID          string `json:"video_id,omitempty"`
	CallToActionType string `json:"call_to_action_type,omitempty"`
	ObjectType       string `json:"object_type,omitempty"`
}

// AdPerformance é uma linha achatada anúncio + criativo + métricas.
type AdPerformance struct {
	AccountID    string     `json:"account_id"`
	AdID         string     `json:"ad_id"`
	AdName       string     `json:"ad_name"`
	AdSetID      string     `json:"adset_id"`
	AdSetName    string     `json:"adset_name"`
	CampaignID   string     `json:"campaign_id"`
	CampaignName string     `json:"campaign_name"`
	Objective    string     `json:"objective"`
	CreativeID   string     `json:"creative_id,omitempty"`
	Creative     AdCreative `json:"creative"`
	Metrics      Metrics    `json:"metrics"`
}

type HierarchyItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AccountID  string `json:"account_id"`
	CampaignID string `json:"campaign_id,omitempty"`
}

// AccountHierarchy lista apenas identidades, sem insights, para os filtros.
type AccountHierarchy struct {
	Campaigns []HierarchyItem `json:"campaigns"`
	AdSets    []HierarchyItem `json:"adsets"`
}

// Page é uma página de listagem com o cursor da próxima página.
// Em consultas multi-conta o cursor só é devolvido quando há uma única conta.
type Page[T any] struct {
	Data       []T    `json:"data"`
	NextCursor string `json:"next_cursor,omitempty"`
}
