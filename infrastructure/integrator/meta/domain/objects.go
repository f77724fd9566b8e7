package metadomain

import "github.com/bsocial/adhub-api/internal/domain"

type AdAccount struct {
	ID            string   `json:"id"`
	AccountID     string   `json:"account_id"`
	Name          string   `json:"name"`
	Currency      string   `json:"currency"`
	TimezoneName  string   `json:"timezone_name"`
	AccountStatus int      `json:"account_status"`
	AmountSpent   Number   `json:"amount_spent"`
	Business      *NameRef `json:"business,omitempty"`
}

type NameRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Objective string `json:"objective,omitempty"`
}

type Campaign struct {
	ID              string       `json:"id"`
	AccountID       string       `json:"account_id"`
	Name            string       `json:"name"`
	Status          string       `json:"status"`
	EffectiveStatus string       `json:"effective_status"`
	Objective       string       `json:"objective"`
	DailyBudget     Number       `json:"daily_budget"`
	LifetimeBudget  Number       `json:"lifetime_budget"`
	CreatedTime     string       `json:"created_time"`
	Insights        *InsightEdge `json:"insights,omitempty"`
}

type AdSet struct {
	ID               string       `json:"id"`
	AccountID        string       `json:"account_id"`
	CampaignID       string       `json:"campaign_id"`
	Name             string       `json:"name"`
	Status           string       `json:"status"`
	EffectiveStatus  string       `json:"effective_status"`
	OptimizationGoal string       `json:"optimization_goal"`
	DailyBudget      Number       `json:"daily_budget"`
	LifetimeBudget   Number       `json:"lifetime_budget"`
	Campaign         *NameRef     `json:"campaign,omitempty"`
	Insights         *InsightEdge `json:"insights,omitempty"`
}

type Ad struct {
	ID              string       `json:"id"`
	AccountID       string       `json:"account_id"`
	CampaignID      string       `json:"campaign_id"`
	AdSetID         string       `json:"adset_id"`
	Name            string       `json:"name"`
	Status          string       `json:"status"`
	EffectiveStatus string       `json:"effective_status"`
	Creative        *NameRef     `json:"creative,omitempty"`
	AdSet           *NameRef     `json:"adset,omitempty"`
	Campaign        *NameRef     `json:"campaign,omitempty"`
	Insights        *InsightEdge `json:"insights,omitempty"`
}

type AdCreative struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Title            string `json:"title"`
	Body             string `json:"body"`
	ImageURL         string `json:"image_url"`
	ThumbnailURL     string `json:"thumbnail_url"`
	VideoID          string `json:"video_id"`
	CallToActionType string `json:"call_to_action_type"`
	ObjectType       string `json:"object_type"`
}

// Orçamentos chegam em centavos da moeda da conta.
func budget(n Number, field string) float64 {
	return n.Float(field) / 100
}

func (a AdAccount) ToDomain() domain.AdAccount {
	acc := domain.AdAccount{
		ID:            a.ID,
		AccountID:     a.AccountID,
		Name:          a.Name,
		Currency:      a.Currency,
		TimezoneName:  a.TimezoneName,
		AccountStatus: domain.AdAccountStatus(a.AccountStatus),
		AmountSpent:   budget(a.AmountSpent, "amount_spent"),
	}
	if a.Business != nil {
		acc.BusinessName = a.Business.Name
	}
	return acc
}

func (c Campaign) ToDomain() domain.Campaign {
	return domain.Campaign{
		ID:              c.ID,
		AccountID:       c.AccountID,
		Name:            c.Name,
		Status:          c.Status,
		EffectiveStatus: c.EffectiveStatus,
		Objective:       c.Objective,
		DailyBudget:     budget(c.DailyBudget, "daily_budget"),
		LifetimeBudget:  budget(c.LifetimeBudget, "lifetime_budget"),
		CreatedTime:     c.CreatedTime,
	}
}

func (s AdSet) ToDomain() domain.AdSet {
	return domain.AdSet{
		ID:               s.ID,
		AccountID:        s.AccountID,
		CampaignID:       s.CampaignID,
		Name:             s.Name,
		Status:           s.Status,
		EffectiveStatus:  s.EffectiveStatus,
		OptimizationGoal: s.OptimizationGoal,
		DailyBudget:      budget(s.DailyBudget, "daily_budget"),
		LifetimeBudget:   budget(s.LifetimeBudget, "lifetime_budget"),
	}
}

func (a Ad) ToDomain() domain.Ad {
	ad := domain.Ad{
		ID:              a.ID,
		AccountID:       a.AccountID,
		CampaignID:      a.CampaignID,
		AdSetID:         a.AdSetID,
		Name:            a.Name,
		Status:          a.Status,
		EffectiveStatus: a.EffectiveStatus,
	}
	if a.Creative != nil {
		ad.CreativeID = a.Creative.ID
	}
	return ad
}

func (c AdCreative) ToDomain() domain.AdCreative {
	return domain.AdCreative{
		ID:               c.ID,
		Name:             c.Name,
		Title:            c.Title,
		Body:             c.Body,
		ImageURL:         c.ImageURL,
		ThumbnailURL:     c.ThumbnailURL,
		VideoID:          c.VideoID,
		CallToActionType: c.CallToActionType,
		ObjectType:       c.ObjectType,
	}
}
