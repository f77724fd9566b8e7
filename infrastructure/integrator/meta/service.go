package meta

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	metadomain "github.com/bsocial/adhub-api/infrastructure/integrator/meta/domain"
	"github.com/bsocial/adhub-api/infrastructure/integrator/meta/metaclient"
	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const insightFields = "account_id,account_name,campaign_id,campaign_name,adset_id,adset_name,ad_id,ad_name,objective," +
	"spend,impressions,clicks,reach,unique_clicks,actions,action_values,purchase_roas,date_start,date_stop"

const (
	campaignFields = "id,account_id,name,status,effective_status,objective,daily_budget,lifetime_budget,created_time"
	adSetFields    = "id,account_id,campaign_id,name,status,effective_status,optimization_goal,daily_budget,lifetime_budget,campaign{id,name,objective}"
	adFields       = "id,account_id,campaign_id,adset_id,name,status,effective_status,creative{id},adset{id,name},campaign{id,name,objective}"
)

var breakdownFields = map[domain.BreakdownKind]string{
	domain.BreakdownAgeGender: "age,gender",
	domain.BreakdownRegion:    "region",
	domain.BreakdownPlacement: "publisher_platform,platform_position",
}

// Query descreve uma consulta a uma única conta de anúncios.
type Query struct {
	AccountID       string
	Token           string
	Range           daterange.Range
	Filters         []domain.GlobalFilter
	Cursor          string
	SpendMultiplier float64
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdAccounts lista as contas do token. Sem contas o painel não funciona,
// por isso o erro é sempre propagado.
func (s *MetaIntegrator) GetAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error) {
	resp, err := s.Client.GetAdAccounts(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to get ad accounts from API")
		return nil, err
	}

	accounts := make([]domain.AdAccount, 0, len(resp))
	for _, a := range resp {
		accounts = append(accounts, a.ToDomain())
	}

	logrus.WithField("total_accounts", len(accounts)).Debug("insights: successfully retrieved ad accounts")

	return accounts, nil
}

// GetAccountInsights retorna os totais da conta no período. Uma conta sem
// entrega retorna um registro zerado.
func (s *MetaIntegrator) GetAccountInsights(ctx context.Context, q Query) (domain.InsightRecord, error) {
	params, err := s.insightParams(q, scopeInsights)
	if err != nil {
		return domain.InsightRecord{}, err
	}
	params.Set("level", "account")

	rows, err := s.Client.GetInsights(ctx, q.Token, q.AccountID, params, 1)
	if err != nil {
		s.logFailure(q, "account insights", err)
		return domain.InsightRecord{}, err
	}

	if len(rows) == 0 {
		return domain.InsightRecord{AccountID: q.AccountID, DateStart: q.Range.Since, DateStop: q.Range.Until}, nil
	}

	return s.record(rows[0], q), nil
}

func (s *MetaIntegrator) GetDailyInsights(ctx context.Context, q Query) ([]domain.InsightRecord, error) {
	params, err := s.insightParams(q, scopeInsights)
	if err != nil {
		return nil, err
	}
	params.Set("level", "account")
	params.Set("time_increment", "1")

	return s.insightRows(ctx, q, params, "daily insights")
}

func (s *MetaIntegrator) GetHourlyInsights(ctx context.Context, q Query) ([]domain.InsightRecord, error) {
	params, err := s.insightParams(q, scopeInsights)
	if err != nil {
		return nil, err
	}
	params.Set("level", "account")
	params.Set("breakdowns", "hourly_stats_aggregated_by_advertiser_time_zone")

	return s.insightRows(ctx, q, params, "hourly insights")
}

func (s *MetaIntegrator) GetBreakdown(ctx context.Context, q Query, kind domain.BreakdownKind) ([]domain.InsightRecord, error) {
	breakdowns, ok := breakdownFields[kind]
	if !ok {
		return nil, fmt.Errorf("breakdown desconhecido: %q", kind)
	}

	params, err := s.insightParams(q, scopeInsights)
	if err != nil {
		return nil, err
	}
	params.Set("level", "account")
	params.Set("breakdowns", breakdowns)

	return s.insightRows(ctx, q, params, "breakdown "+string(kind))
}

func (s *MetaIntegrator) GetCampaignsWithInsights(ctx context.Context, q Query) (domain.Page[domain.Campaign], error) {
	params, err := s.listParams(q, scopeCampaigns, campaignFields)
	if err != nil {
		return domain.Page[domain.Campaign]{}, err
	}

	resp, next, err := s.Client.ListCampaigns(ctx, q.Token, q.AccountID, params, s.displayOptions(q))
	if err != nil {
		s.logFailure(q, "campaigns", err)
		return domain.Page[domain.Campaign]{}, err
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for _, c := range resp {
		campaign := c.ToDomain()
		campaign.AccountID = q.AccountID
		campaign.Insights = s.edgeMetrics(c.Insights, q, c.Objective)
		campaigns = append(campaigns, campaign)
	}

	return domain.Page[domain.Campaign]{Data: campaigns, NextCursor: next}, nil
}

func (s *MetaIntegrator) GetAdSetsWithInsights(ctx context.Context, q Query) (domain.Page[domain.AdSet], error) {
	params, err := s.listParams(q, scopeAdSets, adSetFields)
	if err != nil {
		return domain.Page[domain.AdSet]{}, err
	}

	resp, next, err := s.Client.ListAdSets(ctx, q.Token, q.AccountID, params, s.displayOptions(q))
	if err != nil {
		s.logFailure(q, "adsets", err)
		return domain.Page[domain.AdSet]{}, err
	}

	adSets := make([]domain.AdSet, 0, len(resp))
	for _, a := range resp {
		objective := ""
		if a.Campaign != nil {
			objective = a.Campaign.Objective
		}

		adSet := a.ToDomain()
		adSet.AccountID = q.AccountID
		adSet.Insights = s.edgeMetrics(a.Insights, q, objective)
		adSets = append(adSets, adSet)
	}

	return domain.Page[domain.AdSet]{Data: adSets, NextCursor: next}, nil
}

func (s *MetaIntegrator) GetAdsWithInsights(ctx context.Context, q Query) (domain.Page[domain.Ad], error) {
	params, err := s.listParams(q, scopeAds, adFields)
	if err != nil {
		return domain.Page[domain.Ad]{}, err
	}

	resp, next, err := s.Client.ListAds(ctx, q.Token, q.AccountID, params, s.displayOptions(q))
	if err != nil {
		s.logFailure(q, "ads", err)
		return domain.Page[domain.Ad]{}, err
	}

	ads := make([]domain.Ad, 0, len(resp))
	for _, a := range resp {
		objective := ""
		if a.Campaign != nil {
			objective = a.Campaign.Objective
		}

		ad := a.ToDomain()
		ad.AccountID = q.AccountID
		ad.Insights = s.edgeMetrics(a.Insights, q, objective)
		ads = append(ads, ad)
	}

	return domain.Page[domain.Ad]{Data: ads, NextCursor: next}, nil
}

// GetCreativePerformance achata anúncios, criativos e métricas da conta.
// A paginação segue até o limite de registros brutos; os criativos são
// resolvidos em lote depois.
func (s *MetaIntegrator) GetCreativePerformance(ctx context.Context, q Query) ([]domain.AdPerformance, error) {
	params, err := s.listParams(q, scopeAds, adFields)
	if err != nil {
		return nil, err
	}

	ads, _, err := s.Client.ListAds(ctx, q.Token, q.AccountID, params, metaclient.ListOptions{Max: s.cfg.Fetch.MaxRawRecords})
	if err != nil {
		s.logFailure(q, "creative performance", err)
		return nil, err
	}

	creativeIDs := make([]string, 0, len(ads))
	seen := make(map[string]struct{}, len(ads))
	for _, a := range ads {
		if a.Creative == nil || a.Creative.ID == "" {
			continue
		}
		if _, ok := seen[a.Creative.ID]; ok {
			continue
		}
		seen[a.Creative.ID] = struct{}{}
		creativeIDs = append(creativeIDs, a.Creative.ID)
	}

	creatives := map[string]metadomain.AdCreative{}
	if len(creativeIDs) > 0 {
		creatives, err = s.Client.GetCreatives(ctx, q.Token, creativeIDs)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": q.AccountID,
				"error":      err.Error(),
			}).Warn("insights: failed to hydrate creatives, keeping rows without creative")
			creatives = map[string]metadomain.AdCreative{}
		}
	}

	rows := make([]domain.AdPerformance, 0, len(ads))
	for _, a := range ads {
		row := domain.AdPerformance{
			AccountID: q.AccountID,
			AdID:      a.ID,
			AdName:    a.Name,
			AdSetID:   a.AdSetID,
		}

		if a.AdSet != nil {
			row.AdSetID = a.AdSet.ID
			row.AdSetName = a.AdSet.Name
		}
		if a.Campaign != nil {
			row.CampaignID = a.Campaign.ID
			row.CampaignName = a.Campaign.Name
			row.Objective = a.Campaign.Objective
		}
		if a.Creative != nil {
			row.CreativeID = a.Creative.ID
			if creative, ok := creatives[a.Creative.ID]; ok {
				row.Creative = creative.ToDomain()
			} else {
				row.Creative = domain.AdCreative{ID: a.Creative.ID}
			}
		}

		if m := s.edgeMetrics(a.Insights, q, row.Objective); m != nil {
			row.Metrics = *m
		} else {
			row.Metrics = domain.NewMetrics(domain.InsightRecord{AccountID: q.AccountID, AdID: a.ID}, row.Objective)
		}

		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": q.AccountID,
		"ads":        len(rows),
		"creatives":  len(creatives),
	}).Debug("insights: creative performance fetched")

	return rows, nil
}

// GetHierarchy lista campanhas e conjuntos sem insights para os seletores de filtro.
func (s *MetaIntegrator) GetHierarchy(ctx context.Context, q Query) (domain.AccountHierarchy, error) {
	opts := metaclient.ListOptions{Max: s.cfg.Fetch.MaxDisplayRecords}

	campaignParams := url.Values{}
	campaignParams.Set("fields", "id,name")
	campaignParams.Set("limit", strconv.Itoa(s.pageSize()))

	campaigns, _, err := s.Client.ListCampaigns(ctx, q.Token, q.AccountID, campaignParams, opts)
	if err != nil {
		s.logFailure(q, "hierarchy campaigns", err)
		return domain.AccountHierarchy{}, err
	}

	adSetParams := url.Values{}
	adSetParams.Set("fields", "id,name,campaign_id")
	adSetParams.Set("limit", strconv.Itoa(s.pageSize()))

	adSets, _, err := s.Client.ListAdSets(ctx, q.Token, q.AccountID, adSetParams, opts)
	if err != nil {
		s.logFailure(q, "hierarchy adsets", err)
		return domain.AccountHierarchy{}, err
	}

	h := domain.AccountHierarchy{
		Campaigns: make([]domain.HierarchyItem, 0, len(campaigns)),
		AdSets:    make([]domain.HierarchyItem, 0, len(adSets)),
	}
	for _, c := range campaigns {
		h.Campaigns = append(h.Campaigns, domain.HierarchyItem{ID: c.ID, Name: c.Name, AccountID: q.AccountID})
	}
	for _, a := range adSets {
		h.AdSets = append(h.AdSets, domain.HierarchyItem{ID: a.ID, Name: a.Name, AccountID: q.AccountID, CampaignID: a.CampaignID})
	}

	return h, nil
}

func (s *MetaIntegrator) insightRows(ctx context.Context, q Query, params url.Values, what string) ([]domain.InsightRecord, error) {
	rows, err := s.Client.GetInsights(ctx, q.Token, q.AccountID, params, s.cfg.Fetch.MaxRawRecords)
	if err != nil {
		s.logFailure(q, what, err)
		return nil, err
	}

	records := make([]domain.InsightRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, s.record(r, q))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": q.AccountID,
		"rows":       len(records),
	}).Debug("insights: " + what + " fetched")

	return records, nil
}

func (s *MetaIntegrator) insightParams(q Query, sc scope) (url.Values, error) {
	timeRange, err := json.Marshal(q.Range)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fields", insightFields)
	params.Set("time_range", string(timeRange))
	params.Set("limit", strconv.Itoa(s.pageSize()))

	if err := setFiltering(params, BuildFiltering(sc, q.Filters...)); err != nil {
		return nil, err
	}

	return params, nil
}

// listParams monta os campos da aresta com o insight do período embutido.
func (s *MetaIntegrator) listParams(q Query, sc scope, fields string) (url.Values, error) {
	timeRange, err := json.Marshal(q.Range)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fields", fmt.Sprintf("%s,insights.time_range(%s){%s}", fields, timeRange, insightFields))
	params.Set("limit", strconv.Itoa(s.pageSize()))

	if err := setFiltering(params, BuildFiltering(sc, q.Filters...)); err != nil {
		return nil, err
	}

	return params, nil
}

func setFiltering(params url.Values, rules []FilterRule) error {
	if len(rules) == 0 {
		return nil
	}

	encoded, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	params.Set("filtering", string(encoded))
	return nil
}

func (s *MetaIntegrator) displayOptions(q Query) metaclient.ListOptions {
	return metaclient.ListOptions{After: q.Cursor, Max: s.cfg.Fetch.MaxDisplayRecords}
}

func (s *MetaIntegrator) pageSize() int {
	if s.cfg.Fetch.PageSize > 0 {
		return s.cfg.Fetch.PageSize
	}
	return 500
}

func (s *MetaIntegrator) record(wire metadomain.Insight, q Query) domain.InsightRecord {
	rec := wire.ToInsight()
	if rec.AccountID == "" {
		rec.AccountID = q.AccountID
	}
	rec.ScaleSpend(q.SpendMultiplier)
	return rec
}

func (s *MetaIntegrator) edgeMetrics(edge *metadomain.InsightEdge, q Query, objective string) *domain.Metrics {
	wire := edge.First()
	if wire == nil {
		return nil
	}

	m := domain.NewMetrics(s.record(*wire, q), objective)
	return &m
}

func (s *MetaIntegrator) logFailure(q Query, what string, err error) {
	logrus.WithFields(logrus.Fields{
		"account_id": q.AccountID,
		"since":      q.Range.Since,
		"until":      q.Range.Until,
		"error":      err.Error(),
	}).Error("insights: failed to get " + what + " from API")
}
