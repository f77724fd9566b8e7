package insighting

import (
	"fmt"
	"sort"

	"github.com/bsocial/adhub-api/internal/domain"
)

// HoursPerDay é o número de buckets do merge horário.
const HoursPerDay = 24

// MergeActions soma os valores por action_type, mantendo a ordem da primeira ocorrência.
func MergeActions(lists ...[]domain.Action) []domain.Action {
	index := make(map[string]int)
	merged := make([]domain.Action, 0)

	for _, list := range lists {
		for _, a := range list {
			if i, ok := index[a.ActionType]; ok {
				merged[i].Value += a.Value
				continue
			}
			index[a.ActionType] = len(merged)
			merged = append(merged, a)
		}
	}

	if len(merged) == 0 {
		return nil
	}
	return merged
}

// mergeRecords soma os campos aditivos. Os campos de dimensão são copiados do
// primeiro registro e a conta só é mantida quando todos os registros são dela.
// Retorna também a receita total, usada para recompor o ROAS.
func mergeRecords(records []domain.InsightRecord) (domain.InsightRecord, float64) {
	var (
		total   domain.InsightRecord
		revenue float64
	)

	if len(records) == 0 {
		return total, 0
	}

	first := records[0]
	total.AccountID = first.AccountID
	total.AccountName = first.AccountName
	total.DateStart = first.DateStart
	total.DateStop = first.DateStop
	total.HourBucket = first.HourBucket
	total.Age = first.Age
	total.Gender = first.Gender
	total.Region = first.Region
	total.PublisherPlatform = first.PublisherPlatform
	total.PlatformPosition = first.PlatformPosition

	actions := make([][]domain.Action, 0, len(records))
	values := make([][]domain.Action, 0, len(records))

	for _, r := range records {
		if r.AccountID != total.AccountID {
			total.AccountID = ""
			total.AccountName = ""
		}

		total.Spend += r.Spend
		total.Impressions += r.Impressions
		total.Clicks += r.Clicks
		total.Reach += r.Reach
		total.UniqueClicks += r.UniqueClicks
		revenue += domain.RevenueOf(r)

		actions = append(actions, r.Actions)
		values = append(values, r.ActionValues)
	}

	total.Actions = MergeActions(actions...)
	total.ActionValues = MergeActions(values...)

	// purchase_roas não é aditivo: é recalculado a partir dos totais
	if total.Spend > 0 && revenue > 0 {
		total.PurchaseROAS = []domain.Action{{ActionType: "purchase", Value: revenue / total.Spend}}
	}

	return total, revenue
}

func metricsOf(records []domain.InsightRecord, objective string) domain.Metrics {
	total, revenue := mergeRecords(records)

	m := domain.NewMetrics(total, objective)
	m.PurchaseValue = revenue
	return m
}

// MergeTotals combina os totais das contas somando valores brutos e
// recalculando as métricas derivadas uma única vez.
func MergeTotals(records []domain.InsightRecord, objective string) domain.Metrics {
	return metricsOf(records, objective)
}

// MergeDaily agrupa por date_start e ordena as datas em ordem crescente.
func MergeDaily(records []domain.InsightRecord, objective string) []domain.DailyInsight {
	byDate := make(map[string][]domain.InsightRecord)
	for _, r := range records {
		byDate[r.DateStart] = append(byDate[r.DateStart], r)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	daily := make([]domain.DailyInsight, 0, len(dates))
	for _, d := range dates {
		m := metricsOf(byDate[d], objective)
		daily = append(daily, domain.DailyInsight{
			Date:           d,
			Metrics:        m,
			EngagementRate: engagementRate(m.InsightRecord),
		})
	}

	return daily
}

// MergeHourly sempre retorna 24 buckets, de "00" a "23", zerados quando não há atividade.
// A receita de cada linha é reconstruída como spend * roas.
func MergeHourly(records []domain.InsightRecord, objective string) []domain.HourlyInsight {
	buckets := make([]domain.HourlyInsight, HoursPerDay)
	for h := range buckets {
		buckets[h].Hour = fmt.Sprintf("%02d", h)
	}

	for _, r := range records {
		h, ok := hourIndex(r.HourBucket)
		if !ok {
			continue
		}

		b := &buckets[h]
		b.Spend += r.Spend
		b.Impressions += r.Impressions
		b.Reach += r.Reach
		b.Clicks += r.Clicks
		b.Conversions += domain.ComputeResults(r, objective).Results
		b.PurchaseValue += r.Spend * domain.ComputeROAS(r)
	}

	for h := range buckets {
		b := &buckets[h]
		b.ROAS = domain.SafeDiv(b.PurchaseValue, b.Spend)
		b.CPA = domain.SafeDiv(b.Spend, b.Conversions)
		b.CTR = domain.SafeDiv(float64(b.Clicks), float64(b.Impressions)) * 100
	}

	return buckets
}

// KeyFunc extrai a chave natural de um breakdown.
type KeyFunc func(domain.InsightRecord) string

func AgeGenderKey(r domain.InsightRecord) string {
	return r.Age + "-" + r.Gender
}

func RegionKey(r domain.InsightRecord) string {
	return r.Region
}

func PlacementKey(r domain.InsightRecord) string {
	return r.PublisherPlatform + "-" + r.PlatformPosition
}

func keyFuncFor(kind domain.BreakdownKind) (KeyFunc, bool) {
	switch kind {
	case domain.BreakdownAgeGender:
		return AgeGenderKey, true
	case domain.BreakdownRegion:
		return RegionKey, true
	case domain.BreakdownPlacement:
		return PlacementKey, true
	}
	return nil, false
}

// MergeBreakdown agrupa as linhas pela chave e ordena por investimento decrescente.
func MergeBreakdown(records []domain.InsightRecord, keyFn KeyFunc, objective string) []domain.BreakdownRow {
	groups := make(map[string][]domain.InsightRecord)
	order := make([]string, 0)

	for _, r := range records {
		k := keyFn(r)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	rows := make([]domain.BreakdownRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, domain.BreakdownRow{Key: k, Metrics: metricsOf(groups[k], objective)})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Spend != rows[j].Spend {
			return rows[i].Spend > rows[j].Spend
		}
		return rows[i].Key < rows[j].Key
	})

	return rows
}

// SortBySpendDesc ordena listas mescladas colocando o maior investimento primeiro.
func SortBySpendDesc[T any](items []T, spendOf func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return spendOf(items[i]) > spendOf(items[j])
	})
}

func campaignSpend(c domain.Campaign) float64 { return insightSpend(c.Insights) }
func adSetSpend(a domain.AdSet) float64 { return insightSpend(a.Insights) }
func adSpend(a domain.Ad) float64 { return insightSpend(a.Insights) }

func performanceSpend(p domain.AdPerformance) float64 { return p.Metrics.Spend }

func insightSpend(m *domain.Metrics) float64 {
	if m == nil {
		return 0
	}
	return m.Spend
}

// mergePages junta as páginas das contas; o cursor só faz sentido com uma conta.
func mergePages[T any](pages []domain.Page[T], singleAccount bool, spendOf func(T) float64) domain.Page[T] {
	merged := domain.Page[T]{Data: make([]T, 0)}
	for _, p := range pages {
		merged.Data = append(merged.Data, p.Data...)
	}

	if singleAccount && len(pages) == 1 {
		merged.NextCursor = pages[0].NextCursor
	}

	SortBySpendDesc(merged.Data, spendOf)
	return merged
}

func engagementRate(r domain.InsightRecord) float64 {
	return domain.SafeDiv(domain.ActionValue(r.Actions, "post_engagement"), float64(r.Impressions)) * 100
}

func hourIndex(bucket string) (int, bool) {
	if len(bucket) != 2 || bucket[0] < '0' || bucket[0] > '9' || bucket[1] < '0' || bucket[1] > '9' {
		return 0, false
	}

	h := int(bucket[0]-'0')*10 + int(bucket[1]-'0')
	if h >= HoursPerDay {
		return 0, false
	}
	return h, true
}
