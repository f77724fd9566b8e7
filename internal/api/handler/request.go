package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

// MetaTokenHeader carrega o token de acesso da Graph API do usuário.
const MetaTokenHeader = "X-Meta-Token"

var errInvalidQuery = errors.New("parâmetros de consulta inválidos")

// parseInsightRequest lê contas, período, filtros, objetivo e cursor da query string.
// O segundo retorno indica um pedido de atualização manual (refresh=true).
func parseInsightRequest(r *http.Request, now time.Time) (domain.InsightRequest, bool, error) {
	q := r.URL.Query()

	req := domain.InsightRequest{
		AccountIDs: splitList(q.Get("account_ids")),
		Token:      strings.TrimSpace(r.Header.Get(MetaTokenHeader)),
		Filter: domain.GlobalFilter{
			SearchQuery:         strings.TrimSpace(q.Get("search")),
			SelectedCampaignIDs: splitList(q.Get("campaign_ids")),
			SelectedAdSetIDs:    splitList(q.Get("adset_ids")),
		},
		Objective: q.Get("objective"),
		Cursor:    q.Get("cursor"),
	}

	sel := daterange.Selection{Preset: daterange.Preset(q.Get("preset"))}
	if sel.Preset == "" {
		sel.Preset = daterange.Last7d
	}
	if sel.Preset == daterange.Custom {
		sel.Custom = &daterange.CustomRange{
			StartDate: q.Get("start_date"),
			EndDate:   q.Get("end_date"),
		}
	}
	if err := sel.Validate(now); err != nil {
		return req, false, errors.Wrap(errInvalidQuery, err.Error())
	}
	req.Selection = sel

	refresh := false
	if raw := q.Get("refresh"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return req, false, errors.Wrapf(errInvalidQuery, "refresh=%q", raw)
		}
		refresh = v
	}

	return req, refresh, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
