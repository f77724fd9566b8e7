package metaclient

import (
	"context"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	metadomain "github.com/bsocial/adhub-api/infrastructure/integrator/meta/domain"
)

const creativeFields = "id,name,title,body,image_url,thumbnail_url,video_id,call_to_action_type,object_type"

func (c *MetaClient) ListCampaigns(ctx context.Context, token, accountID string, params url.Values, opts ListOptions) ([]metadomain.Campaign, string, error) {
	return fetchAll[metadomain.Campaign](ctx, c, accountID+"/campaigns", token, params, opts)
}

func (c *MetaClient) ListAdSets(ctx context.Context, token, accountID string, params url.Values, opts ListOptions) ([]metadomain.AdSet, string, error) {
	return fetchAll[metadomain.AdSet](ctx, c, accountID+"/adsets", token, params, opts)
}

func (c *MetaClient) ListAds(ctx context.Context, token, accountID string, params url.Values, opts ListOptions) ([]metadomain.Ad, string, error) {
	return fetchAll[metadomain.Ad](ctx, c, accountID+"/ads", token, params, opts)
}

// GetCreatives resolve criativos via multi-get (?ids=a,b,c) em lotes.
// Um lote com falha é registrado e ignorado; os ids ausentes ficam sem criativo.
func (c *MetaClient) GetCreatives(ctx context.Context, token string, ids []string) (map[string]metadomain.AdCreative, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	batchSize := c.Cfg.Fetch.CreativeBatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	creatives := make(map[string]metadomain.AdCreative, len(ids))

	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))
		batch := ids[start:end]

		params := url.Values{}
		params.Add("ids", strings.Join(batch, ","))
		params.Add("fields", creativeFields)

		body, err := c.get(ctx, c.endpoint("")+"?"+withToken(params, token).Encode())
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logrus.WithFields(logrus.Fields{
				"batch_size": len(batch),
				"error":      err.Error(),
			}).Warn("metaclient: falha ao buscar lote de criativos")
			continue
		}

		var response map[string]metadomain.AdCreative
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Warn("metaclient: resposta de criativos inválida")
			continue
		}

		for id, creative := range response {
			creatives[id] = creative
		}
	}

	return creatives, nil
}
