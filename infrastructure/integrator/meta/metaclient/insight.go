package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/bsocial/adhub-api/infrastructure/integrator/meta/domain"
)

// GetInsights consulta /{objectID}/insights seguindo todas as páginas até max registros.
func (c *MetaClient) GetInsights(ctx context.Context, token, objectID string, params url.Values, max int) ([]metadomain.Insight, error) {
	insights, _, err := fetchAll[metadomain.Insight](ctx, c, objectID+"/insights", token, params, ListOptions{Max: max})
	if err != nil {
		return nil, err
	}

	return insights, nil
}
