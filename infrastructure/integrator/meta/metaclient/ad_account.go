package metaclient

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/bsocial/adhub-api/infrastructure/integrator/meta/domain"
)

const adAccountFields = "id,account_id,name,currency,timezone_name,account_status,amount_spent,business{id,name}"

// GetAdAccounts lista todas as contas de anúncio acessíveis pelo token.
func (c *MetaClient) GetAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", adAccountFields)
	params.Add("limit", "100")

	accounts, _, err := fetchAll[metadomain.AdAccount](ctx, c, "me/adaccounts", token, params, ListOptions{})
	if err != nil {
		logrus.WithError(err).Error("metaclient: erro ao listar contas de anúncio")
		return nil, err
	}

	return accounts, nil
}

func (c *MetaClient) GetAdAccount(ctx context.Context, token, accountID string) (*metadomain.AdAccount, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	params := url.Values{}
	params.Add("fields", adAccountFields)

	body, err := c.get(ctx, c.endpoint(accountID)+"?"+withToken(params, token).Encode())
	if err != nil {
		return nil, err
	}

	var account metadomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &account, nil
}
