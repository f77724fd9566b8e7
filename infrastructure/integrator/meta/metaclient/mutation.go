package metaclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

var ErrMutationRejected = errors.New("a plataforma não confirmou a alteração")

type mutationResponse struct {
	Success bool `json:"success"`
}

type copyResponse struct {
	CopiedCampaignID string `json:"copied_campaign_id"`
	CopiedAdSetID    string `json:"copied_adset_id"`
	CopiedAdID       string `json:"copied_ad_id"`
	ID               string `json:"id"`
}

// UpdateObject envia POST /{objectID} com os campos alterados.
func (c *MetaClient) UpdateObject(ctx context.Context, token, objectID string, values url.Values) error {
	if token == "" {
		return ErrMissingToken
	}

	body, err := c.do(ctx, http.MethodPost, c.endpoint(objectID), withToken(values, token))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": objectID,
			"error":     err.Error(),
		}).Error("metaclient: falha ao atualizar objeto")
		return err
	}

	return checkSuccess(body)
}

func (c *MetaClient) DeleteObject(ctx context.Context, token, objectID string) error {
	if token == "" {
		return ErrMissingToken
	}

	params := withToken(url.Values{}, token)

	body, err := c.do(ctx, http.MethodDelete, c.endpoint(objectID)+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": objectID,
			"error":     err.Error(),
		}).Error("metaclient: falha ao remover objeto")
		return err
	}

	return checkSuccess(body)
}

// CopyObject duplica campanha, conjunto ou anúncio e retorna o id da cópia.
func (c *MetaClient) CopyObject(ctx context.Context, token, objectID string, values url.Values) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	body, err := c.do(ctx, http.MethodPost, c.endpoint(objectID+"/copies"), withToken(values, token))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": objectID,
			"error":     err.Error(),
		}).Error("metaclient: falha ao duplicar objeto")
		return "", err
	}

	var resp copyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}

	for _, id := range []string{resp.CopiedCampaignID, resp.CopiedAdSetID, resp.CopiedAdID, resp.ID} {
		if id != "" {
			return id, nil
		}
	}

	return "", ErrMutationRejected
}

func checkSuccess(body []byte) error {
	var resp mutationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return ErrMutationRejected
	}
	return nil
}
