package meta

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Status aceitos pela plataforma para campanhas, conjuntos e anúncios.
var validStatuses = map[string]bool{
	"ACTIVE":   true,
	"PAUSED":   true,
	"ARCHIVED": true,
}

func (s *MetaIntegrator) UpdateStatus(ctx context.Context, token, objectID, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("status inválido: %q", status)
	}

	values := url.Values{}
	values.Set("status", status)

	return s.update(ctx, token, objectID, values)
}

// UpdateBudget recebe valores na moeda da conta; a plataforma espera centavos.
func (s *MetaIntegrator) UpdateBudget(ctx context.Context, token, objectID string, daily, lifetime *float64) error {
	values := url.Values{}
	if daily != nil {
		values.Set("daily_budget", strconv.FormatInt(toMinorUnits(*daily), 10))
	}
	if lifetime != nil {
		values.Set("lifetime_budget", strconv.FormatInt(toMinorUnits(*lifetime), 10))
	}
	if len(values) == 0 {
		return fmt.Errorf("nenhum orçamento informado")
	}

	return s.update(ctx, token, objectID, values)
}

func (s *MetaIntegrator) UpdateName(ctx context.Context, token, objectID, name string) error {
	if name == "" {
		return fmt.Errorf("nome não pode ser vazio")
	}

	values := url.Values{}
	values.Set("name", name)

	return s.update(ctx, token, objectID, values)
}

func (s *MetaIntegrator) Delete(ctx context.Context, token, objectID string) error {
	if err := s.Client.DeleteObject(ctx, token, objectID); err != nil {
		return err
	}

	logrus.WithField("object_id", objectID).Info("mutations: object deleted")
	return nil
}

// Duplicate cria uma cópia pausada; deepCopy inclui os filhos do objeto.
func (s *MetaIntegrator) Duplicate(ctx context.Context, token, objectID string, deepCopy bool) (string, error) {
	values := url.Values{}
	values.Set("deep_copy", strconv.FormatBool(deepCopy))
	values.Set("status_option", "PAUSED")

	id, err := s.Client.CopyObject(ctx, token, objectID, values)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"object_id": objectID,
		"copy_id":   id,
	}).Info("mutations: object duplicated")

	return id, nil
}

func (s *MetaIntegrator) update(ctx context.Context, token, objectID string, values url.Values) error {
	if err := s.Client.UpdateObject(ctx, token, objectID, values); err != nil {
		return err
	}

	logrus.WithField("object_id", objectID).Info("mutations: object updated")
	return nil
}

func toMinorUnits(v float64) int64 {
	return int64(v*100 + 0.5)
}
