package insighting

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bsocial/adhub-api/infrastructure/integrator/meta"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
)

// Limite de contas consultadas em paralelo por operação.
const maxConcurrentAccounts = 8

// fanout executa fn para cada conta em paralelo. Uma conta com falha é
// registrada e não contribui com dados; as demais seguem normalmente.
// Só retorna erro quando todas as contas falham.
func fanout[T any](ctx context.Context, op string, queries []meta.Query, fn func(context.Context, meta.Query) (T, error)) ([]T, error) {
	results := make([]T, len(queries))
	errs := make([]error, len(queries))

	// Sem WithContext: a falha de uma conta não cancela as outras.
	var g errgroup.Group
	g.SetLimit(maxConcurrentAccounts)
	for i, q := range queries {
		g.Go(func() error {
			results[i], errs[i] = fn(ctx, q)
			return nil
		})
	}
	_ = g.Wait()

	succeeded := make([]T, 0, len(queries))
	failures := make([]error, 0)

	for i, q := range queries {
		if errs[i] != nil {
			logrus.WithFields(logrus.Fields{
				"operation":  op,
				"account_id": q.AccountID,
				"error":      errs[i].Error(),
			}).Warn("insights: account fetch failed, skipping account")
			failures = append(failures, errs[i])
			continue
		}
		succeeded = append(succeeded, results[i])
	}

	if len(succeeded) == 0 && len(failures) > 0 {
		return nil, NewInsightError(
			fmt.Errorf("%w: %w", ErrAllAccountsFailed, errors.Join(failures...)),
			apiErrors.ErrExternalService,
			failures[0].Error(),
		)
	}

	return succeeded, nil
}

func flatten[T any](groups [][]T) []T {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	out := make([]T, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
