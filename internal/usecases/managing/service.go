package managing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/managing_mock.go -package=mocks

// Mutator altera campanhas, conjuntos e anúncios na plataforma.
type Mutator interface {
	UpdateStatus(ctx context.Context, token, objectID, status string) error
	UpdateBudget(ctx context.Context, token, objectID string, daily, lifetime *float64) error
	UpdateName(ctx context.Context, token, objectID, name string) error
	Delete(ctx context.Context, token, objectID string) error
	Duplicate(ctx context.Context, token, objectID string, deepCopy bool) (string, error)
}

type ResultCache interface {
	ClearCache(ctx context.Context)
}

type QueryState interface {
	Reset()
}

type Manager interface {
	UpdateStatus(ctx context.Context, token, objectID string, req domain.UpdateStatusRequest) (*domain.MutationResponse, error)
	UpdateBudget(ctx context.Context, token, objectID string, req domain.UpdateBudgetRequest) (*domain.MutationResponse, error)
	Rename(ctx context.Context, token, objectID string, req domain.RenameRequest) (*domain.MutationResponse, error)
	Delete(ctx context.Context, token, objectID string) (*domain.MutationResponse, error)
	Duplicate(ctx context.Context, token, objectID string, req domain.DuplicateRequest) (*domain.MutationResponse, error)
}

// Service aplica as alterações e invalida tudo que foi lido antes delas:
// o cache de resultados inteiro e o estado das consultas.
type Service struct {
	mutator Mutator
	cache   ResultCache
	queries QueryState
}

func NewService(mutator Mutator, cache ResultCache, queries QueryState) *Service {
	return &Service{
		mutator: mutator,
		cache:   cache,
		queries: queries,
	}
}

func (s *Service) UpdateStatus(ctx context.Context, token, objectID string, req domain.UpdateStatusRequest) (*domain.MutationResponse, error) {
	if !req.Status.Valid() {
		return nil, NewMutationError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, objectID, string(req.Status))
	}

	return s.apply(ctx, "updateStatus", token, objectID, func() (string, error) {
		return "", s.mutator.UpdateStatus(ctx, token, objectID, string(req.Status))
	})
}

func (s *Service) UpdateBudget(ctx context.Context, token, objectID string, req domain.UpdateBudgetRequest) (*domain.MutationResponse, error) {
	if req.DailyBudget == nil && req.LifetimeBudget == nil {
		return nil, NewMutationError(ErrInvalidBudget, apiErrors.ErrMissingRequiredData, objectID, "informe dailyBudget ou lifetimeBudget")
	}
	for _, b := range []*float64{req.DailyBudget, req.LifetimeBudget} {
		if b != nil && *b <= 0 {
			return nil, NewMutationError(ErrInvalidBudget, apiErrors.ErrInvalidRequest, objectID, fmt.Sprintf("%.2f", *b))
		}
	}

	return s.apply(ctx, "updateBudget", token, objectID, func() (string, error) {
		return "", s.mutator.UpdateBudget(ctx, token, objectID, req.DailyBudget, req.LifetimeBudget)
	})
}

func (s *Service) Rename(ctx context.Context, token, objectID string, req domain.RenameRequest) (*domain.MutationResponse, error) {
	if req.Name == "" {
		return nil, NewMutationError(ErrInvalidName, apiErrors.ErrMissingRequiredData, objectID, "")
	}

	return s.apply(ctx, "rename", token, objectID, func() (string, error) {
		return "", s.mutator.UpdateName(ctx, token, objectID, req.Name)
	})
}

func (s *Service) Delete(ctx context.Context, token, objectID string) (*domain.MutationResponse, error) {
	return s.apply(ctx, "delete", token, objectID, func() (string, error) {
		return "", s.mutator.Delete(ctx, token, objectID)
	})
}

func (s *Service) Duplicate(ctx context.Context, token, objectID string, req domain.DuplicateRequest) (*domain.MutationResponse, error) {
	return s.apply(ctx, "duplicate", token, objectID, func() (string, error) {
		return s.mutator.Duplicate(ctx, token, objectID, req.DeepCopy)
	})
}

func (s *Service) apply(ctx context.Context, op, token, objectID string, mutate func() (string, error)) (*domain.MutationResponse, error) {
	if objectID == "" {
		return nil, NewMutationError(ErrObjectIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	if token == "" {
		return nil, NewMutationError(ErrMissingToken, apiErrors.ErrMissingRequiredData, objectID, "")
	}

	copyID, err := mutate()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"operation": op,
			"object_id": objectID,
			"error":     err.Error(),
		}).Error("mutations: failed")
		return nil, NewMutationError(fmt.Errorf("%w: %w", ErrMutationFailed, err), apiErrors.ErrExternalService, objectID, err.Error())
	}

	s.cache.ClearCache(ctx)
	s.queries.Reset()

	return &domain.MutationResponse{ObjectID: objectID, CopyID: copyID, Success: true}, nil
}
