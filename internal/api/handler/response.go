package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	metadomain "github.com/bsocial/adhub-api/infrastructure/integrator/meta/domain"
	"github.com/bsocial/adhub-api/internal/usecases/access"
	"github.com/bsocial/adhub-api/internal/usecases/authenticating"
	"github.com/bsocial/adhub-api/internal/usecases/insighting"
	"github.com/bsocial/adhub-api/internal/usecases/managing"
	"github.com/bsocial/adhub-api/internal/usecases/querying"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// handleError converte os erros dos casos de uso na resposta padronizada.
func handleError(w http.ResponseWriter, err error) {
	var metaErr *metadomain.APIError
	if errors.As(err, &metaErr) && metaErr.IsTokenExpired() {
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token do Meta expirado", nil)
		return
	}

	var insightErr *insighting.InsightError
	if errors.As(err, &insightErr) {
		apiErrors.WriteError(w, insightErr.Code, insightErr.Error(), nil)
		return
	}

	var mutationErr *managing.MutationError
	if errors.As(err, &mutationErr) {
		apiErrors.WriteError(w, mutationErr.Code, mutationErr.Error(), map[string]any{
			"object_id": mutationErr.ObjectID,
		})
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.UserID != "" {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, errInvalidQuery):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, access.ErrNoUser):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, err.Error(), nil)
	case errors.Is(err, access.ErrInactiveUser):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, err.Error(), nil)
	case errors.Is(err, access.ErrFeatureNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrFeatureNotAllowed, err.Error(), nil)
	case errors.Is(err, access.ErrNoAllowedAccounts):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)
	case errors.Is(err, querying.ErrQueryDisabled):
		apiErrors.WriteError(w, apiErrors.ErrMissingMetaToken, "Contas e token do Meta são obrigatórios", nil)
	default:
		logrus.WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
