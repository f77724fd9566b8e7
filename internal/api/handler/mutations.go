package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/access"
	"github.com/bsocial/adhub-api/internal/usecases/managing"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
	"github.com/bsocial/adhub-api/pkg/middleware"
)

// mutationContext valida a funcionalidade e extrai token e id do objeto.
func mutationContext(w http.ResponseWriter, r *http.Request) (token, objectID string, ok bool) {
	user, _ := middleware.UserFromContext(r.Context())
	if err := access.CheckFeature(user, domain.FeatureCampaigns); err != nil {
		handleError(w, err)
		return "", "", false
	}

	token = r.Header.Get(MetaTokenHeader)
	if token == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingMetaToken, "Header X-Meta-Token é obrigatório", nil)
		return "", "", false
	}

	return token, httprouter.ParamsFromContext(r.Context()).ByName("id"), true
}

func respondMutation(w http.ResponseWriter, resp *domain.MutationResponse, err error) {
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func UpdateStatus(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, id, ok := mutationContext(w, r)
		if !ok {
			return
		}

		var req domain.UpdateStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.UpdateStatus(r.Context(), token, id, req)
		respondMutation(w, resp, err)
	}
}

func UpdateBudget(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, id, ok := mutationContext(w, r)
		if !ok {
			return
		}

		var req domain.UpdateBudgetRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.UpdateBudget(r.Context(), token, id, req)
		respondMutation(w, resp, err)
	}
}

func Rename(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, id, ok := mutationContext(w, r)
		if !ok {
			return
		}

		var req domain.RenameRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Rename(r.Context(), token, id, req)
		respondMutation(w, resp, err)
	}
}

func DeleteObject(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, id, ok := mutationContext(w, r)
		if !ok {
			return
		}

		resp, err := service.Delete(r.Context(), token, id)
		respondMutation(w, resp, err)
	}
}

// Duplicate aceita corpo vazio, equivalente a deep_copy=false.
func Duplicate(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, id, ok := mutationContext(w, r)
		if !ok {
			return
		}

		var req domain.DuplicateRequest
		if r.ContentLength > 0 {
			if err := decodeBody(r, &req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
				return
			}
		}

		resp, err := service.Duplicate(r.Context(), token, id, req)
		respondMutation(w, resp, err)
	}
}
