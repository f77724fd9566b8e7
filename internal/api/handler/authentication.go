package handler

import (
	"net/http"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/authenticating"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
	"github.com/bsocial/adhub-api/pkg/middleware"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// GetMe retorna o perfil e a configuração de acesso do usuário logado
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
