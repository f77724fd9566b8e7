package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/authenticating"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
	"github.com/bsocial/adhub-api/pkg/middleware"
)

func requesterID(r *http.Request) string {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return ""
	}
	return claims.UserID
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers(r.Context())
		if err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.CreateUser(r.Context(), req)
		if err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := service.GetUserProfile(r.Context(), httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteUser(r.Context(), requesterID(r), userID); err != nil {
			handleError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func UpdateUserConfig(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var cfg domain.UserConfig
		if err := decodeBody(r, &cfg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateUserConfig(r.Context(), userID, cfg); err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

func SetUserActive(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.SetActiveRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetUserActive(r.Context(), requesterID(r), userID, req.Active); err != nil {
			handleError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
