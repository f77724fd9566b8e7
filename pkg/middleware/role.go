package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos papéis
func RoleMiddleware(allowedRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, role := range allowedRoles {
				if userClaims.UserRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.Warningf("Acesso negado para usuário ID=%s, Role=%s", userClaims.UserID, userClaims.UserRole)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleClient)
}
