package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser    contextKey = "user"
	ContextKeyProfile contextKey = "profile"
)

// TokenValidator valida o JWT emitido no login.
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// ProfileLoader carrega o usuário completo, com a configuração de acesso.
type ProfileLoader interface {
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
}

var publicPaths = map[string]bool{
	"/v1/login":    true,
	"/healthcheck": true,
}

func AuthMiddleware(authService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadProfile busca o perfil do usuário autenticado e bloqueia contas desativadas.
func LoadProfile(loader ProfileLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			user, err := loader.GetUserProfile(r.Context(), claims.UserID)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Perfil do usuário não encontrado", nil)
				return
			}
			if !user.Active {
				apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyProfile, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}

func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(ContextKeyProfile).(*domain.User)
	return user, ok
}
