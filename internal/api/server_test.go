package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bsocial/adhub-api/internal/api/handler"
	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	authmocks "github.com/bsocial/adhub-api/internal/usecases/authenticating/mocks"
	insightmocks "github.com/bsocial/adhub-api/internal/usecases/insighting/mocks"
	managingmocks "github.com/bsocial/adhub-api/internal/usecases/managing/mocks"
	"github.com/bsocial/adhub-api/internal/usecases/querying"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func newTestServer(t *testing.T, db handler.Pinger) (http.Handler, *authmocks.MockAuthenticator) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:5173"}},
		Query:  config.Query{StaleTime: time.Minute},
	}
	queries := querying.NewManager(cfg)

	srv, err := New(cfg, Services{
		Insights:      handler.NewInsightHandlers(insightmocks.NewMockInsighter(ctrl), queries, nil),
		Mutations:     managingmocks.NewMockManager(ctrl),
		Authenticator: auth,
		Database:      db,
	})
	require.NoError(t, err)

	return srv.Handler(), auth
}

func decodeCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr.Code
}

func TestServer_HealthcheckPublico(t *testing.T) {
	h, _ := newTestServer(t, fakePinger{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)
}

func TestServer_HealthcheckBancoIndisponivel(t *testing.T) {
	h, _ := newTestServer(t, fakePinger{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"unavailable"`)
}

func TestServer_RotaProtegidaSemToken(t *testing.T) {
	h, _ := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeCode(t, rec))
}

func TestServer_GetMeCarregaPerfil(t *testing.T) {
	h, auth := newTestServer(t, nil)

	auth.EXPECT().ValidateToken("jwt").
		Return(&domain.Claims{UserID: "u1", UserRole: domain.RoleClient}, nil)
	auth.EXPECT().GetUserProfile(gomock.Any(), "u1").
		Return(&domain.User{ID: "u1", Email: "ana@bsocial.com", Role: domain.RoleClient, Active: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ana@bsocial.com"`)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestServer_UsuarioDesativadoBloqueado(t *testing.T) {
	h, auth := newTestServer(t, nil)

	auth.EXPECT().ValidateToken("jwt").
		Return(&domain.Claims{UserID: "u1", UserRole: domain.RoleClient}, nil)
	auth.EXPECT().GetUserProfile(gomock.Any(), "u1").
		Return(&domain.User{ID: "u1", Role: domain.RoleClient, Active: false}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/totals", nil)
	req.Header.Set("Authorization", "Bearer jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrUserDisabled, decodeCode(t, rec))
}

func TestServer_ClienteSemAcessoAoAdmin(t *testing.T) {
	h, auth := newTestServer(t, nil)

	auth.EXPECT().ValidateToken("jwt").
		Return(&domain.Claims{UserID: "u1", UserRole: domain.RoleClient}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	req.Header.Set("Authorization", "Bearer jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeCode(t, rec))
}

func TestServer_PreflightCors(t *testing.T) {
	h, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/insights/totals", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Meta-Token")
}

func TestServer_RotaInexistente(t *testing.T) {
	h, auth := newTestServer(t, nil)

	auth.EXPECT().ValidateToken("jwt").
		Return(&domain.Claims{UserID: "u1", UserRole: domain.RoleAdmin}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/nada", nil)
	req.Header.Set("Authorization", "Bearer jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeCode(t, rec))
}
