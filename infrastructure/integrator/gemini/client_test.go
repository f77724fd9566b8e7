package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsocial/adhub-api/internal/config"
)

func newTestClient(url, key string) *GeminiClient {
	return NewClient(&config.Config{AI: config.AI{BaseURL: url, APIKey: key, Model: "gemini-test"}})
}

func TestGenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "chave", r.URL.Query().Get("key"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"contents":[{"role":"user","parts":[{"text":"olá"}]}]}`, string(body))

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"## Auditoria"},{"text":" ok"}]}}]}`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL, "chave").GenerateContent(context.Background(), "olá")
	require.NoError(t, err)
	assert.Equal(t, "## Auditoria ok", text)
}

func TestGenerateContent_Erros(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "Erro da API", status: http.StatusTooManyRequests, body: `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`},
		{name: "Sem candidatos", status: http.StatusOK, body: `{"candidates":[]}`, wantErr: ErrEmptyResponse},
		{name: "Corpo inválido", status: http.StatusBadGateway, body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, "chave").GenerateContent(context.Background(), "prompt")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateContent_SemChave(t *testing.T) {
	_, err := newTestClient("http://localhost", "").GenerateContent(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
