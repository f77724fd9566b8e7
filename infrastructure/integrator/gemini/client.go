// Package gemini chama a API generativa usada nas auditorias de IA.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrMissingAPIKey = errors.New("chave da API de IA não configurada")
	ErrEmptyResponse = errors.New("resposta da IA sem texto")
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	cfg        config.AI
}

func NewClient(cfg *config.Config) *GeminiClient {
	timeout := cfg.AI.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GeminiClient{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg.AI,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GenerateContent envia o prompt ao modelo configurado e devolve o texto gerado.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar prompt: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model, url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na requisição à IA: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta da IA: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("resposta da IA inválida (status %d): %w", resp.StatusCode, err)
	}

	if out.Error != nil {
		return "", fmt.Errorf("erro da IA %d %s: %s", out.Error.Code, out.Error.Status, out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("erro da IA: status %s", resp.Status)
	}

	var sb strings.Builder
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}

	logrus.WithFields(logrus.Fields{
		"model": c.cfg.Model,
		"chars": sb.Len(),
	}).Debug("gemini: content generated")

	return sb.String(), nil
}
