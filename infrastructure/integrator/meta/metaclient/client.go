package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	metadomain "github.com/bsocial/adhub-api/infrastructure/integrator/meta/domain"
	"github.com/bsocial/adhub-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMissingToken = errors.New("token de acesso do Meta não informado")

// ListOptions controla a paginação das listagens.
// After retoma a partir de um cursor e Max limita o total de registros.
type ListOptions struct {
	After string
	Max   int
}

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks
type Client interface {
	GetAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error)
	GetAdAccount(ctx context.Context, token, accountID string) (*metadomain.AdAccount, error)
	GetInsights(ctx context.Context, token, objectID string, params url.Values, max int) ([]metadomain.Insight, error)
	ListCampaigns(ctx context.Context, token, accountID string, params url.Values, opts ListOptions) ([]metadomain.Campaign, string, error)
	ListAdSets(ctx context.Context, token, accountID string, params url.Values, opts ListOptions) ([]metadomain.AdSet, string, error)
	ListAds(ctx context.Context, token, accountID string, params url.Values, opts ListOptions) ([]metadomain.Ad, string, error)
	GetCreatives(ctx context.Context, token string, ids []string) (map[string]metadomain.AdCreative, error)
	UpdateObject(ctx context.Context, token, objectID string, values url.Values) error
	DeleteObject(ctx context.Context, token, objectID string) error
	CopyObject(ctx context.Context, token, objectID string, values url.Values) (string, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(cfg *config.Config) *MetaClient {
	limit := rate.Inf
	if cfg.Meta.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Meta.RequestsPerSecond)
	}

	burst := cfg.Meta.RequestBurst
	if burst <= 0 {
		burst = 1
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "meta-graph-api",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     cfg.Meta.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// Erros de permissão ou parâmetro são da requisição, não da plataforma
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var apiErr *metadomain.APIError
			return errors.As(err, &apiErr) && apiErr.IsClientError()
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("metaclient: circuit breaker mudou de estado")
		},
	})

	return &MetaClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Meta.RequestTimeout},
		limiter:    rate.NewLimiter(limit, burst),
		breaker:    breaker,
	}
}

func (c *MetaClient) endpoint(path string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.Cfg.Meta.URL, "/"), strings.TrimLeft(path, "/"))
}

func (c *MetaClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, rawURL, nil)
}

func (c *MetaClient) do(ctx context.Context, method, rawURL string, form url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("metaclient: aguardando limite de requisições: %w", err)
	}

	return c.breaker.Execute(func() ([]byte, error) {
		var body io.Reader
		if form != nil {
			body = strings.NewReader(form.Encode())
		}

		req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar a requisição")
			return nil, err
		}
		if form != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"method": method,
				"path":   req.URL.Path,
				"error":  err.Error(),
			}).Error("Erro ao fazer a requisição")
			return nil, err
		}
		defer resp.Body.Close()

		return c.HandleResponse(resp)
	})
}

// HandleResponse lê o corpo e converte o envelope {"error": ...} em *APIError,
// mesmo quando a plataforma responde com status 200.
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	var errorResp metadomain.ErrorResponse
	if parseErr := json.Unmarshal(body, &errorResp); parseErr == nil && errorResp.Error != nil {
		apiErr := &metadomain.APIError{StatusCode: resp.StatusCode, Details: *errorResp.Error}
		if apiErr.IsTokenExpired() {
			logrus.WithFields(logrus.Fields{
				"code":     apiErr.Details.Code,
				"subcode":  apiErr.Details.ErrorSubcode,
				"trace_id": apiErr.Details.FBTraceID,
			}).Warn("metaclient: token expirado ou inválido")
		}
		return nil, apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &metadomain.APIError{
			StatusCode: resp.StatusCode,
			Details:    metadomain.ErrorDetails{Message: fmt.Sprintf("erro na resposta da API: %s", strings.TrimSpace(string(body)))},
		}
	}

	return body, nil
}

func withToken(params url.Values, token string) url.Values {
	out := url.Values{}
	for k, v := range params {
		out[k] = append([]string(nil), v...)
	}
	out.Set("access_token", token)
	return out
}

// fetchAll segue paging.next até esgotar as páginas ou atingir max registros.
// Cada requisição pede no máximo os registros que faltam para max; o cursor
// devolvido retoma exatamente do primeiro registro não entregue.
func fetchAll[T any](ctx context.Context, c *MetaClient, path, token string, params url.Values, opts ListOptions) ([]T, string, error) {
	if token == "" {
		return nil, "", ErrMissingToken
	}

	query := withToken(params, token)
	if opts.After != "" {
		query.Set("after", opts.After)
	}

	next := c.endpoint(path) + "?" + query.Encode()
	items := make([]T, 0)
	after := opts.After

	for next != "" {
		if opts.Max > 0 {
			next = clampLimit(next, opts.Max-len(items))
		}

		body, err := c.get(ctx, next)
		if err != nil {
			return nil, "", err
		}

		var page metadomain.ListResponse[T]
		if err := json.Unmarshal(body, &page); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, "", err
		}

		if opts.Max > 0 && len(items)+len(page.Data) > opts.Max {
			// A Graph API ignorou o limit. Os cursores só apontam para bordas de
			// página, então a página inteira fica para a próxima chamada.
			if len(items) > 0 {
				return items, after, nil
			}

			logrus.WithFields(logrus.Fields{
				"path":  path,
				"limit": opts.Max,
				"total": len(page.Data),
			}).Warn("metaclient: listagem truncada no limite de registros")
			return page.Data[:opts.Max], "", nil
		}

		items = append(items, page.Data...)
		next = page.Paging.Next
		after = page.Paging.Cursors.After

		if opts.Max > 0 && len(items) == opts.Max {
			if next == "" {
				return items, "", nil
			}
			return items, after, nil
		}
	}

	return items, "", nil
}

// clampLimit reduz o parâmetro limit da URL para no máximo remaining.
func clampLimit(rawURL string, remaining int) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	if current, err := strconv.Atoi(q.Get("limit")); err == nil && current > 0 && current <= remaining {
		return rawURL
	}

	q.Set("limit", strconv.Itoa(remaining))
	u.RawQuery = q.Encode()
	return u.String()
}
