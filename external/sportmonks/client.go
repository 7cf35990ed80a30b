package sportmonks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/resilience"
	"github.com/riskibarqy/sportmonks-middleware/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL  = "https://api.sportmonks.com/v3/football"
	defaultTimeout  = 10 * time.Second
	defaultPerPage  = 50
	maxResponseSize = 6 << 20
)

var apiTokenParamRegex = regexp.MustCompile(`api_token=[^&\s"']+`)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
	// MaxPages caps how many pages a list fetch follows. 1 keeps every
	// logical fetch to a single GET.
	MaxPages       int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the SportMonks football API. It never retries: a failed
// attempt is returned to the caller as a *RequestError.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxPages   int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

var _ usecase.SportsDataProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	maxPages := cfg.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("sportmonks circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		maxPages:   maxPages,
		logger:     logger,
		breaker:    breaker,
	}
}

// getData fetches one document and returns its data member.
func (c *Client) getData(ctx context.Context, path string, query map[string]string) (any, error) {
	var envelope Envelope
	if err := c.doJSON(ctx, path, query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// getList fetches a paginated collection, following has_more up to
// maxPages, and concatenates the pages.
func (c *Client) getList(ctx context.Context, path string, query map[string]string) (any, error) {
	params := make(map[string]string, len(query)+2)
	for key, value := range query {
		params[key] = value
	}
	params["per_page"] = strconv.Itoa(defaultPerPage)

	var items []any
	for page := 1; page <= c.maxPages; page++ {
		if page > 1 {
			params["page"] = strconv.Itoa(page)
		}

		var envelope Envelope
		if err := c.doJSON(ctx, path, params, &envelope); err != nil {
			return nil, err
		}

		pageItems, ok := envelope.Data.([]any)
		if !ok {
			if page == 1 {
				return envelope.Data, nil
			}
			break
		}
		items = append(items, pageItems...)

		if envelope.Pagination == nil || !envelope.Pagination.HasMore {
			break
		}
	}

	if items == nil {
		items = []any{}
	}
	return items, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("api_token", c.token)
	fullURL := c.baseURL + path + "?" + values.Encode()

	err := c.breaker.Execute(func() error {
		raw, err := c.executeRequest(ctx, path, fullURL)
		if err != nil {
			return err
		}
		if err := sonic.Unmarshal(raw, target); err != nil {
			return &RequestError{Kind: KindDecode, Path: path, Err: fmt.Errorf("decode provider payload: %w", err)}
		}
		return nil
	}, isCircuitFailure)
	if err == nil {
		return nil
	}

	if errors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "sportmonks circuit breaker rejected request", "path", path)
		err = &RequestError{Kind: KindCircuitOpen, Path: path, Err: err}
	} else {
		c.logger.WarnContext(ctx, "sportmonks request failed", "url", redactAPIURL(fullURL), "error", err)
	}
	return crerr.Mark(err, usecase.ErrUpstream)
}

// executeRequest performs exactly one GET.
func (c *Client) executeRequest(ctx context.Context, path, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &RequestError{Kind: KindTransport, Path: path, Err: fmt.Errorf("build request: %s", sanitizeSensitiveText(err.Error(), c.token))}
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := KindTransport
		if isTimeout(err) {
			kind = KindTimeout
		}
		return nil, &RequestError{Kind: kind, Path: path, Err: errors.New(sanitizeSensitiveText(err.Error(), c.token))}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		kind := KindTransport
		if isTimeout(err) {
			kind = KindTimeout
		}
		return nil, &RequestError{Kind: kind, Path: path, Err: fmt.Errorf("read response body: %s", sanitizeSensitiveText(err.Error(), c.token))}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			Kind:       KindStatus,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       sanitizeSensitiveText(abbreviateBody(raw), c.token),
		}
	}
	return raw, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isCircuitFailure counts provider-side trouble against the breaker; client
// errors such as 404 or a caller cancelling do not.
func isCircuitFailure(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return true
	}
	switch reqErr.Kind {
	case KindTimeout, KindTransport:
		return !errors.Is(reqErr.Err, context.Canceled)
	case KindStatus:
		return reqErr.StatusCode == http.StatusTooManyRequests || reqErr.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return apiTokenParamRegex.ReplaceAllString(value, "api_token=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return apiTokenParamRegex.ReplaceAllString(rawURL, "api_token=REDACTED")
	}
	query := parsed.Query()
	if query.Has("api_token") {
		query.Set("api_token", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
