package sportmonks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/sportmonks-middleware/internal/platform/resilience"
	"github.com/riskibarqy/sportmonks-middleware/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Token:      "secret-token",
		MaxPages:   1,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewClient(cfg)
}

func TestClient_FetchStandings_SendsTokenAndIncludes(t *testing.T) {
	t.Parallel()

	var gotPath, gotToken, gotInclude string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("api_token")
		gotInclude = r.URL.Query().Get("include")
		_, _ = w.Write([]byte(`{"data":[{"position":1}]}`))
	}, nil)

	data, err := client.FetchStandings(context.Background(), 8, 0)
	if err != nil {
		t.Fatalf("fetch standings: %v", err)
	}
	if gotPath != "/standings/live/leagues/8" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotToken != "secret-token" {
		t.Fatalf("expected api_token query param, got %q", gotToken)
	}
	if gotInclude != includeStandings {
		t.Fatalf("unexpected include %q", gotInclude)
	}
	rows, ok := data.([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("unexpected data %#v", data)
	}

	if _, err := client.FetchStandings(context.Background(), 8, 23614); err != nil {
		t.Fatalf("fetch season standings: %v", err)
	}
	if gotPath != "/standings/seasons/23614" {
		t.Fatalf("unexpected season path %q", gotPath)
	}
}

func TestClient_FetchFixturesByLeague_BuildsBetweenFilter(t *testing.T) {
	t.Parallel()

	var gotPath, gotFilters, gotPerPage string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFilters = r.URL.Query().Get("filters")
		gotPerPage = r.URL.Query().Get("per_page")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}, nil)

	from := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	data, err := client.FetchFixturesByLeague(context.Background(), 8, 23614, from, from.AddDate(0, 0, 90))
	if err != nil {
		t.Fatalf("fetch fixtures: %v", err)
	}
	if gotPath != "/fixtures/between/2026-10-18/2027-01-16" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotFilters != "fixtureLeagues:8;fixtureSeasons:23614" {
		t.Fatalf("unexpected filters %q", gotFilters)
	}
	if gotPerPage != "50" {
		t.Fatalf("unexpected per_page %q", gotPerPage)
	}
	if rows, ok := data.([]any); !ok || len(rows) != 0 {
		t.Fatalf("expected empty list, got %#v", data)
	}
}

func TestClient_SingleRequestByDefaultEvenWithMorePages(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"data":[{"id":1}],"pagination":{"has_more":true}}`))
	}, nil)

	if _, err := client.FetchLivescores(context.Background()); err != nil {
		t.Fatalf("fetch livescores: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single GET, got %d", got)
	}
}

func TestClient_FollowsPagesUpToMaxPages(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if r.URL.Query().Get("page") == "" && n != 1 {
			t.Errorf("expected page param on follow-up request")
		}
		if n == 2 {
			_, _ = w.Write([]byte(`{"data":[{"id":2}],"pagination":{"has_more":false}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"id":1}],"pagination":{"has_more":true}}`))
	}, func(cfg *ClientConfig) { cfg.MaxPages = 5 })

	data, err := client.FetchFixturesByDate(context.Background(), "2026-10-18")
	if err != nil {
		t.Fatalf("fetch fixtures by date: %v", err)
	}
	if rows := data.([]any); len(rows) != 2 {
		t.Fatalf("expected 2 merged rows, got %d", len(rows))
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 requests, got %d", got)
	}
}

func TestClient_StatusErrorIsUpstreamAndRedacted(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream broke for api_token=secret-token`))
	}, nil)

	_, err := client.FetchTeam(context.Background(), 53)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !usecase.IsUpstream(err) {
		t.Fatalf("expected upstream marker, got %v", err)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if reqErr.Kind != KindStatus || reqErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected request error %+v", reqErr)
	}
	if strings.Contains(err.Error(), "secret-token") {
		t.Fatalf("token leaked in error: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected no retry, got %d calls", got)
	}
}

func TestClient_TimeoutIsUpstreamTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, func(cfg *ClientConfig) {
		cfg.HTTPClient = &http.Client{Timeout: 50 * time.Millisecond}
	})
	defer close(release)

	_, err := client.FetchMatch(context.Background(), 1)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.Kind != KindTimeout {
		t.Fatalf("expected timeout request error, got %v", err)
	}
	if !usecase.IsUpstream(err) {
		t.Fatalf("expected upstream marker on timeout")
	}
}

func TestClient_MalformedBodyIsDecodeError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	}, nil)

	_, err := client.FetchSchedulesBySeason(context.Background(), 23614)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.Kind != KindDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestClient_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchLivescores(context.Background()); err == nil {
			t.Fatalf("expected failure %d", i)
		}
	}

	_, err := client.FetchLivescores(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.Kind != KindCircuitOpen {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if !usecase.IsUpstream(err) {
		t.Fatalf("expected upstream marker on circuit open")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected breaker to short-circuit the third call, got %d calls", got)
	}
}

func TestClient_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}
	})

	for i := 0; i < 3; i++ {
		_, _ = client.FetchTeam(context.Background(), 404)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected every 404 to reach the provider, got %d calls", got)
	}
}

func TestRedactAPIURL(t *testing.T) {
	t.Parallel()

	got := redactAPIURL("https://api.sportmonks.com/v3/football/teams/1?api_token=abc&include=country")
	if strings.Contains(got, "abc") || !strings.Contains(got, "api_token=REDACTED") {
		t.Fatalf("unexpected redacted url %q", got)
	}
}
