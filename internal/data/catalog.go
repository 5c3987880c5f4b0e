package data

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinemadia/internal/biz"
	"cinemadia/internal/conf"
	"cinemadia/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

var errCatalogNotFound = errors.New("not found")

type catalogClient struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	cb         *gobreaker.CircuitBreaker[*biz.CatalogEntry]
	log        *log.Helper
}

// NewCatalogClient creates a client for the external movie catalog. Without
// a configured URL every lookup returns no entry.
func NewCatalogClient(c *conf.Catalog, logger log.Logger) biz.CatalogClient {
	l := log.NewHelper(logger)
	if c == nil || c.Url == "" {
		return noopCatalog{}
	}

	timeout := c.Timeout.AsDuration()
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[*biz.CatalogEntry](gobreaker.Settings{
		Name:        "catalog-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCatalogNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf("circuit breaker %s: %s -> %s", name, from, to)
			metrics.CatalogBreakerState.Set(float64(to))
		},
	})

	return &catalogClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:    strings.TrimRight(c.Url, "/"),
		apiKey:     c.ApiKey,
		maxRetries: int(c.MaxRetries),
		cb:         cb,
		log:        l,
	}
}

func (c *catalogClient) Lookup(ctx context.Context, title string) (*biz.CatalogEntry, error) {
	entry, err := c.cb.Execute(func() (*biz.CatalogEntry, error) {
		return c.lookupWithRetry(ctx, title)
	})
	switch {
	case err == nil:
		metrics.CatalogRequestsTotal.WithLabelValues("success").Inc()
		return entry, nil
	case errors.Is(err, errCatalogNotFound):
		metrics.CatalogRequestsTotal.WithLabelValues("success").Inc()
		return nil, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CatalogRequestsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	default:
		metrics.CatalogRequestsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
}

func (c *catalogClient) lookupWithRetry(ctx context.Context, title string) (*biz.CatalogEntry, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 100 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			c.log.Infof("retrying catalog request for '%s', attempt %d/%d", title, attempt, c.maxRetries)
		}

		entry, err := c.doRequest(ctx, title)
		if err == nil {
			return entry, nil
		}
		lastErr = err

		// Don't retry on 404
		if errors.Is(err, errCatalogNotFound) {
			return nil, err
		}
	}

	c.log.Warnf("catalog request failed after %d attempts: %v", c.maxRetries+1, lastErr)
	return nil, lastErr
}

func (c *catalogClient) doRequest(ctx context.Context, title string) (*biz.CatalogEntry, error) {
	endpoint := fmt.Sprintf("%s/movies?title=%s", c.baseURL, url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errCatalogNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Year        int    `json:"year"`
		Genre       string `json:"genre"`
		Category    string `json:"category"`
		Director    string `json:"director"`
		Actors      string `json:"actors"`
		Duration    string `json:"duration"`
		PosterURL   string `json:"poster_url"`
		TrailerURL  string `json:"trailer_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &biz.CatalogEntry{
		Title:       response.Title,
		Description: response.Description,
		Year:        response.Year,
		Genre:       response.Genre,
		Category:    response.Category,
		Director:    response.Director,
		Actors:      response.Actors,
		Duration:    response.Duration,
		PosterURL:   response.PosterURL,
		TrailerURL:  response.TrailerURL,
	}, nil
}

type noopCatalog struct{}

func (noopCatalog) Lookup(context.Context, string) (*biz.CatalogEntry, error) {
	return nil, nil
}
