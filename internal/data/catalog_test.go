package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cinemadia/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
)

func newTestCatalog(t *testing.T, handler http.HandlerFunc, retries int32) *catalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewCatalogClient(&conf.Catalog{
		Url:        srv.URL,
		ApiKey:     "secret",
		Timeout:    &conf.Duration{Duration: time.Second},
		MaxRetries: retries,
	}, log.DefaultLogger)
	client, ok := c.(*catalogClient)
	if !ok {
		t.Fatalf("NewCatalogClient returned %T", c)
	}
	return client
}

func TestCatalogLookup(t *testing.T) {
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if got := r.URL.Query().Get("title"); got != "Spider-Man: Across & Beyond" {
			t.Errorf("title query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Spider-Man","year":2023,"director":"Joaquim Dos Santos","category":"multfilm"}`))
	}, 0)

	entry, err := client.Lookup(context.Background(), "Spider-Man: Across & Beyond")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Year != 2023 || entry.Director != "Joaquim Dos Santos" || entry.Category != "multfilm" {
		t.Errorf("entry = %+v", entry)
	}
}

func TestCatalogNotFoundIsNotAnError(t *testing.T) {
	var calls int32
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}, 3)

	entry, err := client.Lookup(context.Background(), "Unknown")
	if err != nil || entry != nil {
		t.Fatalf("got %+v, %v; want nil, nil", entry, err)
	}
	if calls != 1 {
		t.Errorf("404 retried: %d calls", calls)
	}
}

func TestCatalogRetriesThenSucceeds(t *testing.T) {
	var calls int32
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"title":"Heat","year":1995}`))
	}, 2)

	entry, err := client.Lookup(context.Background(), "Heat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Year != 1995 || calls != 3 {
		t.Errorf("entry = %+v after %d calls", entry, calls)
	}
}

func TestCatalogBreakerOpens(t *testing.T) {
	var calls int32
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}, 0)

	for i := 0; i < 5; i++ {
		if _, err := client.Lookup(context.Background(), "Heat"); err == nil {
			t.Fatal("expected failure")
		}
	}
	if _, err := client.Lookup(context.Background(), "Heat"); err == nil {
		t.Fatal("expected rejection")
	}
	if calls != 5 {
		t.Errorf("open breaker still called the server: %d calls", calls)
	}
}

func TestNoopCatalog(t *testing.T) {
	c := NewCatalogClient(&conf.Catalog{}, log.DefaultLogger)
	entry, err := c.Lookup(context.Background(), "anything")
	if entry != nil || err != nil {
		t.Errorf("got %+v, %v", entry, err)
	}
}
