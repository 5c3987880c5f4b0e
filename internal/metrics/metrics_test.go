package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordVote(t *testing.T) {
	before := testutil.ToFloat64(VoteTransitionsTotal.WithLabelValues("none", "like"))

	RecordVote("", "like")
	RecordVote("", "like")

	after := testutil.ToFloat64(VoteTransitionsTotal.WithLabelValues("none", "like"))
	if after-before != 2 {
		t.Errorf("expected 2 new none->like transitions, got %v", after-before)
	}
}

func TestRecordCache(t *testing.T) {
	hits := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("movie", "hit"))
	misses := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("movie", "miss"))

	RecordCache("movie", true)
	RecordCache("movie", false)
	RecordCache("movie", false)

	if got := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("movie", "hit")) - hits; got != 1 {
		t.Errorf("hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("movie", "miss")) - misses; got != 2 {
		t.Errorf("misses = %v, want 2", got)
	}
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/test", "200"))
	RecordRequest("/test", "200", 20*time.Millisecond)
	if got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/test", "200")) - before; got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}
}
