package conf

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		err  bool
	}{
		{in: `"1.5s"`, want: 1500 * time.Millisecond},
		{in: `"15m"`, want: 15 * time.Minute},
		{in: `2`, want: 2 * time.Second},
		{in: `"soon"`, err: true},
		{in: `true`, err: true},
	}

	for _, tt := range tests {
		var d Duration
		err := json.Unmarshal([]byte(tt.in), &d)
		if tt.err {
			if err == nil {
				t.Errorf("%s: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.in, err)
			continue
		}
		if d.AsDuration() != tt.want {
			t.Errorf("%s: got %v, want %v", tt.in, d.AsDuration(), tt.want)
		}
	}
}

func TestBootstrapScan(t *testing.T) {
	raw := `{
		"server": {"http": {"addr": "0.0.0.0:8000", "timeout": "1s"}},
		"auth": {"session_ttl": "336h", "cookie_name": "sessionid"},
		"media": {"root": "./media", "url_prefix": "/media/", "max_upload_bytes": 1024}
	}`

	var bc Bootstrap
	if err := json.Unmarshal([]byte(raw), &bc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if bc.Server.Http.Timeout.AsDuration() != time.Second {
		t.Errorf("http timeout = %v", bc.Server.Http.Timeout.AsDuration())
	}
	if bc.Auth.SessionTtl.AsDuration() != 336*time.Hour {
		t.Errorf("session ttl = %v", bc.Auth.SessionTtl.AsDuration())
	}
	if bc.Server.Grpc != nil {
		t.Error("expected nil grpc section")
	}
	var missing *Duration
	if missing.AsDuration() != 0 {
		t.Error("nil duration should be zero")
	}
}
