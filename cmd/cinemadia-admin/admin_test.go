package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cinemadia/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestFixBooleans(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"'is_featured': true,", "'is_featured': True,"},
		{"'is_featured': FALSE,", "'is_featured': False,"},
		{"x = tRuE and false", "x = True and False"},
		{"untrue falsehood trueish", "untrue falsehood trueish"},
		{"is_true = 1", "is_true = 1"},
		{"already True", "already True"},
	}
	for _, tt := range tests {
		if got := string(fixBooleans([]byte(tt.in))); got != tt.want {
			t.Errorf("fixBooleans(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFixBooleanFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.py")
	if err := os.WriteFile(path, []byte("featured = true\nhidden = false\n"), 0o640); err != nil {
		t.Fatal(err)
	}

	err := fixBooleanFiles([]string{path, filepath.Join(dir, "missing.py")}, log.NewHelper(log.DefaultLogger))
	if err == nil {
		t.Fatal("expected an error for the missing file")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "featured = True\nhidden = False\n" {
		t.Errorf("content = %q", got)
	}
	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0o640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}
}

func TestSampleMovies(t *testing.T) {
	movies := sampleMovies()
	if len(movies) != 11 {
		t.Fatalf("got %d sample movies, want 11", len(movies))
	}
	titles := map[string]bool{}
	featured := 0
	for _, m := range movies {
		if titles[m.Title] {
			t.Errorf("duplicate title %q", m.Title)
		}
		titles[m.Title] = true
		if !m.Category.Valid() {
			t.Errorf("%q has invalid category %q", m.Title, m.Category)
		}
		if m.Rating < 0 || m.Rating > 10 {
			t.Errorf("%q has rating %v", m.Title, m.Rating)
		}
		if m.IsFeatured {
			featured++
		}
	}
	if featured != 1 {
		t.Errorf("featured = %d, want 1", featured)
	}
}

type fakeEnsurer struct {
	byTitle map[string]*biz.Movie
	fail    map[string]bool
}

func (f *fakeEnsurer) EnsureMovie(_ context.Context, req *biz.CreateMovieRequest) (*biz.Movie, bool, error) {
	if f.fail[req.Title] {
		return nil, false, fmt.Errorf("catalog unavailable")
	}
	if m, ok := f.byTitle[req.Title]; ok {
		return m, false, nil
	}
	m := &biz.Movie{Title: req.Title, Slug: biz.Slugify(req.Title)}
	f.byTitle[req.Title] = m
	return m, true, nil
}

func TestSeedMoviesIsIdempotent(t *testing.T) {
	f := &fakeEnsurer{byTitle: map[string]*biz.Movie{}}
	helper := log.NewHelper(log.DefaultLogger)

	created, err := seedMovies(context.Background(), f, helper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 11 {
		t.Errorf("first seed created %d, want 11", created)
	}
	created, err = seedMovies(context.Background(), f, helper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 0 {
		t.Errorf("second seed created %d, want 0", created)
	}
}

func TestImportTitlesSkipsFailures(t *testing.T) {
	f := &fakeEnsurer{
		byTitle: map[string]*biz.Movie{"Dangal": {Title: "Dangal"}},
		fail:    map[string]bool{"Broken": true},
	}
	created := importTitles(context.Background(), f, []string{"Dune", "Broken", "Dangal", "Past Lives"}, log.NewHelper(log.DefaultLogger))
	if created != 2 {
		t.Errorf("created = %d, want 2", created)
	}
	if _, ok := f.byTitle["Past Lives"]; !ok {
		t.Error("titles after a failure should still be imported")
	}
}

func TestHealthcheck(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	if err := healthcheck(context.Background(), lis.Addr().String(), 2*time.Second); err != nil {
		t.Fatalf("healthcheck: %v", err)
	}

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	if err := healthcheck(context.Background(), lis.Addr().String(), 2*time.Second); err == nil {
		t.Fatal("expected an error for NOT_SERVING")
	}

	if err := healthcheck(context.Background(), "", time.Second); err == nil {
		t.Fatal("expected an error without an address")
	}
}
