package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "cinemadia/api/cinemadia/v1"
	"cinemadia/internal/biz"
	"cinemadia/internal/conf"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
)

type headerCarrier http.Header

func (h headerCarrier) Get(key string) string      { return http.Header(h).Get(key) }
func (h headerCarrier) Set(key, value string)      { http.Header(h).Set(key, value) }
func (h headerCarrier) Add(key, value string)      { http.Header(h).Add(key, value) }
func (h headerCarrier) Values(key string) []string { return http.Header(h).Values(key) }
func (h headerCarrier) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}

type fakeTransport struct {
	operation string
	request   headerCarrier
	reply     headerCarrier
}

func newFakeTransport(operation string) *fakeTransport {
	return &fakeTransport{operation: operation, request: headerCarrier{}, reply: headerCarrier{}}
}

func (t *fakeTransport) Kind() transport.Kind            { return transport.KindHTTP }
func (t *fakeTransport) Endpoint() string                { return "" }
func (t *fakeTransport) Operation() string               { return t.operation }
func (t *fakeTransport) RequestHeader() transport.Header { return t.request }
func (t *fakeTransport) ReplyHeader() transport.Header   { return t.reply }

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		req    interface{}
		fields map[string]string
	}{
		{
			name: "valid registration",
			req: &v1.RegisterRequest{
				Username: "alice", Email: "alice@example.com",
				Password1: "s3cretpass", Password2: "s3cretpass",
			},
		},
		{
			name: "registration problems",
			req: &v1.RegisterRequest{
				Username: "bad name", Email: "nope",
				Password1: "short", Password2: "other",
			},
			fields: map[string]string{
				"username":  "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.",
				"email":     "Enter a valid email address.",
				"password1": "Ensure this value has at least 8 characters.",
				"password2": "The two password fields didn't match.",
			},
		},
		{
			name:   "missing login fields",
			req:    &v1.LoginRequest{},
			fields: map[string]string{"username": "This field is required.", "password": "This field is required."},
		},
		{
			name:   "rating out of range",
			req:    &v1.AddReviewRequest{Rating: 11, Comment: "great"},
			fields: map[string]string{"rating": "Ensure this value is less than or equal to 10."},
		},
		{
			name:   "empty review",
			req:    &v1.AddReviewRequest{},
			fields: map[string]string{"rating": "This field is required.", "comment": "This field is required."},
		},
		{
			name:   "bad birth date",
			req:    &v1.UpdateProfileRequest{BirthDate: "31/12/1990"},
			fields: map[string]string{"birth_date": "Enter a valid date."},
		},
		{
			name:   "progress above 100",
			req:    &v1.RecordWatchRequest{Progress: 101},
			fields: map[string]string{"progress": "Ensure this value is less than or equal to 100."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.fields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !v1.IsValidationFailed(err) {
				t.Fatalf("err = %v, want VALIDATION_FAILED", err)
			}
			md := errors.FromError(err).Metadata
			for field, want := range tt.fields {
				if md[field] != want {
					t.Errorf("fields[%q] = %q, want %q", field, md[field], want)
				}
			}
			if len(md) != len(tt.fields) {
				t.Errorf("got %d fields %v, want %d", len(md), md, len(tt.fields))
			}
		})
	}
}

func TestVoteToReply(t *testing.T) {
	if got := voteToReply(biz.VoteNone); got != nil {
		t.Errorf("voteToReply(none) = %q, want nil", *got)
	}
	if got := voteToReply(biz.VoteDislike); got == nil || *got != "dislike" {
		t.Errorf("voteToReply(dislike) = %v", got)
	}
}

func TestMovieToReply(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	m := &biz.Movie{
		ID:            "m1",
		Title:         "Dune",
		Category:      biz.CategoryFantastika,
		PosterURL:     "https://img.example/dune.jpg",
		PosterFile:    "/media/posters/dune.jpg",
		LikesCount:    3,
		DislikesCount: 1,
		CreatedAt:     created,
	}
	got := movieToReply(m)
	if got.Poster != "/media/posters/dune.jpg" {
		t.Errorf("Poster = %q, want the uploaded file", got.Poster)
	}
	if got.CreatedAt != "2024-03-01T11:00:00Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
	if got.UpdatedAt != "" {
		t.Errorf("UpdatedAt = %q, want empty for zero time", got.UpdatedAt)
	}
	if diff := got.PopularityScore - 75.4; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("PopularityScore = %v, want 75.4", got.PopularityScore)
	}
	if movieToReply(nil) != nil {
		t.Error("movieToReply(nil) should be nil")
	}
}

func TestPageToReply(t *testing.T) {
	p := pageToReply(biz.NewPage(25, 2))
	if p.Number != 2 || p.NumPages != 3 || p.Total != 25 {
		t.Errorf("page = %+v", p)
	}
	if !p.HasNext || !p.HasPrevious {
		t.Errorf("page = %+v, want both neighbours", p)
	}
}

func TestProfileToReplyFormatsBirthDate(t *testing.T) {
	d := time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC)
	got := profileToReply(&biz.Profile{Bio: "hi", BirthDate: &d})
	if got.BirthDate != "1990-12-31" {
		t.Errorf("BirthDate = %q", got.BirthDate)
	}
	if got := profileToReply(&biz.Profile{}); got.BirthDate != "" {
		t.Errorf("BirthDate = %q, want empty", got.BirthDate)
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	svc := NewAccountService(&conf.Auth{CookieName: "sid", CookieSecure: true}, nil, log.DefaultLogger)
	tr := newFakeTransport(v1.OperationAccountLogout)
	ctx := transport.NewServerContext(context.Background(), tr)

	reply, err := svc.Logout(ctx, &v1.LogoutRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Redirect != "/" {
		t.Errorf("Redirect = %q", reply.Redirect)
	}
	cookie := tr.reply.Get("Set-Cookie")
	for _, want := range []string{"sid=", "Max-Age=0", "HttpOnly", "Secure", "Path=/"} {
		if !strings.Contains(cookie, want) {
			t.Errorf("Set-Cookie %q missing %q", cookie, want)
		}
	}
}

func TestSetSessionCookie(t *testing.T) {
	svc := NewAccountService(nil, nil, log.DefaultLogger)
	if svc.CookieName() != DefaultCookieName {
		t.Fatalf("CookieName = %q", svc.CookieName())
	}
	tr := newFakeTransport(v1.OperationAccountLogin)
	ctx := transport.NewServerContext(context.Background(), tr)

	svc.setSessionCookie(ctx, "abc123", time.Hour)

	cookie := tr.reply.Get("Set-Cookie")
	for _, want := range []string{"sessionid=abc123", "Max-Age=3600", "HttpOnly", "SameSite=Lax"} {
		if !strings.Contains(cookie, want) {
			t.Errorf("Set-Cookie %q missing %q", cookie, want)
		}
	}
	if strings.Contains(cookie, "Secure") {
		t.Errorf("Set-Cookie %q should not be Secure by default", cookie)
	}
}

func TestListCategories(t *testing.T) {
	svc := NewCatalogService(&conf.Site{Name: "Test"}, nil)
	reply, err := svc.ListCategories(context.Background(), &v1.ListCategoriesRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reply.Items) != len(biz.Categories()) {
		t.Fatalf("got %d categories, want %d", len(reply.Items), len(biz.Categories()))
	}
	for _, c := range reply.Items {
		if c.Value == "" || c.Label == "" {
			t.Errorf("incomplete category %+v", c)
		}
	}
}

func TestAddReviewRequiresViewer(t *testing.T) {
	svc := NewActivityService(nil, nil, nil)
	_, err := svc.AddReview(context.Background(), &v1.AddReviewRequest{MovieId: "m1", Rating: 7, Comment: "ok"})
	if !v1.IsAuthenticationRequired(err) {
		t.Fatalf("err = %v, want AUTHENTICATION_REQUIRED", err)
	}
}
