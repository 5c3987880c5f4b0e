package server

import (
	"net/http"
	"strings"

	v1 "cinemadia/api/cinemadia/v1"
	"cinemadia/internal/conf"
	"cinemadia/internal/service"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/middleware/selector"
	"github.com/go-kratos/kratos/v2/middleware/tracing"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// locator is implemented by replies that point the client at another resource.
type locator interface {
	Location() string
}

// responseEncoder adds a Location header for replies that carry a redirect
func responseEncoder(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if l, ok := v.(locator); ok && l.Location() != "" {
		w.Header().Set("Location", l.Location())
	}
	return khttp.DefaultResponseEncoder(w, r, v)
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error  string            `json:"error"`
	Reason string            `json:"reason,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// errorEncoder renders kratos errors as {"error", "reason", "fields"}
func errorEncoder(w http.ResponseWriter, r *http.Request, err error) {
	se := errors.FromError(err)
	codec, _ := khttp.CodecForRequest(r, "Accept")
	body, mErr := codec.Marshal(&errorBody{
		Error:  se.Message,
		Reason: se.Reason,
		Fields: se.Metadata,
	})
	if mErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/"+codec.Name())
	w.WriteHeader(int(se.Code))
	_, _ = w.Write(body)
}

// NewHTTPServer new an HTTP server.
func NewHTTPServer(
	c *conf.Server,
	auth *conf.Auth,
	media *conf.Media,
	authenticator Authenticator,
	catalog *service.CatalogService,
	account *service.AccountService,
	activity *service.ActivityService,
	logger log.Logger,
) *khttp.Server {
	cookieName := service.DefaultCookieName
	if auth != nil && auth.CookieName != "" {
		cookieName = auth.CookieName
	}
	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			tracing.Server(),
			logging.Server(logger),
			ratelimit.Server(),
			MetricsMiddleware(),
			SessionMiddleware(authenticator, cookieName),
			selector.Server(RequireUser()).Match(isProtected).Build(),
		),
		khttp.ResponseEncoder(responseEncoder),
		khttp.ErrorEncoder(errorEncoder),
	}
	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, khttp.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, khttp.Address(c.Http.Addr))
		}
		if c.Http.Timeout != nil {
			opts = append(opts, khttp.Timeout(c.Http.Timeout.AsDuration()))
		}
	}
	srv := khttp.NewServer(opts...)
	v1.RegisterCatalogHTTPServer(srv, catalog)
	v1.RegisterAccountHTTPServer(srv, account)
	v1.RegisterActivityHTTPServer(srv, activity)

	srv.Handle("/metrics", promhttp.Handler())
	if media != nil && media.Root != "" {
		prefix := media.UrlPrefix
		if prefix == "" {
			prefix = "/media/"
		}
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		srv.HandlePrefix(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(media.Root))))
	}
	return srv
}
