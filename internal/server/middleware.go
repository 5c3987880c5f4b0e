package server

import (
	"context"
	"strconv"
	"strings"
	"time"

	v1 "cinemadia/api/cinemadia/v1"
	"cinemadia/internal/biz"
	"cinemadia/internal/metrics"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// Authenticator resolves a session token to the user it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*biz.Viewer, error)
}

// protectedOperations need a signed-in caller.
var protectedOperations = map[string]bool{
	v1.OperationAccountGetProfile:        true,
	v1.OperationAccountUpdateProfile:     true,
	v1.OperationAccountUploadAvatar:      true,
	v1.OperationActivityToggleFavorite:   true,
	v1.OperationActivityToggleWatchlist:  true,
	v1.OperationActivityVoteMovie:        true,
	v1.OperationActivityGetReviewForm:    true,
	v1.OperationActivityAddReview:        true,
	v1.OperationActivityToggleReviewLike: true,
	v1.OperationActivityRecordWatch:      true,
	v1.OperationActivityListFavorites:    true,
	v1.OperationActivityListWatchlist:    true,
}

func isProtected(_ context.Context, operation string) bool {
	return protectedOperations[operation]
}

// SessionMiddleware attaches the caller to the context when the request
// carries a valid session cookie or Bearer token. Requests without one, or
// with an unknown or expired one, continue anonymously; any other lookup
// failure fails the request.
func SessionMiddleware(auth Authenticator, cookieName string) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			token := sessionToken(ctx, cookieName)
			if token == "" {
				return handler(ctx, req)
			}
			viewer, err := auth.Authenticate(ctx, token)
			switch {
			case err == nil:
				ctx = biz.NewViewerContext(ctx, viewer)
			case errors.Is(err, biz.ErrSessionNotFound), errors.Is(err, biz.ErrUserNotFound):
			default:
				return nil, err
			}
			return handler(ctx, req)
		}
	}
}

func sessionToken(ctx context.Context, cookieName string) string {
	if r, ok := khttp.RequestFromServerContext(ctx); ok {
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			return c.Value
		}
	}
	tr, ok := transport.FromServerContext(ctx)
	if !ok {
		return ""
	}
	parts := strings.SplitN(tr.RequestHeader().Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireUser rejects anonymous callers
func RequireUser() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if biz.ViewerID(ctx) == "" {
				return nil, biz.ErrAuthenticationRequired
			}
			return handler(ctx, req)
		}
	}
}

// MetricsMiddleware counts requests by operation and status code
func MetricsMiddleware() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			operation := "unknown"
			if tr, ok := transport.FromServerContext(ctx); ok {
				operation = tr.Operation()
			}
			start := time.Now()
			reply, err := handler(ctx, req)
			code := 200
			if err != nil {
				code = int(errors.FromError(err).Code)
			}
			metrics.RecordRequest(operation, strconv.Itoa(code), time.Since(start))
			return reply, err
		}
	}
}
