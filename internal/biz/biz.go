package biz

import (
	"context"

	"github.com/google/wire"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(
	NewMovieUseCase,
	NewVoteUseCase,
	NewReviewUseCase,
	NewLibraryUseCase,
	NewAccountUseCase,
)

// Viewer is the authenticated caller of a request.
type Viewer struct {
	UserID   string
	Username string
	Token    string
}

type viewerKey struct{}

// NewViewerContext returns a copy of ctx carrying v.
func NewViewerContext(ctx context.Context, v *Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// ViewerFromContext returns the caller stored by NewViewerContext.
func ViewerFromContext(ctx context.Context) (*Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(*Viewer)
	return v, ok && v != nil
}

// ViewerID returns the caller's user id, empty for anonymous requests.
func ViewerID(ctx context.Context) string {
	if v, ok := ViewerFromContext(ctx); ok {
		return v.UserID
	}
	return ""
}
