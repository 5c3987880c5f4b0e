package v1

import (
	context "context"

	http "github.com/go-kratos/kratos/v2/transport/http"
)

const OperationActivityToggleFavorite = "/api.cinemadia.v1.Activity/ToggleFavorite"
const OperationActivityToggleWatchlist = "/api.cinemadia.v1.Activity/ToggleWatchlist"
const OperationActivityVoteMovie = "/api.cinemadia.v1.Activity/VoteMovie"
const OperationActivityGetReviewForm = "/api.cinemadia.v1.Activity/GetReviewForm"
const OperationActivityAddReview = "/api.cinemadia.v1.Activity/AddReview"
const OperationActivityToggleReviewLike = "/api.cinemadia.v1.Activity/ToggleReviewLike"
const OperationActivityRecordWatch = "/api.cinemadia.v1.Activity/RecordWatch"
const OperationActivityListFavorites = "/api.cinemadia.v1.Activity/ListFavorites"
const OperationActivityListWatchlist = "/api.cinemadia.v1.Activity/ListWatchlist"

type ActivityHTTPServer interface {
	ToggleFavorite(context.Context, *ToggleFavoriteRequest) (*ToggleFavoriteReply, error)
	ToggleWatchlist(context.Context, *ToggleWatchlistRequest) (*ToggleWatchlistReply, error)
	VoteMovie(context.Context, *VoteMovieRequest) (*VoteMovieReply, error)
	GetReviewForm(context.Context, *GetReviewFormRequest) (*GetReviewFormReply, error)
	AddReview(context.Context, *AddReviewRequest) (*AddReviewReply, error)
	ToggleReviewLike(context.Context, *ToggleReviewLikeRequest) (*ToggleReviewLikeReply, error)
	RecordWatch(context.Context, *RecordWatchRequest) (*RecordWatchReply, error)
	ListFavorites(context.Context, *ListFavoritesRequest) (*ListFavoritesReply, error)
	ListWatchlist(context.Context, *ListWatchlistRequest) (*ListWatchlistReply, error)
}

func RegisterActivityHTTPServer(s *http.Server, srv ActivityHTTPServer) {
	r := s.Route("/")
	r.POST("/api/v1/movies/{movie_id}/favorite", _Activity_ToggleFavorite0_HTTP_Handler(srv))
	r.POST("/api/v1/movies/{movie_id}/watchlist", _Activity_ToggleWatchlist0_HTTP_Handler(srv))
	r.POST("/api/v1/movies/{movie_id}/vote", _Activity_VoteMovie0_HTTP_Handler(srv))
	r.GET("/api/v1/movies/{movie_id}/review", _Activity_GetReviewForm0_HTTP_Handler(srv))
	r.POST("/api/v1/movies/{movie_id}/review", _Activity_AddReview0_HTTP_Handler(srv))
	r.POST("/api/v1/movies/{movie_id}/watch", _Activity_RecordWatch0_HTTP_Handler(srv))
	r.POST("/api/v1/reviews/{review_id}/like", _Activity_ToggleReviewLike0_HTTP_Handler(srv))
	r.GET("/api/v1/favorites", _Activity_ListFavorites0_HTTP_Handler(srv))
	r.GET("/api/v1/watchlist", _Activity_ListWatchlist0_HTTP_Handler(srv))
}

func _Activity_ToggleFavorite0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ToggleFavoriteRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityToggleFavorite)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ToggleFavorite(ctx, req.(*ToggleFavoriteRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ToggleFavoriteReply))
	}
}

func _Activity_ToggleWatchlist0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ToggleWatchlistRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityToggleWatchlist)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ToggleWatchlist(ctx, req.(*ToggleWatchlistRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ToggleWatchlistReply))
	}
}

func _Activity_VoteMovie0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in VoteMovieRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityVoteMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.VoteMovie(ctx, req.(*VoteMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*VoteMovieReply))
	}
}

func _Activity_GetReviewForm0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetReviewFormRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityGetReviewForm)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetReviewForm(ctx, req.(*GetReviewFormRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*GetReviewFormReply))
	}
}

func _Activity_AddReview0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in AddReviewRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityAddReview)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.AddReview(ctx, req.(*AddReviewRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(201, out.(*AddReviewReply))
	}
}

func _Activity_ToggleReviewLike0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ToggleReviewLikeRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityToggleReviewLike)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ToggleReviewLike(ctx, req.(*ToggleReviewLikeRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ToggleReviewLikeReply))
	}
}

func _Activity_RecordWatch0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in RecordWatchRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityRecordWatch)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.RecordWatch(ctx, req.(*RecordWatchRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(201, out.(*RecordWatchReply))
	}
}

func _Activity_ListFavorites0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListFavoritesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityListFavorites)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListFavorites(ctx, req.(*ListFavoritesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListFavoritesReply))
	}
}

func _Activity_ListWatchlist0_HTTP_Handler(srv ActivityHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListWatchlistRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationActivityListWatchlist)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListWatchlist(ctx, req.(*ListWatchlistRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListWatchlistReply))
	}
}
