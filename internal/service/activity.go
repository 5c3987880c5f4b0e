package service

import (
	"context"

	v1 "cinemadia/api/cinemadia/v1"
	"cinemadia/internal/biz"
)

// ActivityService implements the signed-in interactions: votes, lists,
// reviews and watch history
type ActivityService struct {
	voteUC    *biz.VoteUseCase
	reviewUC  *biz.ReviewUseCase
	libraryUC *biz.LibraryUseCase
}

// NewActivityService creates a new ActivityService
func NewActivityService(voteUC *biz.VoteUseCase, reviewUC *biz.ReviewUseCase, libraryUC *biz.LibraryUseCase) *ActivityService {
	return &ActivityService{
		voteUC:    voteUC,
		reviewUC:  reviewUC,
		libraryUC: libraryUC,
	}
}

// ToggleFavorite implements the favorite toggle
func (s *ActivityService) ToggleFavorite(ctx context.Context, req *v1.ToggleFavoriteRequest) (*v1.ToggleFavoriteReply, error) {
	res, err := s.libraryUC.ToggleFavorite(ctx, biz.ViewerID(ctx), req.MovieId)
	if err != nil {
		return nil, err
	}
	return &v1.ToggleFavoriteReply{
		IsFavorite:     res.IsFavorite,
		Message:        res.Message,
		FavoritesCount: res.FavoritesCount,
	}, nil
}

// ToggleWatchlist implements the watchlist toggle
func (s *ActivityService) ToggleWatchlist(ctx context.Context, req *v1.ToggleWatchlistRequest) (*v1.ToggleWatchlistReply, error) {
	res, err := s.libraryUC.ToggleWatchlist(ctx, biz.ViewerID(ctx), req.MovieId)
	if err != nil {
		return nil, err
	}
	return &v1.ToggleWatchlistReply{
		InWatchlist: res.InWatchlist,
		Message:     res.Message,
	}, nil
}

// VoteMovie implements the like/dislike toggle
func (s *ActivityService) VoteMovie(ctx context.Context, req *v1.VoteMovieRequest) (*v1.VoteMovieReply, error) {
	res, err := s.voteUC.Toggle(ctx, biz.ViewerID(ctx), req.MovieId, req.VoteType)
	if err != nil {
		return nil, err
	}
	return &v1.VoteMovieReply{
		Success:       true,
		LikesCount:    res.Counts.Likes,
		DislikesCount: res.Counts.Dislikes,
		UserVote:      voteToReply(res.UserVote),
	}, nil
}

// GetReviewForm returns what the review form needs
func (s *ActivityService) GetReviewForm(ctx context.Context, req *v1.GetReviewFormRequest) (*v1.GetReviewFormReply, error) {
	movie, review, err := s.reviewUC.Form(ctx, biz.ViewerID(ctx), req.MovieId)
	if err != nil {
		return nil, err
	}
	return &v1.GetReviewFormReply{
		Movie:  movieToReply(movie),
		Review: reviewToReply(review),
	}, nil
}

// AddReview implements review submission
func (s *ActivityService) AddReview(ctx context.Context, req *v1.AddReviewRequest) (*v1.AddReviewReply, error) {
	userID := biz.ViewerID(ctx)
	if userID == "" {
		return nil, biz.ErrAuthenticationRequired
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	review, movie, err := s.reviewUC.Submit(ctx, userID, req.MovieId, int(req.Rating), req.Comment)
	if err != nil {
		return nil, err
	}
	if v, ok := biz.ViewerFromContext(ctx); ok {
		review.Username = v.Username
	}
	return &v1.AddReviewReply{
		Review:      reviewToReply(review),
		MovieRating: movie.Rating,
		Redirect:    "/api/v1/movies/" + movie.Slug,
	}, nil
}

// ToggleReviewLike implements the review like toggle
func (s *ActivityService) ToggleReviewLike(ctx context.Context, req *v1.ToggleReviewLikeRequest) (*v1.ToggleReviewLikeReply, error) {
	res, err := s.reviewUC.ToggleLike(ctx, biz.ViewerID(ctx), req.ReviewId)
	if err != nil {
		return nil, err
	}
	return &v1.ToggleReviewLikeReply{
		Liked:      res.Liked,
		LikesCount: res.LikesCount,
	}, nil
}

// RecordWatch appends to the caller's watch history
func (s *ActivityService) RecordWatch(ctx context.Context, req *v1.RecordWatchRequest) (*v1.RecordWatchReply, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	entry, err := s.libraryUC.RecordWatch(ctx, biz.ViewerID(ctx), req.MovieId, int(req.Progress))
	if err != nil {
		return nil, err
	}
	return &v1.RecordWatchReply{Entry: watchEntryToReply(entry)}, nil
}

// ListFavorites implements the favorites page
func (s *ActivityService) ListFavorites(ctx context.Context, req *v1.ListFavoritesRequest) (*v1.ListFavoritesReply, error) {
	list, err := s.libraryUC.List(ctx, biz.ListFavorites, biz.ViewerID(ctx), biz.ParsePageNumber(req.Page))
	if err != nil {
		return nil, err
	}
	return &v1.ListFavoritesReply{
		Items: moviesToReply(list.Items),
		Page:  pageToReply(list.Page),
	}, nil
}

// ListWatchlist implements the watchlist page
func (s *ActivityService) ListWatchlist(ctx context.Context, req *v1.ListWatchlistRequest) (*v1.ListWatchlistReply, error) {
	list, err := s.libraryUC.List(ctx, biz.ListWatchlist, biz.ViewerID(ctx), biz.ParsePageNumber(req.Page))
	if err != nil {
		return nil, err
	}
	return &v1.ListWatchlistReply{
		Items: moviesToReply(list.Items),
		Page:  pageToReply(list.Page),
	}, nil
}
