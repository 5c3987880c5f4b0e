package v1

type ToggleFavoriteRequest struct {
	MovieId string `json:"movie_id"`
}

type ToggleFavoriteReply struct {
	IsFavorite     bool   `json:"is_favorite"`
	Message        string `json:"message"`
	FavoritesCount int64  `json:"favorites_count"`
}

type ToggleWatchlistRequest struct {
	MovieId string `json:"movie_id"`
}

type ToggleWatchlistReply struct {
	InWatchlist bool   `json:"in_watchlist"`
	Message     string `json:"message"`
}

type VoteMovieRequest struct {
	MovieId  string `json:"movie_id"`
	VoteType string `json:"vote_type"`
}

type VoteMovieReply struct {
	Success       bool    `json:"success"`
	LikesCount    int64   `json:"likes_count"`
	DislikesCount int64   `json:"dislikes_count"`
	UserVote      *string `json:"user_vote"`
}

type GetReviewFormRequest struct {
	MovieId string `json:"movie_id"`
}

type GetReviewFormReply struct {
	Movie  *Movie  `json:"movie"`
	Review *Review `json:"review"`
}

type AddReviewRequest struct {
	MovieId string `json:"movie_id"`
	Rating  int32  `json:"rating" validate:"required,min=1,max=10"`
	Comment string `json:"comment" validate:"required,max=5000"`
}

type AddReviewReply struct {
	Review      *Review `json:"review"`
	MovieRating float64 `json:"movie_rating"`
	Redirect    string  `json:"redirect"`
}

func (r *AddReviewReply) Location() string { return r.Redirect }

type ToggleReviewLikeRequest struct {
	ReviewId string `json:"review_id"`
}

type ToggleReviewLikeReply struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

type RecordWatchRequest struct {
	MovieId  string `json:"movie_id"`
	Progress int32  `json:"progress" validate:"min=0,max=100"`
}

type RecordWatchReply struct {
	Entry *WatchEntry `json:"entry"`
}

type ListFavoritesRequest struct {
	Page string `json:"page"`
}

type ListFavoritesReply struct {
	Items []*Movie `json:"items"`
	Page  *Page    `json:"page"`
}

type ListWatchlistRequest struct {
	Page string `json:"page"`
}

type ListWatchlistReply struct {
	Items []*Movie `json:"items"`
	Page  *Page    `json:"page"`
}
