package v1

// Movie is the public representation of a catalog entry.
type Movie struct {
	Id              string  `json:"id"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description"`
	Year            int32   `json:"year"`
	Genre           string  `json:"genre"`
	Category        string  `json:"category"`
	CategoryLabel   string  `json:"category_label"`
	Director        string  `json:"director"`
	Actors          string  `json:"actors"`
	Duration        string  `json:"duration"`
	Rating          float64 `json:"rating"`
	IsFeatured      bool    `json:"is_featured"`
	Poster          string  `json:"poster"`
	Video           string  `json:"video"`
	TrailerUrl      string  `json:"trailer_url"`
	LikesCount      int64   `json:"likes_count"`
	DislikesCount   int64   `json:"dislikes_count"`
	PopularityScore float64 `json:"popularity_score"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// Page describes the slice of a paginated result that was returned.
type Page struct {
	Number      int32 `json:"number"`
	NumPages    int32 `json:"num_pages"`
	PageSize    int32 `json:"page_size"`
	Total       int64 `json:"total"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

type Review struct {
	Id         string `json:"id"`
	MovieId    string `json:"movie_id"`
	UserId     string `json:"user_id"`
	Username   string `json:"username"`
	Rating     int32  `json:"rating"`
	Comment    string `json:"comment"`
	LikesCount int64  `json:"likes_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type ListMoviesRequest struct {
	Q    string `json:"q"`
	Page string `json:"page"`
}

type ListMoviesReply struct {
	Query string   `json:"query"`
	Items []*Movie `json:"items"`
	Page  *Page    `json:"page"`
}

type GetMovieRequest struct {
	Slug string `json:"slug"`
}

type GetMovieReply struct {
	Movie       *Movie    `json:"movie"`
	Related     []*Movie  `json:"related"`
	Reviews     []*Review `json:"reviews"`
	UserVote    *string   `json:"user_vote"`
	IsFavorite  bool      `json:"is_favorite"`
	InWatchlist bool      `json:"in_watchlist"`
	UserReview  *Review   `json:"user_review"`
}

type HomeRequest struct{}

type CategorySection struct {
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Movies   []*Movie `json:"movies"`
}

type HomeReply struct {
	Site     string             `json:"site"`
	Featured *Movie             `json:"featured"`
	Sections []*CategorySection `json:"sections"`
	Popular  []*Movie           `json:"popular"`
}

type ListPopularRequest struct{}

type ListPopularReply struct {
	Items []*Movie `json:"items"`
}

type ListRandomRequest struct{}

type ListRandomReply struct {
	Items []*Movie `json:"items"`
}

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ListCategoriesRequest struct{}

type ListCategoriesReply struct {
	Items []*Category `json:"items"`
}

type BrowseCategoryRequest struct {
	Category string `json:"category"`
	Page     string `json:"page"`
}

type BrowseCategoryReply struct {
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Items    []*Movie `json:"items"`
	Page     *Page    `json:"page"`
}

type BrowseGenreRequest struct {
	Genre string `json:"genre"`
	Page  string `json:"page"`
}

type BrowseGenreReply struct {
	Genre string   `json:"genre"`
	Items []*Movie `json:"items"`
	Page  *Page    `json:"page"`
}
