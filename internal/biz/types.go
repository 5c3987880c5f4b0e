package biz

import (
	"context"
	"io"
	"time"
)

// Movie domain model
type Movie struct {
	ID            string
	Title         string
	Slug          string
	Description   string
	Year          int
	Genre         string
	Category      Category
	Director      string
	Actors        string
	Duration      string
	Rating        float64
	IsFeatured    bool
	PosterFile    string
	PosterURL     string
	VideoFile     string
	VideoURL      string
	TrailerURL    string
	LikesCount    int64
	DislikesCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Poster returns the uploaded poster when present, the poster URL otherwise.
func (m *Movie) Poster() string {
	if m.PosterFile != "" {
		return m.PosterFile
	}
	return m.PosterURL
}

// Video returns the uploaded video when present, the video URL otherwise.
func (m *Movie) Video() string {
	if m.VideoFile != "" {
		return m.VideoFile
	}
	return m.VideoURL
}

// PopularityScore is the per-movie score in [0, 150].
func (m *Movie) PopularityScore() float64 {
	return PopularityScore(m.LikesCount, m.DislikesCount)
}

// CreateMovieRequest domain model
type CreateMovieRequest struct {
	Title       string
	Slug        string
	Description string
	Year        int
	Genre       string
	Category    Category
	Director    string
	Actors      string
	Duration    string
	Rating      float64
	IsFeatured  bool
	PosterFile  string
	PosterURL   string
	VideoFile   string
	VideoURL    string
	TrailerURL  string
}

// MovieOrder selects the ordering of a movie listing.
type MovieOrder int

const (
	// OrderNewest sorts by creation time, newest first.
	OrderNewest MovieOrder = iota
	// OrderRelevance sorts search hits by rating then year, both descending.
	OrderRelevance
)

// MovieFilter domain model
type MovieFilter struct {
	Query     string
	Category  Category
	Genre     string
	ExcludeID string
	Order     MovieOrder
}

// MovieList is one page of movies.
type MovieList struct {
	Items []*Movie
	Page  Page
}

// CategorySection groups homepage movies sharing a category.
type CategorySection struct {
	Category Category
	Movies   []*Movie
}

// Home is the homepage composition.
type Home struct {
	Featured *Movie
	Sections []*CategorySection
	Popular  []*Movie
}

// MovieDetail is a movie with its surroundings and the viewer's state.
type MovieDetail struct {
	Movie       *Movie
	Related     []*Movie
	Reviews     []*Review
	UserVote    VoteType
	IsFavorite  bool
	InWatchlist bool
	UserReview  *Review
}

// VoteCounts holds a movie's like/dislike counters.
type VoteCounts struct {
	Likes    int64
	Dislikes int64
}

// VoteResult is returned by every vote toggle.
type VoteResult struct {
	Counts   VoteCounts
	UserVote VoteType
}

// Review domain model
type Review struct {
	ID         string
	MovieID    string
	UserID     string
	Username   string
	Rating     int
	Comment    string
	LikesCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReviewLikeResult is returned by a review like toggle.
type ReviewLikeResult struct {
	Liked      bool
	LikesCount int64
}

// ListKind names one of the per-user movie lists.
type ListKind string

const (
	ListFavorites ListKind = "favorites"
	ListWatchlist ListKind = "watchlist"
)

// FavoriteResult is returned by a favorite toggle.
type FavoriteResult struct {
	IsFavorite     bool
	Message        string
	FavoritesCount int64
}

// WatchlistResult is returned by a watchlist toggle.
type WatchlistResult struct {
	InWatchlist bool
	Message     string
}

// WatchEntry domain model
type WatchEntry struct {
	ID        string
	UserID    string
	MovieID   string
	Movie     *Movie
	WatchedAt time.Time
	Progress  int
}

// User domain model
type User struct {
	ID           string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	DateJoined   time.Time
}

// Profile domain model
type Profile struct {
	UserID         string
	Bio            string
	Avatar         string
	BirthDate      *time.Time
	FavoriteGenres string
	CreatedAt      time.Time
}

// RegisterRequest domain model
type RegisterRequest struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password1 string
	Password2 string
}

// UpdateProfileRequest domain model
type UpdateProfileRequest struct {
	Bio            string
	Avatar         *string
	BirthDate      *time.Time
	FavoriteGenres string
}

// Activity summarizes a user's interactions for the profile page.
type Activity struct {
	FavoritesCount  int64
	WatchlistCount  int64
	ReviewsCount    int64
	RecentFavorites []*Movie
	RecentWatchlist []*Movie
	RecentReviews   []*Review
	RecentHistory   []*WatchEntry
}

// ProfileOverview is everything the profile page shows.
type ProfileOverview struct {
	User     *User
	Profile  *Profile
	Activity *Activity
}

// Session binds an opaque token to a user.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// Transaction runs fn inside a database transaction carried by ctx.
type Transaction interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MovieRepo defines the repository interface for movies
type MovieRepo interface {
	CreateMovie(ctx context.Context, movie *Movie) error
	GetMovie(ctx context.Context, id string) (*Movie, error)
	GetMovieBySlug(ctx context.Context, slug string) (*Movie, error)
	FindMovieByTitle(ctx context.Context, title string) (*Movie, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CountMovies(ctx context.Context, filter *MovieFilter) (int64, error)
	ListMovies(ctx context.Context, filter *MovieFilter, offset, limit int) ([]*Movie, error)
	GetFeatured(ctx context.Context) (*Movie, error)
	ListPopular(ctx context.Context, limit int) ([]*Movie, error)
	ListRandom(ctx context.Context, limit int) ([]*Movie, error)
	// LockMovie reads the movie row and holds a write lock on it until the
	// surrounding transaction ends.
	LockMovie(ctx context.Context, id string) (*Movie, error)
	UpdateVoteCounts(ctx context.Context, id string, counts VoteCounts) error
	UpdateRating(ctx context.Context, id string, rating float64) error
	// InvalidateMovie drops cached copies of the movie and the popular list.
	InvalidateMovie(ctx context.Context, movie *Movie)
	PruneMovies(ctx context.Context, keep int) (int64, error)
}

// VoteRepo defines the repository interface for movie votes
type VoteRepo interface {
	GetVote(ctx context.Context, userID, movieID string) (VoteType, error)
	// SaveVote moves the stored vote row from one state to another.
	SaveVote(ctx context.Context, userID, movieID string, from, to VoteType) error
}

// ReviewRepo defines the repository interface for reviews
type ReviewRepo interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReview(ctx context.Context, id string) (*Review, error)
	// LockReview takes a row lock on the review for the rest of the transaction.
	LockReview(ctx context.Context, id string) error
	FindUserReview(ctx context.Context, userID, movieID string) (*Review, error)
	AverageRating(ctx context.Context, movieID string) (avg float64, count int64, err error)
	ListMovieReviews(ctx context.Context, movieID string) ([]*Review, error)
	ListUserReviews(ctx context.Context, userID string, limit int) ([]*Review, error)
	CountUserReviews(ctx context.Context, userID string) (int64, error)
	ToggleLike(ctx context.Context, reviewID, userID string) (bool, error)
	CountLikes(ctx context.Context, reviewID string) (int64, error)
}

// LibraryRepo defines the repository interface for favorites and watchlists
type LibraryRepo interface {
	Exists(ctx context.Context, kind ListKind, userID, movieID string) (bool, error)
	Add(ctx context.Context, kind ListKind, userID, movieID string) error
	Remove(ctx context.Context, kind ListKind, userID, movieID string) error
	CountForMovie(ctx context.Context, kind ListKind, movieID string) (int64, error)
	CountForUser(ctx context.Context, kind ListKind, userID string) (int64, error)
	ListMovies(ctx context.Context, kind ListKind, userID string, offset, limit int) ([]*Movie, error)
}

// HistoryRepo defines the repository interface for watch history
type HistoryRepo interface {
	AppendWatch(ctx context.Context, entry *WatchEntry) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*WatchEntry, error)
}

// UserRepo defines the repository interface for users and profiles
type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateProfile(ctx context.Context, profile *Profile) error
	GetOrCreateProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
}

// SessionRepo defines the repository interface for login sessions
type SessionRepo interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// MediaStore persists uploaded files and returns the URL they are served from.
type MediaStore interface {
	Save(ctx context.Context, kind, filename string, r io.Reader) (string, error)
}

// CatalogClient defines the interface for the external movie catalog
type CatalogClient interface {
	Lookup(ctx context.Context, title string) (*CatalogEntry, error)
}

// CatalogEntry represents data from the external catalog
type CatalogEntry struct {
	Title       string
	Description string
	Year        int
	Genre       string
	Category    string
	Director    string
	Actors      string
	Duration    string
	PosterURL   string
	TrailerURL  string
}
