package data

import (
	"time"
)

// Movie represents the movies table
type Movie struct {
	ID            string  `gorm:"primaryKey;size:36"`
	Title         string  `gorm:"not null;size:200;index:idx_movies_title"`
	Slug          string  `gorm:"not null;size:200;uniqueIndex"`
	Description   string  `gorm:"type:text"`
	Year          int     `gorm:"not null;default:0;check:chk_movies_year,year >= 0"`
	Genre         string  `gorm:"size:100;index:idx_movies_genre,expression:LOWER(genre)"`
	Category      string  `gorm:"not null;size:20;default:yangilik;index:idx_movies_category"`
	Director      string  `gorm:"size:100"`
	Actors        string  `gorm:"type:text"`
	Duration      string  `gorm:"size:20"`
	Rating        float64 `gorm:"not null;default:0;type:numeric(3,1);check:chk_movies_rating,rating >= 0 AND rating <= 10"`
	IsFeatured    bool    `gorm:"not null;default:false;index:idx_movies_featured"`
	PosterFile    string  `gorm:"size:500"`
	PosterURL     string  `gorm:"column:poster_url;size:500"`
	VideoFile     string  `gorm:"size:500"`
	VideoURL      string  `gorm:"column:video_url;size:500"`
	TrailerURL    string  `gorm:"column:trailer_url;size:500"`
	LikesCount    int64   `gorm:"not null;default:0;check:chk_movies_likes,likes_count >= 0"`
	DislikesCount int64   `gorm:"not null;default:0;check:chk_movies_dislikes,dislikes_count >= 0"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_movies_created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Movie) TableName() string {
	return "movies"
}

// User represents the users table
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"not null;size:150;uniqueIndex"`
	Email        string    `gorm:"size:254"`
	FirstName    string    `gorm:"size:150"`
	LastName     string    `gorm:"size:150"`
	PasswordHash string    `gorm:"not null;size:128"`
	DateJoined   time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// UserProfile represents the user_profiles table, one row per user
type UserProfile struct {
	UserID         string     `gorm:"primaryKey;size:36"`
	Bio            string     `gorm:"type:text"`
	Avatar         string     `gorm:"size:500"`
	BirthDate      *time.Time `gorm:"type:date"`
	FavoriteGenres string     `gorm:"size:200"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (UserProfile) TableName() string {
	return "user_profiles"
}

// Favorite represents the favorites table
type Favorite struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;size:36;uniqueIndex:uq_favorite_user_movie"`
	MovieID   string    `gorm:"not null;size:36;uniqueIndex:uq_favorite_user_movie;index:idx_favorites_movie_id"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Favorite) TableName() string {
	return "favorites"
}

// Watchlist represents the watchlist table
type Watchlist struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;size:36;uniqueIndex:uq_watchlist_user_movie"`
	MovieID   string    `gorm:"not null;size:36;uniqueIndex:uq_watchlist_user_movie;index:idx_watchlist_movie_id"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Watchlist) TableName() string {
	return "watchlist"
}

// Review represents the reviews table
type Review struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;size:36;uniqueIndex:uq_review_user_movie"`
	MovieID   string    `gorm:"not null;size:36;uniqueIndex:uq_review_user_movie;index:idx_reviews_movie_id"`
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 10"`
	Comment   string    `gorm:"not null;type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Review) TableName() string {
	return "reviews"
}

// ReviewLike represents the review_likes join table
type ReviewLike struct {
	ReviewID string `gorm:"primaryKey;size:36"`
	UserID   string `gorm:"primaryKey;size:36"`

	Review Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (ReviewLike) TableName() string {
	return "review_likes"
}

// WatchHistory represents the watch_history table
type WatchHistory struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;size:36;index:idx_watch_history_user_watched,priority:1"`
	MovieID   string    `gorm:"not null;size:36"`
	WatchedAt time.Time `gorm:"not null;index:idx_watch_history_user_watched,priority:2,sort:desc"`
	Progress  int       `gorm:"not null;default:0;check:chk_watch_history_progress,progress >= 0 AND progress <= 100"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (WatchHistory) TableName() string {
	return "watch_history"
}

// MovieVote represents the movie_votes table
type MovieVote struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;size:36;uniqueIndex:uq_vote_user_movie"`
	MovieID   string    `gorm:"not null;size:36;uniqueIndex:uq_vote_user_movie;index:idx_movie_votes_movie_id"`
	VoteType  string    `gorm:"not null;size:10;check:chk_movie_votes_type,vote_type IN ('like','dislike')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (MovieVote) TableName() string {
	return "movie_votes"
}

// Session represents the sessions table, used when redis is unavailable
type Session struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"not null;size:36;index"`
	ExpiresAt time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Session) TableName() string {
	return "sessions"
}
