package v1

import "io"

type User struct {
	Id         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	DateJoined string `json:"date_joined"`
}

type Profile struct {
	Bio            string `json:"bio"`
	Avatar         string `json:"avatar"`
	BirthDate      string `json:"birth_date"`
	FavoriteGenres string `json:"favorite_genres"`
	CreatedAt      string `json:"created_at"`
}

type WatchEntry struct {
	Movie     *Movie `json:"movie"`
	WatchedAt string `json:"watched_at"`
	Progress  int32  `json:"progress"`
}

type ActivitySummary struct {
	FavoritesCount  int64         `json:"favorites_count"`
	WatchlistCount  int64         `json:"watchlist_count"`
	ReviewsCount    int64         `json:"reviews_count"`
	RecentFavorites []*Movie      `json:"recent_favorites"`
	RecentWatchlist []*Movie      `json:"recent_watchlist"`
	RecentReviews   []*Review     `json:"recent_reviews"`
	RecentHistory   []*WatchEntry `json:"recent_history"`
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=50"`
	LastName  string `json:"last_name" validate:"max=50"`
	Password1 string `json:"password1" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
}

type RegisterReply struct {
	User     *User  `json:"user"`
	Redirect string `json:"redirect"`
}

func (r *RegisterReply) Location() string { return r.Redirect }

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginReply struct {
	User     *User  `json:"user"`
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}

type LogoutRequest struct{}

type LogoutReply struct {
	Redirect string `json:"redirect"`
}

type GetProfileRequest struct{}

type GetProfileReply struct {
	User     *User            `json:"user"`
	Profile  *Profile         `json:"profile"`
	Activity *ActivitySummary `json:"activity"`
}

type UpdateProfileRequest struct {
	Bio            string  `json:"bio" validate:"max=2000"`
	Avatar         *string `json:"avatar" validate:"omitempty,max=500"`
	BirthDate      string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	FavoriteGenres string  `json:"favorite_genres" validate:"max=200"`
}

type UpdateProfileReply struct {
	Profile *Profile `json:"profile"`
}

type UploadAvatarReply struct {
	Profile *Profile `json:"profile"`
}

// UploadAvatarRequest carries a multipart file part; it is not JSON bound.
type UploadAvatarRequest struct {
	Filename string    `json:"-"`
	Size     int64     `json:"-"`
	Content  io.Reader `json:"-"`
}
