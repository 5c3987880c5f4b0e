package service

import (
	"time"

	v1 "cinemadia/api/cinemadia/v1"
	"cinemadia/internal/biz"
)

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func movieToReply(m *biz.Movie) *v1.Movie {
	if m == nil {
		return nil
	}
	return &v1.Movie{
		Id:              m.ID,
		Title:           m.Title,
		Slug:            m.Slug,
		Description:     m.Description,
		Year:            int32(m.Year),
		Genre:           m.Genre,
		Category:        string(m.Category),
		CategoryLabel:   m.Category.Label(),
		Director:        m.Director,
		Actors:          m.Actors,
		Duration:        m.Duration,
		Rating:          m.Rating,
		IsFeatured:      m.IsFeatured,
		Poster:          m.Poster(),
		Video:           m.Video(),
		TrailerUrl:      m.TrailerURL,
		LikesCount:      m.LikesCount,
		DislikesCount:   m.DislikesCount,
		PopularityScore: m.PopularityScore(),
		CreatedAt:       formatTime(m.CreatedAt),
		UpdatedAt:       formatTime(m.UpdatedAt),
	}
}

func moviesToReply(movies []*biz.Movie) []*v1.Movie {
	items := make([]*v1.Movie, 0, len(movies))
	for _, m := range movies {
		items = append(items, movieToReply(m))
	}
	return items
}

func pageToReply(p biz.Page) *v1.Page {
	return &v1.Page{
		Number:      int32(p.Number),
		NumPages:    int32(p.NumPages),
		PageSize:    int32(p.Size),
		Total:       p.Total,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}

func reviewToReply(r *biz.Review) *v1.Review {
	if r == nil {
		return nil
	}
	return &v1.Review{
		Id:         r.ID,
		MovieId:    r.MovieID,
		UserId:     r.UserID,
		Username:   r.Username,
		Rating:     int32(r.Rating),
		Comment:    r.Comment,
		LikesCount: r.LikesCount,
		CreatedAt:  formatTime(r.CreatedAt),
		UpdatedAt:  formatTime(r.UpdatedAt),
	}
}

func reviewsToReply(reviews []*biz.Review) []*v1.Review {
	items := make([]*v1.Review, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, reviewToReply(r))
	}
	return items
}

// voteToReply renders "no vote" as JSON null.
func voteToReply(v biz.VoteType) *string {
	if v == biz.VoteNone {
		return nil
	}
	s := string(v)
	return &s
}

func userToReply(u *biz.User) *v1.User {
	if u == nil {
		return nil
	}
	return &v1.User{
		Id:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		DateJoined: formatTime(u.DateJoined),
	}
}

func profileToReply(p *biz.Profile) *v1.Profile {
	if p == nil {
		return nil
	}
	reply := &v1.Profile{
		Bio:            p.Bio,
		Avatar:         p.Avatar,
		FavoriteGenres: p.FavoriteGenres,
		CreatedAt:      formatTime(p.CreatedAt),
	}
	if p.BirthDate != nil {
		reply.BirthDate = p.BirthDate.Format(dateLayout)
	}
	return reply
}

func watchEntryToReply(e *biz.WatchEntry) *v1.WatchEntry {
	if e == nil {
		return nil
	}
	return &v1.WatchEntry{
		Movie:     movieToReply(e.Movie),
		WatchedAt: formatTime(e.WatchedAt),
		Progress:  int32(e.Progress),
	}
}

func activityToReply(a *biz.Activity) *v1.ActivitySummary {
	if a == nil {
		return nil
	}
	history := make([]*v1.WatchEntry, 0, len(a.RecentHistory))
	for _, e := range a.RecentHistory {
		history = append(history, watchEntryToReply(e))
	}
	return &v1.ActivitySummary{
		FavoritesCount:  a.FavoritesCount,
		WatchlistCount:  a.WatchlistCount,
		ReviewsCount:    a.ReviewsCount,
		RecentFavorites: moviesToReply(a.RecentFavorites),
		RecentWatchlist: moviesToReply(a.RecentWatchlist),
		RecentReviews:   reviewsToReply(a.RecentReviews),
		RecentHistory:   history,
	}
}
