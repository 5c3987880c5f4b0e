package biz

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

// memStore is an in-memory implementation of every repository the use cases
// depend on. InTx serializes callers on a single mutex, which is enough to
// stand in for the row locks taken by the postgres repositories.
type memStore struct {
	mu sync.Mutex

	movies   map[string]*Movie
	order    []string
	votes    map[[2]string]VoteType
	reviews  map[string]*Review
	likes    map[string]map[string]bool
	lists    map[ListKind]map[[2]string]time.Time
	history  []*WatchEntry
	users    map[string]*User
	profiles map[string]*Profile
	sessions map[string]*Session
	media    map[string][]byte

	catalog     map[string]*CatalogEntry
	catalogErr  error
	invalidated int
	reviewLocks int
	clock       time.Time
}

func newMemStore() *memStore {
	return &memStore{
		movies:   map[string]*Movie{},
		votes:    map[[2]string]VoteType{},
		reviews:  map[string]*Review{},
		likes:    map[string]map[string]bool{},
		lists:    map[ListKind]map[[2]string]time.Time{ListFavorites: {}, ListWatchlist: {}},
		users:    map[string]*User{},
		profiles: map[string]*Profile{},
		sessions: map[string]*Session{},
		media:    map[string][]byte{},
		catalog:  map[string]*CatalogEntry{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}

// addMovie stores a movie directly, bypassing the use case.
func (s *memStore) addMovie(m *Movie) *Movie {
	if m.ID == "" {
		m.ID = fmt.Sprintf("movie-%03d", len(s.order)+1)
	}
	if m.Slug == "" {
		m.Slug = Slugify(m.Title)
	}
	if m.Category == "" {
		m.Category = DefaultCategory
	}
	m.CreatedAt = s.tick()
	s.movies[m.ID] = m
	s.order = append(s.order, m.ID)
	return m
}

func cloneMovie(m *Movie) *Movie {
	c := *m
	return &c
}

// MovieRepo

func (s *memStore) CreateMovie(_ context.Context, m *Movie) error {
	s.addMovie(m)
	return nil
}

func (s *memStore) GetMovie(_ context.Context, id string) (*Movie, error) {
	m, ok := s.movies[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	return cloneMovie(m), nil
}

func (s *memStore) GetMovieBySlug(_ context.Context, slug string) (*Movie, error) {
	for _, id := range s.order {
		if s.movies[id].Slug == slug {
			return cloneMovie(s.movies[id]), nil
		}
	}
	return nil, ErrMovieNotFound
}

func (s *memStore) FindMovieByTitle(_ context.Context, title string) (*Movie, error) {
	for _, id := range s.order {
		if s.movies[id].Title == title {
			return cloneMovie(s.movies[id]), nil
		}
	}
	return nil, ErrMovieNotFound
}

func (s *memStore) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, m := range s.movies {
		if m.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func containsFold(field, sub string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(sub))
}

func (s *memStore) filter(f *MovieFilter) []*Movie {
	var out []*Movie
	for _, id := range s.order {
		m := s.movies[id]
		if f.ExcludeID != "" && m.ID == f.ExcludeID {
			continue
		}
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.Genre != "" && !containsFold(m.Genre, f.Genre) {
			continue
		}
		if f.Query != "" && !(containsFold(m.Title, f.Query) || containsFold(m.Description, f.Query) ||
			containsFold(m.Genre, f.Query) || containsFold(m.Director, f.Query) || containsFold(m.Actors, f.Query)) {
			continue
		}
		out = append(out, cloneMovie(m))
	}
	switch f.Order {
	case OrderRelevance:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return out[i].Year > out[j].Year
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

func (s *memStore) CountMovies(_ context.Context, f *MovieFilter) (int64, error) {
	return int64(len(s.filter(f))), nil
}

func (s *memStore) ListMovies(_ context.Context, f *MovieFilter, offset, limit int) ([]*Movie, error) {
	all := s.filter(f)
	if offset >= len(all) {
		return []*Movie{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *memStore) GetFeatured(_ context.Context) (*Movie, error) {
	for _, id := range s.order {
		if s.movies[id].IsFeatured {
			return cloneMovie(s.movies[id]), nil
		}
	}
	return nil, nil
}

func (s *memStore) ListPopular(_ context.Context, limit int) ([]*Movie, error) {
	var out []*Movie
	for _, id := range s.order {
		m := s.movies[id]
		if m.LikesCount+m.DislikesCount > 0 {
			out = append(out, cloneMovie(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return RankingScore(out[i].LikesCount, out[i].DislikesCount) > RankingScore(out[j].LikesCount, out[j].DislikesCount)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) ListRandom(_ context.Context, limit int) ([]*Movie, error) {
	ids := append([]string(nil), s.order...)
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]*Movie, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneMovie(s.movies[id]))
	}
	return out, nil
}

func (s *memStore) LockMovie(ctx context.Context, id string) (*Movie, error) {
	return s.GetMovie(ctx, id)
}

func (s *memStore) UpdateVoteCounts(_ context.Context, id string, c VoteCounts) error {
	if c.Likes < 0 || c.Dislikes < 0 {
		return fmt.Errorf("negative counter for %s: %+v", id, c)
	}
	s.movies[id].LikesCount = c.Likes
	s.movies[id].DislikesCount = c.Dislikes
	return nil
}

func (s *memStore) UpdateRating(_ context.Context, id string, rating float64) error {
	s.movies[id].Rating = rating
	return nil
}

func (s *memStore) InvalidateMovie(context.Context, *Movie) {
	s.invalidated++
}

func (s *memStore) PruneMovies(_ context.Context, keep int) (int64, error) {
	if keep >= len(s.order) {
		return 0, nil
	}
	cut := len(s.order) - keep
	for _, id := range s.order[:cut] {
		delete(s.movies, id)
	}
	s.order = s.order[cut:]
	return int64(cut), nil
}

// VoteRepo

func (s *memStore) GetVote(_ context.Context, userID, movieID string) (VoteType, error) {
	return s.votes[[2]string{userID, movieID}], nil
}

func (s *memStore) SaveVote(_ context.Context, userID, movieID string, from, to VoteType) error {
	key := [2]string{userID, movieID}
	if s.votes[key] != from {
		return fmt.Errorf("stale vote: have %q, expected %q", s.votes[key], from)
	}
	if to == VoteNone {
		delete(s.votes, key)
		return nil
	}
	s.votes[key] = to
	return nil
}

// ReviewRepo

func (s *memStore) CreateReview(_ context.Context, r *Review) error {
	for _, existing := range s.reviews {
		if existing.UserID == r.UserID && existing.MovieID == r.MovieID {
			return ErrReviewConflict
		}
	}
	r.CreatedAt = s.tick()
	r.UpdatedAt = r.CreatedAt
	c := *r
	s.reviews[r.ID] = &c
	return nil
}

func (s *memStore) GetReview(_ context.Context, id string) (*Review, error) {
	r, ok := s.reviews[id]
	if !ok {
		return nil, ErrReviewNotFound
	}
	c := *r
	return &c, nil
}

func (s *memStore) LockReview(_ context.Context, id string) error {
	if _, ok := s.reviews[id]; !ok {
		return ErrReviewNotFound
	}
	s.reviewLocks++
	return nil
}

func (s *memStore) FindUserReview(_ context.Context, userID, movieID string) (*Review, error) {
	for _, r := range s.reviews {
		if r.UserID == userID && r.MovieID == movieID {
			c := *r
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) AverageRating(_ context.Context, movieID string) (float64, int64, error) {
	var sum, count int64
	for _, r := range s.reviews {
		if r.MovieID == movieID {
			sum += int64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return math.Round(float64(sum)/float64(count)*10) / 10, count, nil
}

func (s *memStore) sortedReviews(match func(*Review) bool) []*Review {
	var out []*Review
	for _, r := range s.reviews {
		if match(r) {
			c := *r
			c.LikesCount = int64(len(s.likes[r.ID]))
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memStore) ListMovieReviews(_ context.Context, movieID string) ([]*Review, error) {
	return s.sortedReviews(func(r *Review) bool { return r.MovieID == movieID }), nil
}

func (s *memStore) ListUserReviews(_ context.Context, userID string, limit int) ([]*Review, error) {
	out := s.sortedReviews(func(r *Review) bool { return r.UserID == userID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) CountUserReviews(_ context.Context, userID string) (int64, error) {
	return int64(len(s.sortedReviews(func(r *Review) bool { return r.UserID == userID }))), nil
}

func (s *memStore) ToggleLike(_ context.Context, reviewID, userID string) (bool, error) {
	if s.likes[reviewID] == nil {
		s.likes[reviewID] = map[string]bool{}
	}
	if s.likes[reviewID][userID] {
		delete(s.likes[reviewID], userID)
		return false, nil
	}
	s.likes[reviewID][userID] = true
	return true, nil
}

func (s *memStore) CountLikes(_ context.Context, reviewID string) (int64, error) {
	return int64(len(s.likes[reviewID])), nil
}

// LibraryRepo

func (s *memStore) Exists(_ context.Context, kind ListKind, userID, movieID string) (bool, error) {
	_, ok := s.lists[kind][[2]string{userID, movieID}]
	return ok, nil
}

func (s *memStore) Add(_ context.Context, kind ListKind, userID, movieID string) error {
	key := [2]string{userID, movieID}
	if _, ok := s.lists[kind][key]; ok {
		return fmt.Errorf("duplicate %s row", kind)
	}
	s.lists[kind][key] = s.tick()
	return nil
}

func (s *memStore) Remove(_ context.Context, kind ListKind, userID, movieID string) error {
	delete(s.lists[kind], [2]string{userID, movieID})
	return nil
}

func (s *memStore) CountForMovie(_ context.Context, kind ListKind, movieID string) (int64, error) {
	var n int64
	for key := range s.lists[kind] {
		if key[1] == movieID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CountForUser(_ context.Context, kind ListKind, userID string) (int64, error) {
	var n int64
	for key := range s.lists[kind] {
		if key[0] == userID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) libraryMovies(kind ListKind, userID string) []*Movie {
	type row struct {
		at    time.Time
		movie *Movie
	}
	var rows []row
	for key, at := range s.lists[kind] {
		if key[0] == userID {
			rows = append(rows, row{at: at, movie: cloneMovie(s.movies[key[1]])})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].at.After(rows[j].at) })
	out := make([]*Movie, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.movie)
	}
	return out
}

// libraryView adapts memStore to LibraryRepo, whose ListMovies signature
// clashes with MovieRepo.ListMovies.
type libraryView struct{ *memStore }

func (v libraryView) ListMovies(_ context.Context, kind ListKind, userID string, offset, limit int) ([]*Movie, error) {
	all := v.libraryMovies(kind, userID)
	if offset >= len(all) {
		return []*Movie{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// HistoryRepo

func (s *memStore) AppendWatch(_ context.Context, e *WatchEntry) error {
	e.WatchedAt = s.tick()
	c := *e
	s.history = append(s.history, &c)
	return nil
}

func (s *memStore) ListRecent(_ context.Context, userID string, limit int) ([]*WatchEntry, error) {
	var out []*WatchEntry
	for i := len(s.history) - 1; i >= 0 && len(out) < limit; i-- {
		if s.history[i].UserID == userID {
			out = append(out, s.history[i])
		}
	}
	return out, nil
}

// UserRepo

func (s *memStore) CreateUser(_ context.Context, u *User) error {
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return ErrUsernameTaken
		}
	}
	u.DateJoined = s.tick()
	c := *u
	s.users[u.ID] = &c
	return nil
}

func (s *memStore) GetUser(_ context.Context, id string) (*User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (s *memStore) GetUserByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range s.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *memStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.GetUserByUsername(ctx, username)
	return err == nil, nil
}

func (s *memStore) CreateProfile(_ context.Context, p *Profile) error {
	if _, ok := s.profiles[p.UserID]; ok {
		return fmt.Errorf("profile for %s exists", p.UserID)
	}
	p.CreatedAt = s.tick()
	c := *p
	s.profiles[p.UserID] = &c
	return nil
}

func (s *memStore) GetOrCreateProfile(ctx context.Context, userID string) (*Profile, error) {
	if p, ok := s.profiles[userID]; ok {
		c := *p
		return &c, nil
	}
	p := &Profile{UserID: userID}
	if err := s.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *memStore) UpdateProfile(_ context.Context, p *Profile) error {
	c := *p
	s.profiles[p.UserID] = &c
	return nil
}

// SessionRepo

func (s *memStore) CreateSession(_ context.Context, sess *Session) error {
	c := *sess
	s.sessions[sess.Token] = &c
	return nil
}

func (s *memStore) GetSession(_ context.Context, token string) (*Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	c := *sess
	return &c, nil
}

func (s *memStore) DeleteSession(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

// MediaStore

func (s *memStore) Save(_ context.Context, kind, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	url := "/media/" + kind + "/" + filename
	s.media[url] = data
	return url, nil
}

// CatalogClient

func (s *memStore) Lookup(_ context.Context, title string) (*CatalogEntry, error) {
	if s.catalogErr != nil {
		return nil, s.catalogErr
	}
	return s.catalog[title], nil
}

type useCases struct {
	store   *memStore
	movies  *MovieUseCase
	votes   *VoteUseCase
	reviews *ReviewUseCase
	library *LibraryUseCase
	account *AccountUseCase
}

func newUseCases() *useCases {
	s := newMemStore()
	logger := log.DefaultLogger
	lib := libraryView{s}
	account := NewAccountUseCase(nil, s, s, s, lib, s, s, s, logger)
	account.hashCost = 4
	return &useCases{
		store:   s,
		movies:  NewMovieUseCase(s, s, lib, s, s, logger),
		votes:   NewVoteUseCase(s, s, s, logger),
		reviews: NewReviewUseCase(s, s, s, logger),
		library: NewLibraryUseCase(s, s, lib, s, logger),
		account: account,
	}
}
