package biz

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

const (
	relatedLimit    = 6
	popularLimit    = 10
	randomLimit     = 15
	homeMovieLimit  = 30
	maxSlugAttempts = 100
)

// MovieUseCase handles movie-related business logic
type MovieUseCase struct {
	repo    MovieRepo
	votes   VoteRepo
	library LibraryRepo
	reviews ReviewRepo
	catalog CatalogClient
	log     *log.Helper
}

// NewMovieUseCase creates a new MovieUseCase instance
func NewMovieUseCase(repo MovieRepo, votes VoteRepo, library LibraryRepo, reviews ReviewRepo, catalog CatalogClient, logger log.Logger) *MovieUseCase {
	return &MovieUseCase{
		repo:    repo,
		votes:   votes,
		library: library,
		reviews: reviews,
		catalog: catalog,
		log:     log.NewHelper(logger),
	}
}

// CreateMovie creates a new movie, filling blanks from the external catalog
func (uc *MovieUseCase) CreateMovie(ctx context.Context, req *CreateMovieRequest) (*Movie, error) {
	movieID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate movie ID: %w", err)
	}

	movie := &Movie{
		ID:          movieID.String(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Year:        req.Year,
		Genre:       req.Genre,
		Category:    req.Category,
		Director:    req.Director,
		Actors:      req.Actors,
		Duration:    req.Duration,
		Rating:      req.Rating,
		IsFeatured:  req.IsFeatured,
		PosterFile:  req.PosterFile,
		PosterURL:   req.PosterURL,
		VideoFile:   req.VideoFile,
		VideoURL:    req.VideoURL,
		TrailerURL:  req.TrailerURL,
	}
	if movie.Title == "" {
		return nil, ValidationError(map[string]string{"title": "This field is required."})
	}

	// Catalog data is best effort; values from the request take precedence.
	entry, err := uc.catalog.Lookup(ctx, movie.Title)
	if err != nil {
		uc.log.Warnf("catalog lookup for movie '%s' failed: %v", movie.Title, err)
	} else if entry != nil {
		mergeCatalogEntry(movie, entry)
	}

	if movie.Category == "" {
		movie.Category = DefaultCategory
	}
	if err := validateMovie(movie); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(movie.Title)
	}
	movie.Slug, err = uc.uniqueSlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateMovie(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return movie, nil
}

// EnsureMovie creates the movie unless one with the same title exists.
func (uc *MovieUseCase) EnsureMovie(ctx context.Context, req *CreateMovieRequest) (*Movie, bool, error) {
	existing, err := uc.repo.FindMovieByTitle(ctx, strings.TrimSpace(req.Title))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrMovieNotFound) {
		return nil, false, err
	}
	movie, err := uc.CreateMovie(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return movie, true, nil
}

func mergeCatalogEntry(m *Movie, e *CatalogEntry) {
	if m.Description == "" {
		m.Description = e.Description
	}
	if m.Year == 0 {
		m.Year = e.Year
	}
	if m.Genre == "" {
		m.Genre = e.Genre
	}
	if m.Category == "" {
		if c, ok := ParseCategory(e.Category); ok {
			m.Category = c
		}
	}
	if m.Director == "" {
		m.Director = e.Director
	}
	if m.Actors == "" {
		m.Actors = e.Actors
	}
	if m.Duration == "" {
		m.Duration = e.Duration
	}
	if m.PosterURL == "" {
		m.PosterURL = e.PosterURL
	}
	if m.TrailerURL == "" {
		m.TrailerURL = e.TrailerURL
	}
}

func validateMovie(m *Movie) error {
	fields := map[string]string{}
	if !m.Category.Valid() {
		fields["category"] = fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", m.Category)
	}
	if m.Year < 0 {
		fields["year"] = "Ensure this value is greater than or equal to 0."
	}
	if m.Rating < 0 || m.Rating > 10 {
		fields["rating"] = "Ensure this value is between 0 and 10."
	}
	if len(fields) > 0 {
		return ValidationError(fields)
	}
	return nil
}

func (uc *MovieUseCase) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "movie"
	}
	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		exists, err := uc.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	return "", fmt.Errorf("no free slug for %q", base)
}

// GetMovie retrieves a movie by id
func (uc *MovieUseCase) GetMovie(ctx context.Context, id string) (*Movie, error) {
	return uc.repo.GetMovie(ctx, id)
}

// Detail retrieves a movie by slug together with related movies, reviews and,
// when userID is set, the caller's own state.
func (uc *MovieUseCase) Detail(ctx context.Context, slug, userID string) (*MovieDetail, error) {
	movie, err := uc.repo.GetMovieBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	related, err := uc.repo.ListMovies(ctx, &MovieFilter{ExcludeID: movie.ID}, 0, relatedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list related movies: %w", err)
	}
	reviews, err := uc.reviews.ListMovieReviews(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	detail := &MovieDetail{
		Movie:   movie,
		Related: related,
		Reviews: reviews,
	}
	if userID == "" {
		return detail, nil
	}

	if detail.UserVote, err = uc.votes.GetVote(ctx, userID, movie.ID); err != nil {
		return nil, err
	}
	if detail.IsFavorite, err = uc.library.Exists(ctx, ListFavorites, userID, movie.ID); err != nil {
		return nil, err
	}
	if detail.InWatchlist, err = uc.library.Exists(ctx, ListWatchlist, userID, movie.ID); err != nil {
		return nil, err
	}
	for _, r := range reviews {
		if r.UserID == userID {
			detail.UserReview = r
			break
		}
	}
	return detail, nil
}

// Search matches q against title, description, genre, director and actors.
// An empty query lists everything, newest first.
func (uc *MovieUseCase) Search(ctx context.Context, q string, page int) (*MovieList, error) {
	q = strings.TrimSpace(q)
	filter := &MovieFilter{Query: q, Order: OrderNewest}
	if q != "" {
		filter.Order = OrderRelevance
	}
	return uc.list(ctx, filter, page)
}

// ListByCategory lists movies of a category. Unknown categories give an
// empty page rather than an error.
func (uc *MovieUseCase) ListByCategory(ctx context.Context, raw string, page int) (Category, *MovieList, error) {
	category, ok := ParseCategory(raw)
	if !ok {
		return category, &MovieList{Items: []*Movie{}, Page: NewPage(0, page)}, nil
	}
	list, err := uc.list(ctx, &MovieFilter{Category: category}, page)
	return category, list, err
}

// ListByGenre lists movies whose genre contains genre, ignoring case.
func (uc *MovieUseCase) ListByGenre(ctx context.Context, genre string, page int) (*MovieList, error) {
	return uc.list(ctx, &MovieFilter{Genre: strings.TrimSpace(genre)}, page)
}

func (uc *MovieUseCase) list(ctx context.Context, filter *MovieFilter, page int) (*MovieList, error) {
	total, err := uc.repo.CountMovies(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count movies: %w", err)
	}
	p := NewPage(total, page)
	if total == 0 {
		return &MovieList{Items: []*Movie{}, Page: p}, nil
	}
	items, err := uc.repo.ListMovies(ctx, filter, p.Offset(), p.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return &MovieList{Items: items, Page: p}, nil
}

// Featured returns the first featured movie, nil when none is featured.
func (uc *MovieUseCase) Featured(ctx context.Context) (*Movie, error) {
	return uc.repo.GetFeatured(ctx)
}

// Popular returns the top movies by RankingScore; movies nobody voted on are
// never included.
func (uc *MovieUseCase) Popular(ctx context.Context) ([]*Movie, error) {
	movies, err := uc.repo.ListPopular(ctx, popularLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular movies: %w", err)
	}
	return movies, nil
}

// Random returns a fresh uniform sample of movies.
func (uc *MovieUseCase) Random(ctx context.Context) ([]*Movie, error) {
	movies, err := uc.repo.ListRandom(ctx, randomLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list random movies: %w", err)
	}
	return movies, nil
}

// Home builds the homepage: the featured movie, the newest movies grouped by
// category and the popular list.
func (uc *MovieUseCase) Home(ctx context.Context) (*Home, error) {
	featured, err := uc.repo.GetFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured movie: %w", err)
	}
	recent, err := uc.repo.ListMovies(ctx, &MovieFilter{Order: OrderNewest}, 0, homeMovieLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	popular, err := uc.Popular(ctx)
	if err != nil {
		return nil, err
	}
	return &Home{
		Featured: featured,
		Sections: GroupByCategory(recent),
		Popular:  popular,
	}, nil
}

// GroupByCategory groups movies by category keeping encounter order, both of
// the groups and within each group.
func GroupByCategory(movies []*Movie) []*CategorySection {
	var sections []*CategorySection
	index := map[Category]*CategorySection{}
	for _, m := range movies {
		s, ok := index[m.Category]
		if !ok {
			s = &CategorySection{Category: m.Category}
			index[m.Category] = s
			sections = append(sections, s)
		}
		s.Movies = append(s.Movies, m)
	}
	return sections
}

// Prune keeps the keep most recent movies and deletes the rest.
func (uc *MovieUseCase) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, ValidationError(map[string]string{"count": "Ensure this value is greater than or equal to 0."})
	}
	deleted, err := uc.repo.PruneMovies(ctx, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune movies: %w", err)
	}
	uc.log.Infof("pruned %d movies, kept at most %d", deleted, keep)
	return deleted, nil
}
