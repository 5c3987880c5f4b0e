package data

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinemadia/internal/biz"
	"cinemadia/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	movieCacheTTL   = 15 * time.Minute
	popularCacheTTL = 5 * time.Minute
	popularCacheKey = "movies:popular"

	// evictAgainAfter delays the second delete of an invalidation.
	evictAgainAfter = time.Second
)

// rankingExpr is the popular-list score. Integer division truncates each term.
const rankingExpr = "(likes_count * 100 / (likes_count + dislikes_count)) + (likes_count + dislikes_count) / 10"

type movieRepo struct {
	data       *Data
	log        *log.Helper
	evictAgain time.Duration
}

// NewMovieRepo creates a new movie repository
func NewMovieRepo(data *Data, logger log.Logger) biz.MovieRepo {
	return &movieRepo{
		data:       data,
		log:        log.NewHelper(logger),
		evictAgain: evictAgainAfter,
	}
}

func movieCacheKey(slug string) string {
	return "movie:slug:" + slug
}

func (r *movieRepo) CreateMovie(ctx context.Context, movie *biz.Movie) error {
	dbMovie := movieToModel(movie)

	if err := r.data.DB(ctx).Create(dbMovie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return biz.ValidationError(map[string]string{"slug": "Movie with this Slug already exists."})
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	movie.CreatedAt = dbMovie.CreatedAt
	movie.UpdatedAt = dbMovie.UpdatedAt

	r.InvalidateMovie(ctx, movie)
	return nil
}

func (r *movieRepo) GetMovie(ctx context.Context, id string) (*biz.Movie, error) {
	var m Movie
	if err := r.data.DB(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, movieError(err)
	}
	return modelToMovie(&m), nil
}

func (r *movieRepo) GetMovieBySlug(ctx context.Context, slug string) (*biz.Movie, error) {
	// Try cache first if Redis is available
	if r.data.rdb != nil {
		cached, err := r.data.rdb.Get(ctx, movieCacheKey(slug)).Bytes()
		if err == nil {
			var movie biz.Movie
			if err := json.Unmarshal(cached, &movie); err == nil {
				metrics.RecordCache("movie", true)
				return &movie, nil
			}
		}
		metrics.RecordCache("movie", false)
	}

	var m Movie
	if err := r.data.DB(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, movieError(err)
	}
	movie := modelToMovie(&m)

	if r.data.rdb != nil {
		if payload, err := json.Marshal(movie); err == nil {
			r.data.rdb.Set(ctx, movieCacheKey(slug), payload, movieCacheTTL)
		}
	}

	return movie, nil
}

func (r *movieRepo) FindMovieByTitle(ctx context.Context, title string) (*biz.Movie, error) {
	var m Movie
	err := r.data.DB(ctx).Where("title = ?", title).Order("id ASC").First(&m).Error
	if err != nil {
		return nil, movieError(err)
	}
	return modelToMovie(&m), nil
}

func (r *movieRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.data.DB(ctx).Model(&Movie{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func (r *movieRepo) filtered(ctx context.Context, filter *biz.MovieFilter) *gorm.DB {
	db := r.data.DB(ctx).Model(&Movie{})

	if filter.Query != "" {
		term := likePattern(filter.Query)
		db = db.Where(
			"title ILIKE ? OR description ILIKE ? OR genre ILIKE ? OR director ILIKE ? OR actors ILIKE ?",
			term, term, term, term, term,
		)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", string(filter.Category))
	}
	if filter.Genre != "" {
		db = db.Where("genre ILIKE ?", likePattern(filter.Genre))
	}
	if filter.ExcludeID != "" {
		db = db.Where("id <> ?", filter.ExcludeID)
	}

	return db
}

func (r *movieRepo) CountMovies(ctx context.Context, filter *biz.MovieFilter) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return total, nil
}

func (r *movieRepo) ListMovies(ctx context.Context, filter *biz.MovieFilter, offset, limit int) ([]*biz.Movie, error) {
	db := r.filtered(ctx, filter)

	switch filter.Order {
	case biz.OrderRelevance:
		db = db.Order("rating DESC").Order("year DESC").Order("id ASC")
	default:
		db = db.Order("created_at DESC").Order("id DESC")
	}

	var rows []Movie
	if err := db.Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return modelsToMovies(rows), nil
}

func (r *movieRepo) GetFeatured(ctx context.Context) (*biz.Movie, error) {
	var rows []Movie
	err := r.data.DB(ctx).Where("is_featured = ?", true).Order("id ASC").Limit(1).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get featured movie: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return modelToMovie(&rows[0]), nil
}

func (r *movieRepo) ListPopular(ctx context.Context, limit int) ([]*biz.Movie, error) {
	if r.data.rdb != nil {
		cached, err := r.data.rdb.Get(ctx, popularCacheKey).Bytes()
		if err == nil {
			var movies []*biz.Movie
			if err := json.Unmarshal(cached, &movies); err == nil && len(movies) <= limit {
				metrics.RecordCache("popular", true)
				return movies, nil
			}
		}
		metrics.RecordCache("popular", false)
	}

	var rows []Movie
	err := r.data.DB(ctx).
		Where("likes_count + dislikes_count > 0").
		Order(rankingExpr + " DESC").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list popular movies: %w", err)
	}
	movies := modelsToMovies(rows)

	if r.data.rdb != nil {
		if payload, err := json.Marshal(movies); err == nil {
			r.data.rdb.Set(ctx, popularCacheKey, payload, popularCacheTTL)
		}
	}

	return movies, nil
}

func (r *movieRepo) ListRandom(ctx context.Context, limit int) ([]*biz.Movie, error) {
	var rows []Movie
	if err := r.data.DB(ctx).Order("random()").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list random movies: %w", err)
	}
	return modelsToMovies(rows), nil
}

func (r *movieRepo) LockMovie(ctx context.Context, id string) (*biz.Movie, error) {
	var m Movie
	err := r.data.DB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, movieError(err)
	}
	return modelToMovie(&m), nil
}

func (r *movieRepo) UpdateVoteCounts(ctx context.Context, id string, counts biz.VoteCounts) error {
	err := r.data.DB(ctx).Model(&Movie{}).Where("id = ?", id).Updates(map[string]interface{}{
		"likes_count":    counts.Likes,
		"dislikes_count": counts.Dislikes,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update vote counters: %w", err)
	}
	return nil
}

func (r *movieRepo) UpdateRating(ctx context.Context, id string, rating float64) error {
	err := r.data.DB(ctx).Model(&Movie{}).Where("id = ?", id).Update("rating", rating).Error
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	return nil
}

func (r *movieRepo) InvalidateMovie(ctx context.Context, movie *biz.Movie) {
	if r.data.rdb == nil {
		return
	}
	keys := []string{popularCacheKey}
	if movie != nil && movie.Slug != "" {
		keys = append(keys, movieCacheKey(movie.Slug))
	}
	r.deleteKeys(ctx, keys)

	// A read that missed the cache before the write committed can still put
	// the old row back; the second delete evicts it.
	time.AfterFunc(r.evictAgain, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		r.deleteKeys(ctx, keys)
	})
}

func (r *movieRepo) deleteKeys(ctx context.Context, keys []string) {
	if err := r.data.rdb.Del(ctx, keys...).Err(); err != nil {
		r.log.Warnf("failed to invalidate movie cache: %v", err)
	}
}

func (r *movieRepo) PruneMovies(ctx context.Context, keep int) (int64, error) {
	var victims []Movie
	err := r.data.DB(ctx).
		Select("id", "slug").
		Order("id DESC").
		Offset(keep).
		Find(&victims).Error
	if err != nil {
		return 0, fmt.Errorf("failed to select movies to prune: %w", err)
	}
	if len(victims) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(victims))
	for _, v := range victims {
		ids = append(ids, v.ID)
	}
	res := r.data.DB(ctx).Where("id IN ?", ids).Delete(&Movie{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to prune movies: %w", res.Error)
	}

	for i := range victims {
		r.InvalidateMovie(ctx, &biz.Movie{Slug: victims[i].Slug})
	}
	return res.RowsAffected, nil
}

func movieError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return biz.ErrMovieNotFound
	}
	return fmt.Errorf("failed to get movie: %w", err)
}

// likePattern escapes LIKE wildcards in s and wraps it for a substring match.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + escaped + "%"
}

func movieToModel(m *biz.Movie) *Movie {
	return &Movie{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Description:   m.Description,
		Year:          m.Year,
		Genre:         m.Genre,
		Category:      string(m.Category),
		Director:      m.Director,
		Actors:        m.Actors,
		Duration:      m.Duration,
		Rating:        m.Rating,
		IsFeatured:    m.IsFeatured,
		PosterFile:    m.PosterFile,
		PosterURL:     m.PosterURL,
		VideoFile:     m.VideoFile,
		VideoURL:      m.VideoURL,
		TrailerURL:    m.TrailerURL,
		LikesCount:    m.LikesCount,
		DislikesCount: m.DislikesCount,
	}
}

func modelToMovie(m *Movie) *biz.Movie {
	return &biz.Movie{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Description:   m.Description,
		Year:          m.Year,
		Genre:         m.Genre,
		Category:      biz.Category(m.Category),
		Director:      m.Director,
		Actors:        m.Actors,
		Duration:      m.Duration,
		Rating:        m.Rating,
		IsFeatured:    m.IsFeatured,
		PosterFile:    m.PosterFile,
		PosterURL:     m.PosterURL,
		VideoFile:     m.VideoFile,
		VideoURL:      m.VideoURL,
		TrailerURL:    m.TrailerURL,
		LikesCount:    m.LikesCount,
		DislikesCount: m.DislikesCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func modelsToMovies(rows []Movie) []*biz.Movie {
	movies := make([]*biz.Movie, 0, len(rows))
	for i := range rows {
		movies = append(movies, modelToMovie(&rows[i]))
	}
	return movies
}
