package data

import (
	"context"
	"errors"
	"fmt"

	"cinemadia/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

type libraryRepo struct {
	data *Data
	log  *log.Helper
}

// NewLibraryRepo creates a repository over the favorites and watchlist tables
func NewLibraryRepo(data *Data, logger log.Logger) biz.LibraryRepo {
	return &libraryRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// libraryModel returns an empty row of the table backing kind.
func libraryModel(kind biz.ListKind) (interface{ TableName() string }, error) {
	switch kind {
	case biz.ListFavorites:
		return &Favorite{}, nil
	case biz.ListWatchlist:
		return &Watchlist{}, nil
	default:
		return nil, fmt.Errorf("unknown list %q", kind)
	}
}

func (r *libraryRepo) table(ctx context.Context, kind biz.ListKind) (*gorm.DB, error) {
	model, err := libraryModel(kind)
	if err != nil {
		return nil, err
	}
	return r.data.DB(ctx).Model(model), nil
}

func (r *libraryRepo) Exists(ctx context.Context, kind biz.ListKind, userID, movieID string) (bool, error) {
	db, err := r.table(ctx, kind)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.Where("user_id = ? AND movie_id = ?", userID, movieID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s: %w", kind, err)
	}
	return count > 0, nil
}

func (r *libraryRepo) Add(ctx context.Context, kind biz.ListKind, userID, movieID string) error {
	var row interface{}
	switch kind {
	case biz.ListFavorites:
		row = &Favorite{UserID: userID, MovieID: movieID}
	case biz.ListWatchlist:
		row = &Watchlist{UserID: userID, MovieID: movieID}
	default:
		return fmt.Errorf("unknown list %q", kind)
	}
	if err := r.data.DB(ctx).Omit("User", "Movie").Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return biz.ErrMovieNotFound
		}
		return fmt.Errorf("failed to add to %s: %w", kind, err)
	}
	return nil
}

func (r *libraryRepo) Remove(ctx context.Context, kind biz.ListKind, userID, movieID string) error {
	model, err := libraryModel(kind)
	if err != nil {
		return err
	}
	if err := r.data.DB(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(model).Error; err != nil {
		return fmt.Errorf("failed to remove from %s: %w", kind, err)
	}
	return nil
}

func (r *libraryRepo) CountForMovie(ctx context.Context, kind biz.ListKind, movieID string) (int64, error) {
	db, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := db.Where("movie_id = ?", movieID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}
	return count, nil
}

func (r *libraryRepo) CountForUser(ctx context.Context, kind biz.ListKind, userID string) (int64, error) {
	db, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := db.Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}
	return count, nil
}

func (r *libraryRepo) ListMovies(ctx context.Context, kind biz.ListKind, userID string, offset, limit int) ([]*biz.Movie, error) {
	model, err := libraryModel(kind)
	if err != nil {
		return nil, err
	}

	var rows []Movie
	err = r.data.DB(ctx).
		Model(&Movie{}).
		Select("movies.*").
		Joins(fmt.Sprintf("JOIN %s l ON l.movie_id = movies.id", model.TableName())).
		Where("l.user_id = ?", userID).
		Order("l.created_at DESC").
		Order("l.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	return modelsToMovies(rows), nil
}
