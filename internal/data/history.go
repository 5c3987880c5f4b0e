package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinemadia/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

type historyRepo struct {
	data *Data
	log  *log.Helper
}

// NewHistoryRepo creates a new watch history repository
func NewHistoryRepo(data *Data, logger log.Logger) biz.HistoryRepo {
	return &historyRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *historyRepo) AppendWatch(ctx context.Context, entry *biz.WatchEntry) error {
	entry.WatchedAt = time.Now()
	row := &WatchHistory{
		ID:        entry.ID,
		UserID:    entry.UserID,
		MovieID:   entry.MovieID,
		WatchedAt: entry.WatchedAt,
		Progress:  entry.Progress,
	}
	if err := r.data.DB(ctx).Omit("User", "Movie").Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return biz.ErrMovieNotFound
		}
		return fmt.Errorf("failed to append watch history: %w", err)
	}
	return nil
}

func (r *historyRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*biz.WatchEntry, error) {
	var rows []WatchHistory
	err := r.data.DB(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list watch history: %w", err)
	}

	entries := make([]*biz.WatchEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, &biz.WatchEntry{
			ID:        rows[i].ID,
			UserID:    rows[i].UserID,
			MovieID:   rows[i].MovieID,
			Movie:     modelToMovie(&rows[i].Movie),
			WatchedAt: rows[i].WatchedAt,
			Progress:  rows[i].Progress,
		})
	}
	return entries, nil
}
