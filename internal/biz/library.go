package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// LibraryUseCase handles favorites, the watchlist and watch history
type LibraryUseCase struct {
	tx      Transaction
	movies  MovieRepo
	library LibraryRepo
	history HistoryRepo
	log     *log.Helper
}

// NewLibraryUseCase creates a new LibraryUseCase instance
func NewLibraryUseCase(tx Transaction, movies MovieRepo, library LibraryRepo, history HistoryRepo, logger log.Logger) *LibraryUseCase {
	return &LibraryUseCase{
		tx:      tx,
		movies:  movies,
		library: library,
		history: history,
		log:     log.NewHelper(logger),
	}
}

// toggle flips the presence of (user, movie) in a list and reports whether
// the pair is present afterwards.
func (uc *LibraryUseCase) toggle(ctx context.Context, kind ListKind, userID, movieID string, after func(ctx context.Context) error) (bool, error) {
	if userID == "" {
		return false, ErrAuthenticationRequired
	}
	var present bool
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := uc.movies.LockMovie(ctx, movieID); err != nil {
			return err
		}
		exists, err := uc.library.Exists(ctx, kind, userID, movieID)
		if err != nil {
			return err
		}
		if exists {
			err = uc.library.Remove(ctx, kind, userID, movieID)
		} else {
			err = uc.library.Add(ctx, kind, userID, movieID)
		}
		if err != nil {
			return err
		}
		present = !exists
		if after != nil {
			return after(ctx)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle %s: %w", kind, err)
	}
	return present, nil
}

// ToggleFavorite adds the movie to the caller's favorites or removes it.
func (uc *LibraryUseCase) ToggleFavorite(ctx context.Context, userID, movieID string) (*FavoriteResult, error) {
	var count int64
	present, err := uc.toggle(ctx, ListFavorites, userID, movieID, func(ctx context.Context) error {
		var err error
		count, err = uc.library.CountForMovie(ctx, ListFavorites, movieID)
		return err
	})
	if err != nil {
		return nil, err
	}
	message := "Removed from favorites"
	if present {
		message = "Added to favorites"
	}
	return &FavoriteResult{IsFavorite: present, Message: message, FavoritesCount: count}, nil
}

// ToggleWatchlist adds the movie to the caller's watchlist or removes it.
func (uc *LibraryUseCase) ToggleWatchlist(ctx context.Context, userID, movieID string) (*WatchlistResult, error) {
	present, err := uc.toggle(ctx, ListWatchlist, userID, movieID, nil)
	if err != nil {
		return nil, err
	}
	message := "Removed from watchlist"
	if present {
		message = "Added to watchlist"
	}
	return &WatchlistResult{InWatchlist: present, Message: message}, nil
}

// List returns one page of the caller's favorites or watchlist, newest first.
func (uc *LibraryUseCase) List(ctx context.Context, kind ListKind, userID string, page int) (*MovieList, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	total, err := uc.library.CountForUser(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", kind, err)
	}
	p := NewPage(total, page)
	if total == 0 {
		return &MovieList{Items: []*Movie{}, Page: p}, nil
	}
	items, err := uc.library.ListMovies(ctx, kind, userID, p.Offset(), p.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	return &MovieList{Items: items, Page: p}, nil
}

// RecordWatch appends a watch event with the given progress percentage.
func (uc *LibraryUseCase) RecordWatch(ctx context.Context, userID, movieID string, progress int) (*WatchEntry, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	if progress < 0 || progress > 100 {
		return nil, ValidationError(map[string]string{"progress": "Ensure this value is between 0 and 100."})
	}
	movie, err := uc.movies.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate watch ID: %w", err)
	}
	entry := &WatchEntry{
		ID:       id.String(),
		UserID:   userID,
		MovieID:  movieID,
		Movie:    movie,
		Progress: progress,
	}
	if err := uc.history.AppendWatch(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record watch: %w", err)
	}
	return entry, nil
}
