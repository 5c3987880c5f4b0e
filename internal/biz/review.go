package biz

import (
	"context"
	"fmt"
	"strings"

	"cinemadia/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

const (
	MinReviewRating = 1
	MaxReviewRating = 10
)

// ReviewUseCase handles review-related business logic
type ReviewUseCase struct {
	tx      Transaction
	movies  MovieRepo
	reviews ReviewRepo
	log     *log.Helper
}

// NewReviewUseCase creates a new ReviewUseCase instance
func NewReviewUseCase(tx Transaction, movies MovieRepo, reviews ReviewRepo, logger log.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		tx:      tx,
		movies:  movies,
		reviews: reviews,
		log:     log.NewHelper(logger),
	}
}

// Submit stores a review and recomputes the movie rating as the mean of all
// its reviews rounded to one decimal. A second review by the same user for
// the same movie is rejected with ErrReviewConflict.
func (uc *ReviewUseCase) Submit(ctx context.Context, userID, movieID string, rating int, comment string) (*Review, *Movie, error) {
	if userID == "" {
		return nil, nil, ErrAuthenticationRequired
	}
	comment = strings.TrimSpace(comment)
	fields := map[string]string{}
	if rating < MinReviewRating || rating > MaxReviewRating {
		fields["rating"] = fmt.Sprintf("Ensure this value is between %d and %d.", MinReviewRating, MaxReviewRating)
	}
	if comment == "" {
		fields["comment"] = "This field is required."
	}
	if len(fields) > 0 {
		return nil, nil, ValidationError(fields)
	}

	reviewID, err := uuid.NewV7()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate review ID: %w", err)
	}
	review := &Review{
		ID:      reviewID.String(),
		MovieID: movieID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}

	var movie *Movie
	err = uc.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		movie, err = uc.movies.LockMovie(ctx, movieID)
		if err != nil {
			return err
		}
		existing, err := uc.reviews.FindUserReview(ctx, userID, movieID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrReviewConflict
		}
		if err := uc.reviews.CreateReview(ctx, review); err != nil {
			return err
		}

		avg, count, err := uc.reviews.AverageRating(ctx, movieID)
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		if err := uc.movies.UpdateRating(ctx, movieID, avg); err != nil {
			return err
		}
		movie.Rating = avg
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to submit review: %w", err)
	}

	metrics.ReviewsTotal.Inc()
	uc.movies.InvalidateMovie(ctx, movie)
	return review, movie, nil
}

// Form returns the movie being reviewed and the caller's review, if any.
func (uc *ReviewUseCase) Form(ctx context.Context, userID, movieID string) (*Movie, *Review, error) {
	if userID == "" {
		return nil, nil, ErrAuthenticationRequired
	}
	movie, err := uc.movies.GetMovie(ctx, movieID)
	if err != nil {
		return nil, nil, err
	}
	review, err := uc.reviews.FindUserReview(ctx, userID, movieID)
	if err != nil {
		return nil, nil, err
	}
	return movie, review, nil
}

// ToggleLike adds the caller to the review's likers, or removes them.
func (uc *ReviewUseCase) ToggleLike(ctx context.Context, userID, reviewID string) (*ReviewLikeResult, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	var result ReviewLikeResult
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		if err := uc.reviews.LockReview(ctx, reviewID); err != nil {
			return err
		}
		liked, err := uc.reviews.ToggleLike(ctx, reviewID, userID)
		if err != nil {
			return err
		}
		count, err := uc.reviews.CountLikes(ctx, reviewID)
		if err != nil {
			return err
		}
		result = ReviewLikeResult{Liked: liked, LikesCount: count}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle review like: %w", err)
	}
	return &result, nil
}
