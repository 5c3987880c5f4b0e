package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinemadia/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviewRepo struct {
	data *Data
	log  *log.Helper
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(data *Data, logger log.Logger) biz.ReviewRepo {
	return &reviewRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// reviewRow is a review joined with its author and like count.
type reviewRow struct {
	ID         string
	MovieID    string
	UserID     string
	Username   string
	Rating     int
	Comment    string
	LikesCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *reviewRepo) CreateReview(ctx context.Context, review *biz.Review) error {
	dbReview := &Review{
		ID:      review.ID,
		UserID:  review.UserID,
		MovieID: review.MovieID,
		Rating:  review.Rating,
		Comment: review.Comment,
	}
	if err := r.data.DB(ctx).Omit("User", "Movie").Create(dbReview).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return biz.ErrReviewConflict
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	review.CreatedAt = dbReview.CreatedAt
	review.UpdatedAt = dbReview.UpdatedAt
	return nil
}

func (r *reviewRepo) rows(ctx context.Context) *gorm.DB {
	return r.data.DB(ctx).
		Table("reviews").
		Select("reviews.id, reviews.movie_id, reviews.user_id, users.username, reviews.rating, reviews.comment, " +
			"COUNT(review_likes.user_id) AS likes_count, reviews.created_at, reviews.updated_at").
		Joins("JOIN users ON users.id = reviews.user_id").
		Joins("LEFT JOIN review_likes ON review_likes.review_id = reviews.id").
		Group("reviews.id, users.username")
}

func (r *reviewRepo) GetReview(ctx context.Context, id string) (*biz.Review, error) {
	var rows []reviewRow
	if err := r.rows(ctx).Where("reviews.id = ?", id).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if len(rows) == 0 {
		return nil, biz.ErrReviewNotFound
	}
	return rowToReview(&rows[0]), nil
}

func (r *reviewRepo) LockReview(ctx context.Context, id string) error {
	var rows []Review
	err := r.data.DB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		Find(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to lock review: %w", err)
	}
	if len(rows) == 0 {
		return biz.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepo) FindUserReview(ctx context.Context, userID, movieID string) (*biz.Review, error) {
	var rows []reviewRow
	err := r.rows(ctx).
		Where("reviews.user_id = ? AND reviews.movie_id = ?", userID, movieID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rowToReview(&rows[0]), nil
}

func (r *reviewRepo) AverageRating(ctx context.Context, movieID string) (float64, int64, error) {
	var result struct {
		Average float64
		Count   int64
	}

	err := r.data.DB(ctx).
		Model(&Review{}).
		Select("COALESCE(ROUND(AVG(rating)::numeric, 1), 0) AS average, COUNT(*) AS count").
		Where("movie_id = ?", movieID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get rating aggregate: %w", err)
	}

	return result.Average, result.Count, nil
}

func (r *reviewRepo) ListMovieReviews(ctx context.Context, movieID string) ([]*biz.Review, error) {
	var rows []reviewRow
	err := r.rows(ctx).
		Where("reviews.movie_id = ?", movieID).
		Order("reviews.created_at DESC").
		Order("reviews.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return rowsToReviews(rows), nil
}

func (r *reviewRepo) ListUserReviews(ctx context.Context, userID string, limit int) ([]*biz.Review, error) {
	var rows []reviewRow
	err := r.rows(ctx).
		Where("reviews.user_id = ?", userID).
		Order("reviews.created_at DESC").
		Order("reviews.id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user reviews: %w", err)
	}
	return rowsToReviews(rows), nil
}

func (r *reviewRepo) CountUserReviews(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.data.DB(ctx).Model(&Review{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

func (r *reviewRepo) ToggleLike(ctx context.Context, reviewID, userID string) (bool, error) {
	db := r.data.DB(ctx)
	res := db.Where("review_id = ? AND user_id = ?", reviewID, userID).Delete(&ReviewLike{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to remove review like: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err := db.Omit("Review", "User").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ReviewLike{ReviewID: reviewID, UserID: userID}).Error
	if err != nil {
		return false, fmt.Errorf("failed to like review: %w", err)
	}
	return true, nil
}

func (r *reviewRepo) CountLikes(ctx context.Context, reviewID string) (int64, error) {
	var count int64
	if err := r.data.DB(ctx).Model(&ReviewLike{}).Where("review_id = ?", reviewID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count review likes: %w", err)
	}
	return count, nil
}

func rowToReview(row *reviewRow) *biz.Review {
	return &biz.Review{
		ID:         row.ID,
		MovieID:    row.MovieID,
		UserID:     row.UserID,
		Username:   row.Username,
		Rating:     row.Rating,
		Comment:    row.Comment,
		LikesCount: row.LikesCount,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func rowsToReviews(rows []reviewRow) []*biz.Review {
	reviews := make([]*biz.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, rowToReview(&rows[i]))
	}
	return reviews
}
