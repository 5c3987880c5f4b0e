package data

import (
	"context"
	"errors"
	"fmt"

	"cinemadia/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
)

type voteRepo struct {
	data *Data
	log  *log.Helper
}

// NewVoteRepo creates a new vote repository
func NewVoteRepo(data *Data, logger log.Logger) biz.VoteRepo {
	return &voteRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *voteRepo) GetVote(ctx context.Context, userID, movieID string) (biz.VoteType, error) {
	var v MovieVote
	err := r.data.DB(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return biz.VoteNone, nil
	}
	if err != nil {
		return biz.VoteNone, fmt.Errorf("failed to get vote: %w", err)
	}
	return biz.VoteType(v.VoteType), nil
}

func (r *voteRepo) SaveVote(ctx context.Context, userID, movieID string, from, to biz.VoteType) error {
	db := r.data.DB(ctx)
	var err error
	switch {
	case from == to:
		return nil
	case from == biz.VoteNone:
		err = db.Omit("User", "Movie").Create(&MovieVote{
			UserID:   userID,
			MovieID:  movieID,
			VoteType: string(to),
		}).Error
	case to == biz.VoteNone:
		err = db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&MovieVote{}).Error
	default:
		err = db.Model(&MovieVote{}).
			Where("user_id = ? AND movie_id = ?", userID, movieID).
			Update("vote_type", string(to)).Error
	}
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}
