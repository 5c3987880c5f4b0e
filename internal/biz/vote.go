package biz

import (
	"context"
	"fmt"

	"cinemadia/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
)

// VoteType is a user's vote on a movie. VoteNone means no vote row exists.
type VoteType string

const (
	VoteNone    VoteType = ""
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
)

// ParseVoteType accepts only "like" and "dislike".
func ParseVoteType(s string) (VoteType, bool) {
	switch VoteType(s) {
	case VoteLike, VoteDislike:
		return VoteType(s), true
	default:
		return VoteNone, false
	}
}

// ApplyVote is the vote toggle state machine. Submitting the current vote
// again withdraws it, submitting the other type switches it. Counters never
// drop below zero.
func ApplyVote(current, requested VoteType, counts VoteCounts) (VoteType, VoteCounts) {
	next := counts
	switch {
	case current == requested:
		decrement(&next, current)
		return VoteNone, next
	case current == VoteNone:
		increment(&next, requested)
		return requested, next
	default:
		decrement(&next, current)
		increment(&next, requested)
		return requested, next
	}
}

func increment(c *VoteCounts, t VoteType) {
	switch t {
	case VoteLike:
		c.Likes++
	case VoteDislike:
		c.Dislikes++
	}
}

func decrement(c *VoteCounts, t VoteType) {
	switch t {
	case VoteLike:
		if c.Likes > 0 {
			c.Likes--
		}
	case VoteDislike:
		if c.Dislikes > 0 {
			c.Dislikes--
		}
	}
}

// PopularityScore is like_percentage + min(total/10, 50), 0 without votes.
func PopularityScore(likes, dislikes int64) float64 {
	total := likes + dislikes
	if total <= 0 {
		return 0
	}
	likePercentage := float64(likes) / float64(total) * 100
	volume := float64(total) / 10
	if volume > 50 {
		volume = 50
	}
	return likePercentage + volume
}

// RankingScore is the integer score the popular list is ordered by:
// floor(likes*100/total) + floor(total/10). It intentionally differs from
// PopularityScore; the popular ordering depends on the truncation.
func RankingScore(likes, dislikes int64) int64 {
	total := likes + dislikes
	if total <= 0 {
		return 0
	}
	return likes*100/total + total/10
}

// VoteUseCase handles like/dislike votes
type VoteUseCase struct {
	tx     Transaction
	movies MovieRepo
	votes  VoteRepo
	log    *log.Helper
}

// NewVoteUseCase creates a new VoteUseCase instance
func NewVoteUseCase(tx Transaction, movies MovieRepo, votes VoteRepo, logger log.Logger) *VoteUseCase {
	return &VoteUseCase{
		tx:     tx,
		movies: movies,
		votes:  votes,
		log:    log.NewHelper(logger),
	}
}

// Toggle applies a like/dislike request from userID to a movie. The movie row
// is locked for the whole read-modify-write so concurrent toggles serialize.
func (uc *VoteUseCase) Toggle(ctx context.Context, userID, movieID, voteType string) (*VoteResult, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	requested, ok := ParseVoteType(voteType)
	if !ok {
		return nil, ErrInvalidVoteType
	}

	var (
		movie    *Movie
		previous VoteType
		result   *VoteResult
	)
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		movie, err = uc.movies.LockMovie(ctx, movieID)
		if err != nil {
			return err
		}
		previous, err = uc.votes.GetVote(ctx, userID, movieID)
		if err != nil {
			return err
		}

		next, counts := ApplyVote(previous, requested, VoteCounts{
			Likes:    movie.LikesCount,
			Dislikes: movie.DislikesCount,
		})
		if err := uc.votes.SaveVote(ctx, userID, movieID, previous, next); err != nil {
			return err
		}
		if err := uc.movies.UpdateVoteCounts(ctx, movieID, counts); err != nil {
			return err
		}

		result = &VoteResult{Counts: counts, UserVote: next}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle vote: %w", err)
	}

	metrics.RecordVote(string(previous), string(result.UserVote))
	uc.movies.InvalidateMovie(ctx, movie)
	return result, nil
}

// UserVote returns the caller's current vote on a movie.
func (uc *VoteUseCase) UserVote(ctx context.Context, userID, movieID string) (VoteType, error) {
	if userID == "" {
		return VoteNone, nil
	}
	return uc.votes.GetVote(ctx, userID, movieID)
}
