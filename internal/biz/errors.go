package biz

import (
	v1 "cinemadia/api/cinemadia/v1"
)

// Domain errors. They are kratos errors, so the transport renders them with
// their status code and reason.
var (
	ErrMovieNotFound          = v1.ErrorMovieNotFound("movie not found")
	ErrReviewNotFound         = v1.ErrorReviewNotFound("review not found")
	ErrUserNotFound           = v1.ErrorUserNotFound("user not found")
	ErrSessionNotFound        = v1.ErrorSessionNotFound("session not found or expired")
	ErrAuthenticationRequired = v1.ErrorAuthenticationRequired("authentication required")
	ErrInvalidCredentials     = v1.ErrorInvalidCredentials("invalid username or password")
	ErrInvalidVoteType        = v1.ErrorInvalidArgument("vote_type must be one of: like, dislike")
	ErrReviewConflict         = v1.ErrorReviewConflict("you have already reviewed this movie")
	ErrUsernameTaken          = ValidationError(map[string]string{
		"username": "A user with that username already exists.",
	})
)

// ValidationError reports field-level problems; fields maps a field name to
// its message.
func ValidationError(fields map[string]string) error {
	return v1.ErrorValidationFailed("validation failed").WithMetadata(fields)
}
