package v1

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

// ErrorReason enumerates the reasons carried by every error the API returns.
type ErrorReason string

const (
	ErrorReason_MOVIE_NOT_FOUND         ErrorReason = "MOVIE_NOT_FOUND"
	ErrorReason_REVIEW_NOT_FOUND        ErrorReason = "REVIEW_NOT_FOUND"
	ErrorReason_USER_NOT_FOUND          ErrorReason = "USER_NOT_FOUND"
	ErrorReason_SESSION_NOT_FOUND       ErrorReason = "SESSION_NOT_FOUND"
	ErrorReason_AUTHENTICATION_REQUIRED ErrorReason = "AUTHENTICATION_REQUIRED"
	ErrorReason_INVALID_CREDENTIALS     ErrorReason = "INVALID_CREDENTIALS"
	ErrorReason_VALIDATION_FAILED       ErrorReason = "VALIDATION_FAILED"
	ErrorReason_INVALID_ARGUMENT        ErrorReason = "INVALID_ARGUMENT"
	ErrorReason_REVIEW_CONFLICT         ErrorReason = "REVIEW_CONFLICT"
)

func (x ErrorReason) String() string {
	return string(x)
}

func IsMovieNotFound(err error) bool {
	return is(err, ErrorReason_MOVIE_NOT_FOUND, 404)
}

func ErrorMovieNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ErrorReason_MOVIE_NOT_FOUND.String(), fmt.Sprintf(format, args...))
}

func IsReviewNotFound(err error) bool {
	return is(err, ErrorReason_REVIEW_NOT_FOUND, 404)
}

func ErrorReviewNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ErrorReason_REVIEW_NOT_FOUND.String(), fmt.Sprintf(format, args...))
}

func IsUserNotFound(err error) bool {
	return is(err, ErrorReason_USER_NOT_FOUND, 404)
}

func ErrorUserNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(404, ErrorReason_USER_NOT_FOUND.String(), fmt.Sprintf(format, args...))
}

func IsSessionNotFound(err error) bool {
	return is(err, ErrorReason_SESSION_NOT_FOUND, 401)
}

func ErrorSessionNotFound(format string, args ...interface{}) *errors.Error {
	return errors.New(401, ErrorReason_SESSION_NOT_FOUND.String(), fmt.Sprintf(format, args...))
}

func IsAuthenticationRequired(err error) bool {
	return is(err, ErrorReason_AUTHENTICATION_REQUIRED, 401)
}

func ErrorAuthenticationRequired(format string, args ...interface{}) *errors.Error {
	return errors.New(401, ErrorReason_AUTHENTICATION_REQUIRED.String(), fmt.Sprintf(format, args...))
}

func IsInvalidCredentials(err error) bool {
	return is(err, ErrorReason_INVALID_CREDENTIALS, 401)
}

func ErrorInvalidCredentials(format string, args ...interface{}) *errors.Error {
	return errors.New(401, ErrorReason_INVALID_CREDENTIALS.String(), fmt.Sprintf(format, args...))
}

func IsValidationFailed(err error) bool {
	return is(err, ErrorReason_VALIDATION_FAILED, 422)
}

func ErrorValidationFailed(format string, args ...interface{}) *errors.Error {
	return errors.New(422, ErrorReason_VALIDATION_FAILED.String(), fmt.Sprintf(format, args...))
}

func IsInvalidArgument(err error) bool {
	return is(err, ErrorReason_INVALID_ARGUMENT, 400)
}

func ErrorInvalidArgument(format string, args ...interface{}) *errors.Error {
	return errors.New(400, ErrorReason_INVALID_ARGUMENT.String(), fmt.Sprintf(format, args...))
}

func IsReviewConflict(err error) bool {
	return is(err, ErrorReason_REVIEW_CONFLICT, 409)
}

func ErrorReviewConflict(format string, args ...interface{}) *errors.Error {
	return errors.New(409, ErrorReason_REVIEW_CONFLICT.String(), fmt.Sprintf(format, args...))
}

func is(err error, reason ErrorReason, code int) bool {
	if err == nil {
		return false
	}
	e := errors.FromError(err)
	return e.Reason == reason.String() && e.Code == int32(code)
}
