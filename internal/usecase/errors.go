package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrRaceClosed            = errors.New("race voting closed")
	ErrDuplicateVote         = errors.New("vote already cast")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
