package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrMatchNotLive          = errors.New("match is not live")
	ErrInningsAlreadyActive  = errors.New("innings already active")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
