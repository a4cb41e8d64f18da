package repository

import "errors"

var (
	ErrInvalidQueueEntry = errors.New("invalid queue entry data")
)
