package service

import "errors"

var (
	ErrClockNil = errors.New("clock is nil")
)
