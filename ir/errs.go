package ir

import (
	"errors"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrOutOfRange   = errors.New("out of range")
	ErrNoSuchKey    = errors.New("no such key")
)
