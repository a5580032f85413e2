package parse

import "errors"

var (
	ErrParse      = errors.New("parse error")
	ErrMaxDepth   = errors.New("maximum depth exceeded")
	ErrBadControl = errors.New("bad parser control")
)
