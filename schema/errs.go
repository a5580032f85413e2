package schema

import "errors"

var (
	ErrSchema        = errors.New("schema error")
	ErrDuplicateType = errors.New("duplicate type")
	ErrUnknownType   = errors.New("unknown schema type")
)
