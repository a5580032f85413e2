package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumber            = errors.New("number")
	ErrBadEscape         = errors.New("bad escape")
	ErrEmptyDoc          = errors.New("empty document")
	ErrUnexpected        = errors.New("unexpected character")
	ErrDupKey            = errors.New("duplicate key")
	ErrNoMark            = errors.New("no mark set")
)

// PosErr is an error located in the input.
type PosErr struct {
	Err error
	Pos Pos
}

func NewPosErr(err error, pos Pos) *PosErr {
	return &PosErr{Err: err, Pos: pos}
}

func (e *PosErr) Unwrap() error {
	return e.Err
}

func (e *PosErr) Error() string {
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Pos.String())
}
