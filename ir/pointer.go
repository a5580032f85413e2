package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPointer = errors.New("bad pointer")

// GetPointer resolves an RFC 6901 JSON pointer such as /a/0/b against v.
// The empty pointer is v itself.
func (v *Value) GetPointer(ptr string) (*Value, error) {
	if ptr == "" {
		return v, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("%w: %q does not start with /", ErrBadPointer, ptr)
	}
	cur := v
	for tok := range strings.SplitSeq(ptr[1:], "/") {
		tok = strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
		var err error
		switch cur.Type() {
		case ObjectType:
			cur, err = cur.Get(tok)
		case ArrayType:
			i, perr := strconv.Atoi(tok)
			if perr != nil || (len(tok) > 1 && tok[0] == '0') {
				return nil, fmt.Errorf("%w: %q is not an array index in %q", ErrBadPointer, tok, ptr)
			}
			cur, err = cur.At(i)
		default:
			return nil, fmt.Errorf("%w: %q reaches into a %s", ErrTypeMismatch, ptr, cur.Type())
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ptr, err)
		}
	}
	return cur, nil
}
