package parse

import (
	"fmt"
)

// DupKey selects what happens when an object repeats a key.
type DupKey int

const (
	// Overwrite replaces the earlier value with the later one.
	Overwrite DupKey = iota
	// Ignore keeps the earlier value; the later one is parsed and dropped.
	Ignore
	// Append collects all values for the key into an array.
	Append
	// Reject fails the parse.
	Reject
)

var dupKeyNames = map[string]DupKey{
	"overwrite": Overwrite,
	"accept":    Overwrite,
	"ignore":    Ignore,
	"append":    Append,
	"reject":    Reject,
}

func ParseDupKey(v string) (DupKey, error) {
	d, ok := dupKeyNames[v]
	if ok {
		return d, nil
	}
	return Overwrite, fmt.Errorf("%w: unknown duplicate key policy %q", ErrBadControl, v)
}

func (d DupKey) String() string {
	txt, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(txt)
}

func (d DupKey) MarshalText() ([]byte, error) {
	switch d {
	case Overwrite:
		return []byte("overwrite"), nil
	case Ignore:
		return []byte("ignore"), nil
	case Append:
		return []byte("append"), nil
	case Reject:
		return []byte("reject"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a duplicate key policy>", int(d))
	}
}

func (d *DupKey) UnmarshalText(txt []byte) error {
	pd, err := ParseDupKey(string(txt))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

// Control holds the grammar relaxations and the duplicate key policy of
// a parse. The zero Control is strict JSON (plus comments) with
// duplicate keys overwritten.
type Control struct {
	// AllowFlexibleKeys accepts unquoted object keys.
	AllowFlexibleKeys bool
	// AllowFlexibleStrings accepts unquoted string values.
	AllowFlexibleStrings bool
	// AllowNocaseValues accepts Null, NULL, True, TRUE, False and FALSE.
	AllowNocaseValues bool
	DupKey            DupKey
}
